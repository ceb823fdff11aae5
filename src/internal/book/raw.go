package book

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Raw is the loosely-shaped volume metadata returned by the lookup service.
// JSON responses decode through the same YAML tags.
type Raw struct {
	SeriesName          string `yaml:"series_name"`
	VolumeNumber        int    `yaml:"volume_number"`
	BookTitle           string `yaml:"book_title"`
	Authors             List   `yaml:"authors"`
	MSRPCost            Scalar `yaml:"msrp_cost"`
	ISBN13              string `yaml:"isbn_13"`
	PublisherName       string `yaml:"publisher_name"`
	CopyrightYear       Scalar `yaml:"copyright_year"`
	Description         string `yaml:"description"`
	PhysicalDescription string `yaml:"physical_description"`
	Genres              List   `yaml:"genres"`
}

// List holds a field that may arrive as a single string or a sequence of
// strings. Joined is set when the source was a single string, leaving the
// caller to decide how to split it.
type List struct {
	Items  []string
	Joined bool
}

func (l *List) UnmarshalYAML(value *yaml.Node) error {
	*l = List{}
	if value == nil {
		return nil
	}
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		s := strings.TrimSpace(value.Value)
		if s == "" {
			return nil
		}
		*l = List{Items: []string{s}, Joined: true}
		return nil
	case yaml.SequenceNode:
		var out []string
		for _, n := range value.Content {
			// Skip nested mappings/sequences; the lookup contract is flat strings.
			if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
				continue
			}
			out = append(out, n.Value)
		}
		l.Items = out
		return nil
	default:
		// Unknown shape; leave empty rather than erroring
		return nil
	}
}

// Scalar keeps the textual form of a number-or-string field.
type Scalar struct {
	Value string
	Set   bool
}

func (s *Scalar) UnmarshalYAML(value *yaml.Node) error {
	*s = Scalar{}
	if value == nil || value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		return nil
	}
	*s = Scalar{Value: strings.TrimSpace(value.Value), Set: true}
	return nil
}
