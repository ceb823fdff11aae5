package showcmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mangamarc/src/internal/barcode"
	"mangamarc/src/internal/config"
	"mangamarc/src/internal/formatter"
	"mangamarc/src/internal/marc"
	"mangamarc/src/internal/store"
)

var (
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Faint(true)
)

// New returns the show command that prints records in mnemonic form. MARC
// files are decoded; lookup files are formatted first, as export would.
func New(options func() *config.Options) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "show <file>...",
		Short: "Print MARC records (.mrc) or the records a lookup file would produce",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			seq := barcode.NewSequence(opts.BarcodePrefix, opts.BarcodeStart)
			for _, path := range args {
				recs, err := load(path, seq, opts)
				if err != nil {
					return err
				}
				for i, r := range recs {
					if err := render(cmd.OutOrStdout(), fmt.Sprintf("%s #%d", path, i+1), r, plain); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling")
	return cmd
}

func load(path string, seq *barcode.Sequence, opts *config.Options) ([]*marc.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".mrc") {
		return store.ReadMARC(path)
	}
	books, err := store.ReadBooks(path, time.Now())
	if err != nil {
		return nil, err
	}
	out := make([]*marc.Record, 0, len(books))
	for _, b := range books {
		out = append(out, formatter.Format(b, seq.Next(),
			formatter.WithAgency(opts.Agency),
			formatter.WithLocation(opts.Location),
			formatter.WithCollection(opts.Collection),
		))
	}
	return out, nil
}

func render(w io.Writer, header string, r *marc.Record, plain bool) error {
	style := func(s lipgloss.Style, text string) string {
		if plain {
			return text
		}
		return s.Render(text)
	}
	var b strings.Builder
	b.WriteString(style(headerStyle, "# "+header) + "\n")
	for _, line := range strings.Split(r.String(), "\n") {
		// Every mnemonic line starts with "=TAG".
		if len(line) >= 4 {
			b.WriteString(style(tagStyle, line[:4]) + line[4:] + "\n")
			continue
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
