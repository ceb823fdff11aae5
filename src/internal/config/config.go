package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MANGAMARC_BARCODE_PREFIX.
const EnvPrefix = "MANGAMARC"

// Load resolves options from defaults, then the config file (if file is
// non-empty), then MANGAMARC_* environment variables.
func Load(file string) (*Options, error) {
	v := viper.New()
	for k, val := range defaults() {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return nil, errors.Wrapf(err, "unable to access config file %s", file)
		}
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", file)
		}
	}

	opts := &Options{}
	if err := v.Unmarshal(opts); err != nil {
		return nil, errors.Wrap(err, "unable to decode config")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate rejects values the exporter cannot work with.
func (o *Options) Validate() error {
	if o.BarcodeStart < 0 {
		return errors.Errorf("barcode_start must not be negative, got %d", o.BarcodeStart)
	}
	for _, r := range o.BarcodePrefix {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return errors.Errorf("barcode_prefix must be letters only, got %q", o.BarcodePrefix)
		}
	}
	return nil
}
