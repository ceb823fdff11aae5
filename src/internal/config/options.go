package config

const (
	defaultBarcodePrefix     = "T"
	defaultBarcodeStart      = 1
	defaultLocation          = "Main Library"
	defaultCollection        = "Manga collection"
	defaultAgency            = "OCoLC"
	defaultOutput            = "manga.mrc"
	defaultLogLevel          = "info"
	defaultLogFile           = ""
	defaultLogFileMaxSize    = 20
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAge     = 28
	defaultLogCompress       = false
)

// Options uses mapstructure tags because viper decodes through mapstructure.
type Options struct {
	// BarcodePrefix precedes the zero-padded holding number
	BarcodePrefix string `mapstructure:"barcode_prefix"`
	// BarcodeStart is the first holding number of an export
	BarcodeStart int `mapstructure:"barcode_start"`
	// Location is written to 852 $b
	Location string `mapstructure:"location"`
	// Collection is written to 852 $x
	Collection string `mapstructure:"collection"`
	// Agency is the MARC organization code for 003/040
	Agency string `mapstructure:"agency"`
	// Output is the default MARC file path
	Output string `mapstructure:"output"`

	LogLevel string `mapstructure:"log_level"`
	// LogFile enables a rotating JSON log when non-empty
	LogFile           string `mapstructure:"log_file"`
	LogFileMaxSize    int    `mapstructure:"log_file_max_size"`
	LogFileMaxBackups int    `mapstructure:"log_file_max_backups"`
	LogFileMaxAge     int    `mapstructure:"log_file_max_age"`
	LogCompress       bool   `mapstructure:"log_compress"`
}

// defaults maps every option key to its default. Registering every key with
// viper is what lets AutomaticEnv see it during Unmarshal.
func defaults() map[string]any {
	return map[string]any{
		"barcode_prefix":       defaultBarcodePrefix,
		"barcode_start":        defaultBarcodeStart,
		"location":             defaultLocation,
		"collection":           defaultCollection,
		"agency":               defaultAgency,
		"output":               defaultOutput,
		"log_level":            defaultLogLevel,
		"log_file":             defaultLogFile,
		"log_file_max_size":    defaultLogFileMaxSize,
		"log_file_max_backups": defaultLogFileMaxBackups,
		"log_file_max_age":     defaultLogFileMaxAge,
		"log_compress":         defaultLogCompress,
	}
}

// GetDefaultOptions returns Options populated with defaults only.
func GetDefaultOptions() *Options {
	return &Options{
		BarcodePrefix:     defaultBarcodePrefix,
		BarcodeStart:      defaultBarcodeStart,
		Location:          defaultLocation,
		Collection:        defaultCollection,
		Agency:            defaultAgency,
		Output:            defaultOutput,
		LogLevel:          defaultLogLevel,
		LogFile:           defaultLogFile,
		LogFileMaxSize:    defaultLogFileMaxSize,
		LogFileMaxBackups: defaultLogFileMaxBackups,
		LogFileMaxAge:     defaultLogFileMaxAge,
		LogCompress:       defaultLogCompress,
	}
}
