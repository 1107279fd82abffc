package config

const (
	// DefaultQuality is the cwebp quality used when neither the config file
	// nor the -q flag sets one.
	DefaultQuality = 85
	// DefaultConcurrency bounds the number of files converted in parallel.
	DefaultConcurrency = 15

	defaultCwebpBinary = "cwebp"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Encoder: Encoder{
			Binary:      defaultCwebpBinary,
			Quality:     DefaultQuality,
			Concurrency: DefaultConcurrency,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
