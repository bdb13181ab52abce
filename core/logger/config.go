package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding of structured records (console or json).
	Format string `mapstructure:"format" default:"console"`
	// Color enables ANSI colors in the banner and access log.
	Color bool `mapstructure:"color" default:"true"`
}
