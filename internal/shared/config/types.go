package config

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type QuoteConfig struct {
	// Output selects the default rendering of the quote command:
	// "text" or "json".
	Output string `mapstructure:"output"`
	// Currency is the display symbol appended to amounts.
	Currency string `mapstructure:"currency"`
}
