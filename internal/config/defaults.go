package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Stream: "stdout",
		},
		Reports: ReportsConfig{
			Title: "Spec run",
		},
		Metrics: MetricsConfig{
			Namespace: "specrun",
		},
		Exit: ExitConfig{
			Policy:  "count",
			MaxCode: 255,
		},
		Templates: TemplateConfig{
			Default: "markdown_report",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
