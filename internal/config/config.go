package config

// Config holds runtime configuration for the season tool.
type Config struct {
	TeamsFile    string
	OutputDir    string
	ExportFormat string
	LogLevel     string
	LogFormat    string
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		TeamsFile:    envOrDefault(envTeamsFile, ""),
		OutputDir:    envOrDefault(envOutputDir, defaultOutputDir),
		ExportFormat: envOrDefault(envExportFormat, defaultExportFormat),
		LogLevel:     envOrDefault(envLogLevel, "info"),
		LogFormat:    envOrDefault(envLogFormat, "text"),
		Metrics:      loadMetrics(),
	}
}
