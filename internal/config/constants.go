package config

// Environment variable names.
const (
	envTeamsFile      = "GRIDIRON_TEAMS_FILE"
	envOutputDir      = "GRIDIRON_OUTPUT_DIR"
	envExportFormat   = "GRIDIRON_EXPORT_FORMAT"
	envLogLevel       = "GRIDIRON_LOG_LEVEL"
	envLogFormat      = "GRIDIRON_LOG_FORMAT"
	envMetricsEnabled = "GRIDIRON_METRICS_ENABLED"
	envMetricsPort    = "GRIDIRON_METRICS_PORT"
	envOtlpEndpoint   = "GRIDIRON_OTLP_ENDPOINT"
	envOtlpInsecure   = "GRIDIRON_OTLP_INSECURE"
)

// Defaults.
const (
	defaultOutputDir    = "seasons"
	defaultExportFormat = "json"
	defaultMetricsPort  = "9091"
	defaultServiceName  = "gridiron"
)
