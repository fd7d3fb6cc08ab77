package config

// MetricsConfig controls metrics export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsEnabled, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  defaultServiceName,
		OtlpEndpoint: envOrDefault(envOtlpEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtlpInsecure, false),
	}
}
