package config

// MetricsConfig holds metrics collection and export configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// TextfilePath is where the registry is written after each command, in the
	// Prometheus text exposition format (node_exporter textfile collector).
	// Empty disables the export.
	TextfilePath string `mapstructure:"textfile_path"`
}
