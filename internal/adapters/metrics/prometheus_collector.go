package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "taxgame"
	// Subsystem for game metrics
	subsystem = "game"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalGameCollector is the singleton game metrics collector
	// Set by SetGlobalGameCollector() when metrics are enabled
	globalGameCollector GameMetricsRecorder
)

// GameMetricsRecorder defines the interface for recording game events.
// Application handlers record through the package-level functions below.
type GameMetricsRecorder interface {
	RecordGameStarted(team string)
	RecordChoice(team, choiceType string, payroll, luxuryTax int64)
	RecordEnding(team, ending, grade string, wins int)
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// Reset drops the registry and the global collector
func Reset() {
	Registry = nil
	globalGameCollector = nil
}

// SetGlobalGameCollector sets the global game metrics collector
func SetGlobalGameCollector(collector GameMetricsRecorder) {
	globalGameCollector = collector
}

// RecordGameStarted records a new game globally
func RecordGameStarted(team string) {
	if globalGameCollector != nil {
		globalGameCollector.RecordGameStarted(team)
	}
}

// RecordChoice records an applied choice and the resulting finances globally
func RecordChoice(team, choiceType string, payroll, luxuryTax int64) {
	if globalGameCollector != nil {
		globalGameCollector.RecordChoice(team, choiceType, payroll, luxuryTax)
	}
}

// RecordEnding records a finished season globally
func RecordEnding(team, ending, grade string, wins int) {
	if globalGameCollector != nil {
		globalGameCollector.RecordEnding(team, ending, grade, wins)
	}
}

// WriteToTextfile writes the registry in the text exposition format for the
// node_exporter textfile collector. A no-op when metrics are disabled.
func WriteToTextfile(path string) error {
	if Registry == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
