package metrics

import "fmt"

// Collectors bundles the collectors registered by Setup
type Collectors struct {
	Commands *CommandMetricsCollector
	Game     *GameMetricsCollector
}

// Setup initializes the registry, registers every collector and installs the
// game collector globally. Call once per process when metrics are enabled.
func Setup() (*Collectors, error) {
	InitRegistry()

	commands := NewCommandMetricsCollector()
	if err := commands.Register(); err != nil {
		return nil, fmt.Errorf("failed to register command metrics: %w", err)
	}

	game := NewGameMetricsCollector()
	if err := game.Register(); err != nil {
		return nil, fmt.Errorf("failed to register game metrics: %w", err)
	}
	SetGlobalGameCollector(game)

	return &Collectors{Commands: commands, Game: game}, nil
}
