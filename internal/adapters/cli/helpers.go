package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/config"
)

// loadConfig reads configuration from --config or the default search paths
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// withApp composes a session for the duration of fn
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app, err := NewApp(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(cmd.Context(), app)
}

// resolveTeamArg picks the team from the first argument, falling back to the
// default team in the user preferences
func resolveTeamArg(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	userConfigHandler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no team specified and failed to load user config: %w", err)
	}

	userCfg, err := userConfigHandler.Load()
	if err != nil {
		return "", fmt.Errorf("no team specified and failed to load user config: %w", err)
	}

	if userCfg.DefaultTeam != "" {
		return userCfg.DefaultTeam, nil
	}

	return "", fmt.Errorf("no team specified: pass a team or set a default with 'taxgame config set-team'")
}

// formatError turns game errors into a hint the player can act on
func formatError(err error) string {
	var gameErr *shared.GameError
	if !errors.As(err, &gameErr) {
		return fmt.Sprintf("Error: %v", err)
	}

	hint := ""
	switch gameErr.Code {
	case shared.CodeInvalidTeam:
		hint = "run 'taxgame teams' to see who you can manage"
	case shared.CodeInvalidChoice:
		hint = "run 'taxgame scenario' to see the choices for this round"
	case shared.CodeNoActiveGame:
		hint = "start a season with 'taxgame start <team>'"
	case shared.CodeNoActiveScenario:
		hint = "the season is over, run 'taxgame ending' for the results"
	case shared.CodePersistenceUnavailable:
		hint = "check the database settings with 'taxgame config show'"
	case shared.CodeDataNotLoaded:
		hint = "check game.content_dir or remove it to use the built-in tables"
	}

	if hint == "" {
		return fmt.Sprintf("Error [%s]: %v", gameErr.Code, err)
	}
	return fmt.Sprintf("Error [%s]: %v\n  hint: %s", gameErr.Code, err, hint)
}

// scenarioPlayers looks up the players a scenario's choices would sign
func scenarioPlayers(app *App, scenario *roster.Scenario) map[roster.PlayerID]*roster.Player {
	players := make(map[roster.PlayerID]*roster.Player)
	for _, choice := range scenario.Choices() {
		if id, ok := choice.Player(); ok {
			if p, found := app.Engine().Catalog().Player(id); found {
				players[id] = p
			}
		}
	}
	return players
}
