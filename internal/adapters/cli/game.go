package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
)

// NewStartCommand creates the start command
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start [team]",
		Short: "Start a new season",
		Long: `Start a new season for a team, replacing any saved game.

The team can be given by id (spurs) or abbreviation (SAS). Without an
argument the default team from 'taxgame config set-team' is used.

Examples:
  taxgame start spurs
  taxgame start LAL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := resolveTeamArg(args)
			if err != nil {
				return err
			}

			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameCommands.StartGameCommand{TeamID: team})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.StartGameResponse)

				if _, err := app.Autosave(ctx, cmd.OutOrStdout()); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Welcome to the %s front office", resp.Team.Name())))
				if resp.Team.Intro() != "" {
					fmt.Fprintln(out, resp.Team.Intro())
				}
				fmt.Fprintln(out)
				renderSnapshot(out, resp.Snapshot)
				fmt.Fprintln(out)
				renderScenario(out, resp.Scenario, resp.Snapshot.Round, resp.Snapshot.TotalRounds, scenarioPlayers(app, resp.Scenario))
				fmt.Fprintln(out, dimStyle.Render("Pick a move with 'taxgame choose <choice-id>'."))
				return nil
			})
		},
	}
}

// NewScenarioCommand creates the scenario command
func NewScenarioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario",
		Short: "Show the decision for the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Autoload(ctx); err != nil {
					return err
				}

				response, err := app.Send(ctx, &gameQueries.GetCurrentScenarioQuery{})
				if err != nil {
					return err
				}
				resp := response.(*gameQueries.GetCurrentScenarioResponse)

				renderScenario(cmd.OutOrStdout(), resp.Scenario, resp.Round, resp.TotalRounds, resp.Players)
				return nil
			})
		},
	}
}

// NewChooseCommand creates the choose command
func NewChooseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "choose <choice-id>",
		Short: "Make a move in the current round",
		Long: `Apply one of the current round's choices and advance the season.

Example:
  taxgame choose sign_chris_paul`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Autoload(ctx); err != nil {
					return err
				}

				response, err := app.Send(ctx, &gameCommands.ApplyChoiceCommand{ChoiceID: args[0]})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.ApplyChoiceResponse)

				if _, err := app.Autosave(ctx, cmd.OutOrStdout()); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				renderChoiceResult(out, resp)
				fmt.Fprintln(out)
				if resp.Over {
					fmt.Fprintln(out, titleStyle.Render("The season is over. See how you did with 'taxgame ending'."))
					return nil
				}
				fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Next up: %s (run 'taxgame scenario')", resp.NextScenario.Title())))
				return nil
			})
		},
	}
}

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show wins, payroll and luxury tax for the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Autoload(ctx); err != nil {
					return err
				}

				response, err := app.Send(ctx, &gameQueries.GetGameStateQuery{})
				if err != nil {
					return err
				}
				state := response.(*gameQueries.GetGameStateResponse)

				response, err = app.Send(ctx, &gameQueries.GetFinancialExplanationQuery{})
				if err != nil {
					return err
				}
				explanation := response.(*gameQueries.GetFinancialExplanationResponse)

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, titleStyle.Render(state.Team.Name()))
				renderSnapshot(out, state.Snapshot)
				fmt.Fprintln(out)
				fmt.Fprintln(out, explanation.Explanation)
				fmt.Fprintln(out)
				renderPlayers(out, state.Players)
				renderDecisions(out, state.Snapshot.Decisions)
				return nil
			})
		},
	}
}

// NewEndingCommand creates the ending command
func NewEndingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ending",
		Short: "Show the season result and your GM rating",
		Long: `Show the ending, the team-specific analysis and the GM rating.

Before the last round this previews the ending the season is heading for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Autoload(ctx); err != nil {
					return err
				}

				response, err := app.Send(ctx, &gameQueries.GetEndingQuery{})
				if err != nil {
					return err
				}

				renderEnding(cmd.OutOrStdout(), response.(*gameQueries.GetEndingResponse))
				return nil
			})
		},
	}
}

// NewResetCommand creates the reset command
func NewResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Abandon the current game and clear the save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameCommands.ResetGameCommand{})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.ResetGameResponse)

				out := cmd.OutOrStdout()
				if !resp.SaveCleared {
					fmt.Fprintln(out, warnStyle.Render("Game reset, but the saved game could not be cleared."))
					return nil
				}
				fmt.Fprintln(out, "Game reset. Start a new season with 'taxgame start <team>'.")
				return nil
			})
		},
	}
}
