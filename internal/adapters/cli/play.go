package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/pidfile"
)

// NewPlayCommand creates the interactive play command
func NewPlayCommand() *cobra.Command {
	var resume bool

	cmd := &cobra.Command{
		Use:   "play [team]",
		Short: "Play a season interactively",
		Long: `Play a whole season from the terminal, one round at a time.

Pick a move by its number or id. Type 'status' for the finances, 'save' to
save, or 'quit' to save and leave. Progress is saved after every move.

With --resume the saved game is continued instead of starting a new one.

Examples:
  taxgame play spurs
  taxgame play --resume`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var team string
			if !resume {
				var err error
				if team, err = resolveTeamArg(args); err != nil {
					return err
				}
			}

			return withApp(cmd, func(ctx context.Context, app *App) error {
				lock := pidfile.New(app.cfg.Game.LockFile)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer func() {
					_ = lock.Release()
				}()

				session := &playSession{
					app: app,
					in:  bufio.NewScanner(cmd.InOrStdin()),
					out: cmd.OutOrStdout(),
				}
				return session.run(ctx, team)
			})
		},
	}

	cmd.Flags().BoolVar(&resume, "resume", false, "Continue the saved game")

	return cmd
}

type playSession struct {
	app *App
	in  *bufio.Scanner
	out io.Writer
}

func (s *playSession) run(ctx context.Context, team string) error {
	if team == "" {
		if err := s.app.Autoload(ctx); err != nil {
			return err
		}
		if !s.app.Engine().HasActiveGame() {
			fmt.Fprintln(s.out, "No saved game to resume. Start one with 'taxgame play <team>'.")
			return nil
		}
	} else {
		response, err := s.app.Send(ctx, &gameCommands.StartGameCommand{TeamID: team})
		if err != nil {
			return err
		}
		resp := response.(*gameCommands.StartGameResponse)
		fmt.Fprintln(s.out, titleStyle.Render(fmt.Sprintf("Welcome to the %s front office", resp.Team.Name())))
		if resp.Team.Intro() != "" {
			fmt.Fprintln(s.out, resp.Team.Intro())
		}
		fmt.Fprintln(s.out)
		if _, err := s.app.Autosave(ctx, s.out); err != nil {
			return err
		}
	}

	for !s.app.Engine().IsOver() {
		response, err := s.app.Send(ctx, &gameQueries.GetCurrentScenarioQuery{})
		if err != nil {
			return err
		}
		scenario := response.(*gameQueries.GetCurrentScenarioResponse)
		renderScenario(s.out, scenario.Scenario, scenario.Round, scenario.TotalRounds, scenario.Players)

		choiceID, quit, err := s.prompt(ctx, scenario)
		if err != nil {
			return err
		}
		if quit {
			saved, err := s.app.Autosave(ctx, s.out)
			if err != nil {
				return err
			}
			if !saved {
				fmt.Fprintln(s.out, "Leaving without a save. This season cannot be resumed.")
				return nil
			}
			fmt.Fprintln(s.out, "Game saved. Resume with 'taxgame play --resume'.")
			return nil
		}

		response, err = s.app.Send(ctx, &gameCommands.ApplyChoiceCommand{ChoiceID: choiceID})
		if err != nil {
			return err
		}
		renderChoiceResult(s.out, response.(*gameCommands.ApplyChoiceResponse))
		fmt.Fprintln(s.out)

		if _, err := s.app.Autosave(ctx, s.out); err != nil {
			return err
		}
	}

	response, err := s.app.Send(ctx, &gameQueries.GetEndingQuery{})
	if err != nil {
		return err
	}
	renderEnding(s.out, response.(*gameQueries.GetEndingResponse))
	return nil
}

// prompt reads lines until the player picks a valid choice or quits.
// End of input counts as quit.
func (s *playSession) prompt(ctx context.Context, scenario *gameQueries.GetCurrentScenarioResponse) (string, bool, error) {
	choices := scenario.Scenario.Choices()
	for {
		fmt.Fprintf(s.out, "Your move [1-%d, status, save, quit]: ", len(choices))
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return "", true, s.in.Err()
		}
		input := strings.TrimSpace(s.in.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit", "exit":
			return "", true, nil
		case "status":
			response, err := s.app.Send(ctx, &gameQueries.GetFinancialExplanationQuery{})
			if err != nil {
				return "", false, err
			}
			explanation := response.(*gameQueries.GetFinancialExplanationResponse)
			renderSnapshot(s.out, explanation.Snapshot)
			fmt.Fprintln(s.out, explanation.Explanation)
			continue
		case "save":
			if _, err := s.app.Send(ctx, &gameCommands.SaveGameCommand{}); err != nil {
				fmt.Fprintln(s.out, formatError(err))
				continue
			}
			fmt.Fprintln(s.out, "Game saved.")
			continue
		}

		if n, err := strconv.Atoi(input); err == nil {
			if n >= 1 && n <= len(choices) {
				return string(choices[n-1].ID()), false, nil
			}
			fmt.Fprintf(s.out, "Pick a number between 1 and %d.\n", len(choices))
			continue
		}

		for _, c := range choices {
			if string(c.ID()) == input {
				return input, false, nil
			}
		}
		fmt.Fprintf(s.out, "%q is not one of this round's choices.\n", input)
	}
}
