package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
)

// NewSaveCommand creates the save command
func NewSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write the current game to the save slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				if err := app.Autoload(ctx); err != nil {
					return err
				}

				response, err := app.Send(ctx, &gameCommands.SaveGameCommand{})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.SaveGameResponse)

				fmt.Fprintf(cmd.OutOrStdout(), "Saved to slot %s at %s\n",
					resp.Slot, resp.SavedAt.Local().Format("2006-01-02 15:04:05"))
				return nil
			})
		},
	}
}

// NewLoadCommand creates the load command
func NewLoadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Show the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameCommands.LoadGameCommand{})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.LoadGameResponse)

				out := cmd.OutOrStdout()
				if !resp.Loaded {
					fmt.Fprintln(out, "No saved game. Start one with 'taxgame start <team>'.")
					return nil
				}

				fmt.Fprintf(out, "Loaded game saved at %s\n\n", resp.SavedAt.Local().Format("2006-01-02 15:04:05"))
				renderSnapshot(out, *resp.Snapshot)
				return nil
			})
		},
	}
}

// NewClearSaveCommand creates the clear-save command
func NewClearSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-save",
		Short: "Delete the saved game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameCommands.ClearSaveCommand{})
				if err != nil {
					return err
				}
				resp := response.(*gameCommands.ClearSaveResponse)

				fmt.Fprintf(cmd.OutOrStdout(), "Cleared save slot %s\n", resp.Slot)
				return nil
			})
		},
	}
}
