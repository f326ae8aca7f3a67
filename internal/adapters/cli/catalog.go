package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
)

// NewTeamsCommand creates the teams command
func NewTeamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List the teams you can manage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameQueries.ListTeamsQuery{})
				if err != nil {
					return err
				}
				renderTeams(cmd.OutOrStdout(), response.(*gameQueries.ListTeamsResponse))
				return nil
			})
		},
	}
}

// NewRosterCommand creates the roster command
func NewRosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roster [team]",
		Short: "Show a team's opening roster",
		Long: `Show the players a team starts the season with.

Examples:
  taxgame roster spurs
  taxgame roster MIL`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team, err := resolveTeamArg(args)
			if err != nil {
				return err
			}

			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameQueries.GetTeamRosterQuery{TeamID: team})
				if err != nil {
					return err
				}
				renderRoster(cmd.OutOrStdout(), response.(*gameQueries.GetTeamRosterResponse))
				return nil
			})
		},
	}
}

// NewPlayersCommand creates the players command
func NewPlayersCommand() *cobra.Command {
	var tier, nbaTeam string

	cmd := &cobra.Command{
		Use:   "players",
		Short: "Browse the player pool",
		Long: `List players by tier, by NBA team, or both.

Examples:
  taxgame players --tier star
  taxgame players --nba-team SAS
  taxgame players --tier rookie --nba-team SAS`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				response, err := app.Send(ctx, &gameQueries.ListPlayersQuery{Tier: tier, NBATeam: nbaTeam})
				if err != nil {
					return err
				}
				players := response.(*gameQueries.ListPlayersResponse).Players
				if len(players) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No players match.")
					return nil
				}
				renderPlayers(cmd.OutOrStdout(), players)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "Only players in this tier (star, role, rookie)")
	cmd.Flags().StringVar(&nbaTeam, "nba-team", "", "Only players on this NBA team abbreviation")

	return cmd
}
