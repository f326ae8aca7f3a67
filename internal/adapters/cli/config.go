package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage taxgame configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (TAXGAME_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default team) are stored in ~/.taxgame/preferences.json

Examples:
  taxgame config show
  taxgame config set-team spurs
  taxgame config clear-team`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetTeamCommand())
	cmd.AddCommand(newConfigClearTeamCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Load system config
			cfg, err := loadConfig()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.DefaultConfig()
			}

			// Load user config
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, titleStyle.Render("taxgame configuration"))

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if userCfg.DefaultTeam != "" {
				fmt.Fprintf(out, "  Default Team:     %s\n", userCfg.DefaultTeam)
			} else {
				fmt.Fprintf(out, "  Default Team:     (not set)\n")
			}

			fmt.Fprintln(out, "\nGame:")
			fmt.Fprintf(out, "  Salary Cap:       %s\n", tax.FormatFull(cfg.Game.SalaryCap))
			fmt.Fprintf(out, "  Budget Limit:     %s\n", tax.FormatFull(cfg.Game.BudgetLimit))
			fmt.Fprintf(out, "  Playoff Wins:     %d\n", cfg.Game.PlayoffWins)
			fmt.Fprintf(out, "  Rounds:           %d\n", cfg.Game.TotalRounds)
			if cfg.Game.ContentDir != "" {
				fmt.Fprintf(out, "  Content:          %s\n", cfg.Game.ContentDir)
			} else {
				fmt.Fprintf(out, "  Content:          (built in)\n")
			}
			fmt.Fprintf(out, "  Save Slot:        %s\n", cfg.Game.SaveSlot)
			fmt.Fprintf(out, "  Lock File:        %s\n", cfg.Game.LockFile)

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
				fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
			}

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
			if cfg.Metrics.TextfilePath != "" {
				fmt.Fprintf(out, "  Textfile:         %s\n", cfg.Metrics.TextfilePath)
			}

			return nil
		},
	}

	return cmd
}

// newConfigSetTeamCommand creates the config set-team subcommand
func newConfigSetTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-team <team>",
		Short: "Set default team",
		Long: `Set the team used when start, roster or play are run without one.

Example:
  taxgame config set-team spurs`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Verify the team exists in the content tables
			catalog, err := loadCatalog(cfg.Game)
			if err != nil {
				return err
			}
			team, err := common.NewTeamResolver(catalog).ResolveTeam(args[0])
			if err != nil {
				return err
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultTeam(team.ID().String()); err != nil {
				return fmt.Errorf("failed to set default team: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Default team set to %s (%s)\n", team.Name(), team.ID())
			fmt.Fprintln(out, "Commands will now use this team when none is given.")

			return nil
		},
	}

	return cmd
}

// newConfigClearTeamCommand creates the config clear-team subcommand
func newConfigClearTeamCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-team",
		Short: "Clear default team setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}

			if err := userConfigHandler.ClearDefaultTeam(); err != nil {
				return fmt.Errorf("failed to clear default team: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Default team cleared")
			return nil
		},
	}

	return cmd
}

// maskPassword hides the password in a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
