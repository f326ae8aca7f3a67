package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "taxgame",
		Short: "NBA luxury tax GM game",
		Long: `Take over an NBA front office for one season. Every round you pick a move,
watch the payroll climb past the salary cap and decide how much luxury tax
a few extra wins are worth.

Progress is saved automatically after every move, so single commands can be
chained across shell invocations.

Examples:
  taxgame teams
  taxgame start spurs
  taxgame scenario
  taxgame choose sign_chris_paul
  taxgame status
  taxgame ending
  taxgame play lakers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ., ./configs, ~/.taxgame)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	// Add command groups
	rootCmd.AddCommand(NewTeamsCommand())
	rootCmd.AddCommand(NewRosterCommand())
	rootCmd.AddCommand(NewPlayersCommand())
	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewScenarioCommand())
	rootCmd.AddCommand(NewChooseCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewEndingCommand())
	rootCmd.AddCommand(NewResetCommand())
	rootCmd.AddCommand(NewSaveCommand())
	rootCmd.AddCommand(NewLoadCommand())
	rootCmd.AddCommand(NewClearSaveCommand())
	rootCmd.AddCommand(NewTutorialCommand())
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}
