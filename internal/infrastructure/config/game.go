package config

// GameConfig holds the economic rules and content locations
type GameConfig struct {
	// Salary cap in whole dollars; payroll above it is taxed
	SalaryCap int64 `mapstructure:"salary_cap" validate:"min=1"`

	// Total spend (payroll + tax) above this classifies the season as over budget
	BudgetLimit int64 `mapstructure:"budget_limit" validate:"min=1"`

	// Wins needed to make the playoffs
	PlayoffWins int `mapstructure:"playoff_wins" validate:"min=1,max=82"`

	// Number of decision rounds in a season
	TotalRounds int `mapstructure:"total_rounds" validate:"min=1,max=10"`

	// Directory holding teams.yaml, players.yaml, scenarios.yaml and endings.yaml.
	// Empty uses the tables compiled into the binary.
	ContentDir string `mapstructure:"content_dir"`

	// Name of the save slot
	SaveSlot string `mapstructure:"save_slot" validate:"required"`

	// Lock file guarding interactive sessions against each other
	LockFile string `mapstructure:"lock_file"`
}
