package game

import "fmt"

// Rules are the fixed constants of a season
type Rules struct {
	BudgetLimit int64
	PlayoffWins int
	TotalRounds int
}

// DefaultRules returns the constants the game ships with
func DefaultRules() Rules {
	return Rules{
		BudgetLimit: 150_000_000,
		PlayoffWins: 46,
		TotalRounds: 4,
	}
}

// Validate checks that the rules describe a playable season
func (r Rules) Validate() error {
	if r.BudgetLimit <= 0 {
		return fmt.Errorf("budget limit must be positive")
	}
	if r.PlayoffWins <= 0 {
		return fmt.Errorf("playoff wins must be positive")
	}
	if r.TotalRounds <= 0 {
		return fmt.Errorf("total rounds must be positive")
	}
	return nil
}
