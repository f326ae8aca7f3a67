package game

import "github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"

// Snapshot is the read-only projection of a GameState with the derived display fields
type Snapshot struct {
	GameID          string
	Team            roster.TeamID
	Round           int
	TotalRounds     int
	Wins            int
	Payroll         int64
	LuxuryTax       int64
	TotalSpend      int64
	CapRemaining    int64
	BudgetRemaining int64
	WinsNeeded      int
	IsOverCap       bool
	IsOverBudget    bool
	MadePlayoffs    bool
	GameOver        bool
	Roster          []roster.PlayerID
	Decisions       []Decision
	ScenarioPath    []roster.ScenarioID
}

func project(state GameState, salaryCap int64, rules Rules) Snapshot {
	c := state.Clone()
	return Snapshot{
		GameID:          c.GameID,
		Team:            c.Team,
		Round:           c.Round,
		TotalRounds:     rules.TotalRounds,
		Wins:            c.Wins,
		Payroll:         c.Payroll,
		LuxuryTax:       c.LuxuryTax,
		TotalSpend:      c.TotalSpend,
		CapRemaining:    max(0, salaryCap-c.Payroll),
		BudgetRemaining: max(0, rules.BudgetLimit-c.TotalSpend),
		WinsNeeded:      max(0, rules.PlayoffWins-c.Wins),
		IsOverCap:       c.Payroll > salaryCap,
		IsOverBudget:    c.TotalSpend > rules.BudgetLimit,
		MadePlayoffs:    c.Wins >= rules.PlayoffWins,
		GameOver:        c.GameOver,
		Roster:          c.Roster,
		Decisions:       c.Decisions,
		ScenarioPath:    c.ScenarioPath,
	}
}
