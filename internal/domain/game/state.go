package game

import "github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"

// Decision is the permanent record of one applied choice
type Decision struct {
	Round       int               `json:"round"`
	ChoiceID    roster.ChoiceID   `json:"choiceId"`
	ChoiceType  roster.ChoiceType `json:"choiceType"`
	Title       string            `json:"title"`
	WinDelta    int               `json:"winChange"`
	SalaryDelta int64             `json:"salaryChange"`
	Player      roster.PlayerID   `json:"player,omitempty"`
}

// HasPlayer reports whether the decision signed a player
func (d Decision) HasPlayer() bool {
	return d.Player != ""
}

// GameState is the single mutable aggregate of a game in progress.
// Only Engine mutates it; everything handed out is a copy.
type GameState struct {
	GameID       string              `json:"gameId"`
	Team         roster.TeamID       `json:"team"`
	Round        int                 `json:"round"`
	Wins         int                 `json:"wins"`
	Payroll      int64               `json:"payroll"`
	LuxuryTax    int64               `json:"luxuryTax"`
	TotalSpend   int64               `json:"totalSpend"`
	Decisions    []Decision          `json:"decisions"`
	Roster       []roster.PlayerID   `json:"roster"`
	ScenarioPath []roster.ScenarioID `json:"scenarioPath"`
	GameOver     bool                `json:"gameOver"`
}

// Clone returns a deep copy
func (s GameState) Clone() GameState {
	out := s
	out.Decisions = append([]Decision{}, s.Decisions...)
	out.Roster = append([]roster.PlayerID{}, s.Roster...)
	out.ScenarioPath = append([]roster.ScenarioID{}, s.ScenarioPath...)
	return out
}

// CurrentScenarioID is the last id on the scenario path
func (s GameState) CurrentScenarioID() (roster.ScenarioID, bool) {
	if len(s.ScenarioPath) == 0 {
		return "", false
	}
	return s.ScenarioPath[len(s.ScenarioPath)-1], true
}
