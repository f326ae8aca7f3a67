package roster

// TeamID identifies a franchise, e.g. "spurs"
type TeamID string

// PlayerID identifies a player record, e.g. "wembanyama"
type PlayerID string

// ScenarioID identifies a scenario within a team's storyline, e.g. "spurs_r1"
type ScenarioID string

// ChoiceID identifies a choice within a scenario
type ChoiceID string

// EndingID identifies an ending record, e.g. "savvy_gm"
type EndingID string

func (id TeamID) String() string { return string(id) }
func (id PlayerID) String() string { return string(id) }
func (id ScenarioID) String() string { return string(id) }
func (id ChoiceID) String() string { return string(id) }
func (id EndingID) String() string { return string(id) }

// Known ending ids. The resolver only ever returns one of these, and the
// content loader rejects an endings table that is missing any of them.
const (
	EndingCompleteDisaster EndingID = "complete_disaster"
	EndingBudgetBlown      EndingID = "budget_blown"
	EndingRebuildMode      EndingID = "rebuild_mode"
	EndingMissedPlayoffs   EndingID = "missed_playoffs"
	EndingChampionshipRun  EndingID = "championship_run"
	EndingDevelopmentWin   EndingID = "development_win"
	EndingSavvyGM          EndingID = "savvy_gm"
	EndingBigSpender       EndingID = "big_spender"
	EndingPlayoffSuccess   EndingID = "playoff_success"
)

// AllEndingIDs returns every ending id the resolver can produce, in priority order
func AllEndingIDs() []EndingID {
	return []EndingID{
		EndingCompleteDisaster,
		EndingBudgetBlown,
		EndingRebuildMode,
		EndingMissedPlayoffs,
		EndingChampionshipRun,
		EndingDevelopmentWin,
		EndingSavvyGM,
		EndingBigSpender,
		EndingPlayoffSuccess,
	}
}
