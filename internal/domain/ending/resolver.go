package ending

import (
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

const (
	rebuildSpendCeiling    int64 = 130_000_000
	savvySpendCeiling      int64 = 140_000_000
	championshipWins             = 50
	bigSpenderTaxThreshold int64 = 10_000_000
)

// Resolve picks the ending for a finished season. Rules are checked in
// priority order and the first match wins.
func Resolve(s game.Snapshot) roster.EndingID {
	switch {
	case s.IsOverBudget && !s.MadePlayoffs:
		return roster.EndingCompleteDisaster
	case s.IsOverBudget:
		return roster.EndingBudgetBlown
	case !s.MadePlayoffs && s.TotalSpend < rebuildSpendCeiling:
		return roster.EndingRebuildMode
	case !s.MadePlayoffs:
		return roster.EndingMissedPlayoffs
	case s.Wins >= championshipWins && !s.IsOverBudget:
		return roster.EndingChampionshipRun
	case s.TotalSpend <= rebuildSpendCeiling:
		return roster.EndingDevelopmentWin
	case s.TotalSpend <= savvySpendCeiling:
		return roster.EndingSavvyGM
	case s.LuxuryTax >= bigSpenderTaxThreshold:
		return roster.EndingBigSpender
	default:
		return roster.EndingPlayoffSuccess
	}
}
