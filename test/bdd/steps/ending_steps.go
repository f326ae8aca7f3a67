package steps

import (
	"fmt"

	"github.com/cucumber/godog"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/ending"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

func (sc *seasonContext) aFinishedSeasonWith(wins int, luxuryTax, totalSpend int64) error {
	rules := game.DefaultRules()
	sc.snapshot = game.Snapshot{
		Team:         "spurs",
		Round:        rules.TotalRounds + 1,
		TotalRounds:  rules.TotalRounds,
		Wins:         wins,
		Payroll:      totalSpend - luxuryTax,
		LuxuryTax:    luxuryTax,
		TotalSpend:   totalSpend,
		IsOverBudget: totalSpend > rules.BudgetLimit,
		MadePlayoffs: wins >= rules.PlayoffWins,
		GameOver:     true,
	}
	return nil
}

// rated prefers the live engine when a season is being played
func (sc *seasonContext) rated() (game.Snapshot, error) {
	if sc.engine != nil && sc.engine.HasActiveGame() {
		return sc.current()
	}
	return sc.snapshot, nil
}

func (sc *seasonContext) theResolvedEndingShouldBe(expected string) error {
	got := ending.Resolve(sc.snapshot)
	if got.String() != expected {
		return fmt.Errorf("expected ending %s, got %s", expected, got)
	}
	return nil
}

func (sc *seasonContext) theGMRatingShouldBe(score int, grade string) error {
	snap, err := sc.rated()
	if err != nil {
		return err
	}
	rating := ending.Rate(snap)
	if rating.Score != score || string(rating.Grade) != grade {
		return fmt.Errorf("expected rating %d (%s), got %d (%s)", score, grade, rating.Score, rating.Grade)
	}
	return nil
}

func (sc *seasonContext) theClaimCodeShouldBe(expected string) error {
	snap, err := sc.rated()
	if err != nil {
		return err
	}
	code, ok := ending.Rate(snap).Grade.ClaimCode()
	if expected == "" && ok {
		return fmt.Errorf("expected no claim code, got %s", code)
	}
	if code != expected {
		return fmt.Errorf("expected claim code %q, got %q", expected, code)
	}
	return nil
}

func initializeEndingSteps(ctx *godog.ScenarioContext, sc *seasonContext) {
	ctx.Step(`^a finished season with (\d+) wins, a luxury tax of (\d+) and a total spend of (\d+)$`, sc.aFinishedSeasonWith)
	ctx.Step(`^the resolved ending should be "([^"]*)"$`, sc.theResolvedEndingShouldBe)
	ctx.Step(`^the GM rating should be (\d+) graded "([^"]*)"$`, sc.theGMRatingShouldBe)
	ctx.Step(`^the claim code should be "([^"]*)"$`, sc.theClaimCodeShouldBe)
}
