package steps

import (
	"context"
	"fmt"
	"reflect"
	"strconv"

	"github.com/cucumber/godog"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/content"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/ending"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

// seasonContext drives the engine directly. The ending steps share it so the
// rating assertions work on played and constructed seasons alike.
type seasonContext struct {
	catalog  *roster.Catalog
	engine   *game.Engine
	snapshot game.Snapshot
	err      error
}

func (sc *seasonContext) reset() {
	sc.catalog = nil
	sc.engine = nil
	sc.snapshot = game.Snapshot{}
	sc.err = nil
}

func (sc *seasonContext) theBuiltInGameContentIsLoaded() error {
	catalog, err := content.LoadEmbedded()
	if err != nil {
		return err
	}
	sc.catalog = catalog
	sc.engine = game.NewEngine(catalog, tax.NewDefaultCalculator(), game.DefaultRules())
	return nil
}

func (sc *seasonContext) iStartASeasonWith(team string) error {
	resolved, err := common.NewTeamResolver(sc.catalog).ResolveTeam(team)
	if err != nil {
		sc.err = err
		return nil
	}
	sc.snapshot, sc.err = sc.engine.StartGame(resolved.ID())
	return nil
}

func (sc *seasonContext) iChoose(choice string) error {
	result, err := sc.engine.ApplyChoice(roster.ChoiceID(choice))
	sc.err = err
	if err == nil {
		sc.snapshot = result.Snapshot
	}
	return nil
}

func (sc *seasonContext) iMakeTheChoices(list string) error {
	for _, choice := range splitList(list) {
		if err := sc.iChoose(choice); err != nil {
			return err
		}
		if sc.err != nil {
			return fmt.Errorf("choice %s failed: %w", choice, sc.err)
		}
	}
	return nil
}

// current re-reads the engine so assertions see state after failed operations too
func (sc *seasonContext) current() (game.Snapshot, error) {
	snap, err := sc.engine.Snapshot()
	if err != nil {
		return game.Snapshot{}, err
	}
	sc.snapshot = snap
	return snap, nil
}

func (sc *seasonContext) theLastOperationShouldFailWith(code string) error {
	return expectErrorCode(sc.err, code)
}

func (sc *seasonContext) theRoundShouldBe(round int) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if snap.Round != round {
		return fmt.Errorf("expected round %d, got %d", round, snap.Round)
	}
	return nil
}

func (sc *seasonContext) theTeamShouldHaveWins(wins int) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if snap.Wins != wins {
		return fmt.Errorf("expected %d wins, got %d", wins, snap.Wins)
	}
	return nil
}

func (sc *seasonContext) thePayrollShouldBe(payroll int64) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if snap.Payroll != payroll {
		return fmt.Errorf("expected payroll %d, got %d", payroll, snap.Payroll)
	}
	return nil
}

func (sc *seasonContext) theRosterShouldBe(list string) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	var want []roster.PlayerID
	for _, id := range splitList(list) {
		want = append(want, roster.PlayerID(id))
	}
	if !reflect.DeepEqual(want, snap.Roster) {
		return fmt.Errorf("expected roster %v, got %v", want, snap.Roster)
	}
	return nil
}

func (sc *seasonContext) theCurrentTeamShouldBe(team string) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if snap.Team.String() != team {
		return fmt.Errorf("expected team %s, got %s", team, snap.Team)
	}
	return nil
}

func (sc *seasonContext) thereShouldBeDecisions(count int) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if len(snap.Decisions) != count {
		return fmt.Errorf("expected %d decisions, got %d", count, len(snap.Decisions))
	}
	if len(snap.Decisions) != snap.Round-1 {
		return fmt.Errorf("%d decisions recorded in round %d", len(snap.Decisions), snap.Round)
	}
	return nil
}

func (sc *seasonContext) theDecisionsShouldBe(table *godog.Table) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	rows := table.Rows[1:]
	if len(rows) != len(snap.Decisions) {
		return fmt.Errorf("expected %d decisions, got %d", len(rows), len(snap.Decisions))
	}
	for i, row := range rows {
		d := snap.Decisions[i]
		got := []string{strconv.Itoa(d.Round), d.ChoiceID.String(), d.Player.String()}
		want := []string{cellValue(table, row, "round"), cellValue(table, row, "choice"), cellValue(table, row, "player")}
		if !reflect.DeepEqual(want, got) {
			return fmt.Errorf("decision %d: expected %v, got %v", i+1, want, got)
		}
	}
	return nil
}

func (sc *seasonContext) theSeasonShouldBeOver() error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	if !snap.GameOver {
		return fmt.Errorf("expected the season to be over at round %d", snap.Round)
	}
	return nil
}

func (sc *seasonContext) theEndingShouldBe(expected string) error {
	snap, err := sc.current()
	if err != nil {
		return err
	}
	outcome, err := ending.Evaluate(sc.catalog, snap)
	if err != nil {
		return err
	}
	if outcome.Ending.ID().String() != expected {
		return fmt.Errorf("expected ending %s, got %s", expected, outcome.Ending.ID())
	}
	if outcome.Analysis == "" {
		return fmt.Errorf("ending %s has no analysis for %s", expected, snap.Team)
	}
	return nil
}

// InitializeSeasonScenario registers season and ending steps
func InitializeSeasonScenario(ctx *godog.ScenarioContext) {
	sc := &seasonContext{}

	ctx.Before(func(c context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return c, nil
	})

	ctx.Step(`^the built-in game content is loaded$`, sc.theBuiltInGameContentIsLoaded)
	ctx.Step(`^I start a season with "([^"]*)"$`, sc.iStartASeasonWith)
	ctx.Step(`^I choose "([^"]*)"$`, sc.iChoose)
	ctx.Step(`^I make the choices "([^"]*)"$`, sc.iMakeTheChoices)
	ctx.Step(`^the last operation should fail with "([^"]*)"$`, sc.theLastOperationShouldFailWith)
	ctx.Step(`^the round should be (\d+)$`, sc.theRoundShouldBe)
	ctx.Step(`^the team should have (\d+) wins$`, sc.theTeamShouldHaveWins)
	ctx.Step(`^the payroll should be (\d+)$`, sc.thePayrollShouldBe)
	ctx.Step(`^the roster should be "([^"]*)"$`, sc.theRosterShouldBe)
	ctx.Step(`^the current team should be "([^"]*)"$`, sc.theCurrentTeamShouldBe)
	ctx.Step(`^there should be (\d+) decisions$`, sc.thereShouldBeDecisions)
	ctx.Step(`^the decisions should be:$`, sc.theDecisionsShouldBe)
	ctx.Step(`^the season should be over$`, sc.theSeasonShouldBeOver)
	ctx.Step(`^the ending should be "([^"]*)"$`, sc.theEndingShouldBe)

	initializeEndingSteps(ctx, sc)
}
