package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

// ChoiceResult is returned by ApplyChoice
type ChoiceResult struct {
	Snapshot    Snapshot
	Consequence string
	Over        bool
}

// Engine owns the one live GameState and is its only mutator.
// Not safe for concurrent use: one engine per session.
type Engine struct {
	catalog          *roster.Catalog
	calc             *tax.Calculator
	rules            Rules
	newID            func() string
	state            *GameState
	tutorialComplete bool
}

// Option configures an Engine
type Option func(*Engine)

// WithIDGenerator replaces the uuid game id generator
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) {
		e.newID = fn
	}
}

// WithTutorialComplete seeds the tutorial flag, usually from settings storage
func WithTutorialComplete(done bool) Option {
	return func(e *Engine) {
		e.tutorialComplete = done
	}
}

// NewEngine creates an engine over a content catalog. A nil or empty catalog is
// accepted; StartGame then fails with DataNotLoaded.
func NewEngine(catalog *roster.Catalog, calc *tax.Calculator, rules Rules, opts ...Option) *Engine {
	if calc == nil {
		calc = tax.NewDefaultCalculator()
	}
	e := &Engine{
		catalog: catalog,
		calc:    calc,
		rules:   rules,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the content the engine plays from
func (e *Engine) Catalog() *roster.Catalog { return e.catalog }

// Calculator returns the luxury tax calculator
func (e *Engine) Calculator() *tax.Calculator { return e.calc }

// Rules returns the season rules
func (e *Engine) Rules() Rules { return e.rules }

// StartGame replaces any current state with a fresh game for the team.
// On error the previous state is left untouched.
func (e *Engine) StartGame(teamID roster.TeamID) (Snapshot, error) {
	if !e.catalog.IsLoaded() {
		return Snapshot{}, shared.NewDataNotLoadedError("content catalog is empty")
	}
	team, ok := e.catalog.Team(teamID)
	if !ok {
		return Snapshot{}, shared.NewInvalidTeamError(teamID.String())
	}

	luxuryTax := e.calc.Compute(team.StartingPayroll())
	e.state = &GameState{
		GameID:       e.newID(),
		Team:         team.ID(),
		Round:        1,
		Wins:         team.StartingWins(),
		Payroll:      team.StartingPayroll(),
		LuxuryTax:    luxuryTax,
		TotalSpend:   team.StartingPayroll() + luxuryTax,
		Decisions:    []Decision{},
		Roster:       team.InitialRoster(),
		ScenarioPath: []roster.ScenarioID{team.FirstScenarioID()},
	}

	return e.snapshot(), nil
}

// HasActiveGame reports whether a game has been started or restored
func (e *Engine) HasActiveGame() bool {
	return e.state != nil
}

// IsOver reports whether the active game has finished
func (e *Engine) IsOver() bool {
	return e.state != nil && e.state.GameOver
}

// CurrentScenario resolves the scenario for the current team and round
func (e *Engine) CurrentScenario() (*roster.Scenario, error) {
	if e.state == nil {
		return nil, shared.NewNoActiveScenarioError("no game in progress")
	}
	if e.state.GameOver {
		return nil, shared.NewNoActiveScenarioError("game is over")
	}
	id, ok := e.state.CurrentScenarioID()
	if !ok {
		return nil, shared.NewNoActiveScenarioError("scenario path is empty")
	}
	scenario, ok := e.catalog.Scenario(id)
	if !ok || scenario.Team() != e.state.Team || scenario.Round() != e.state.Round {
		return nil, shared.NewNoActiveScenarioError(
			fmt.Sprintf("no scenario for team %s round %d", e.state.Team, e.state.Round))
	}
	return scenario, nil
}

// ApplyChoice applies the effects of a choice in the current scenario and advances the round
func (e *Engine) ApplyChoice(choiceID roster.ChoiceID) (*ChoiceResult, error) {
	scenario, err := e.CurrentScenario()
	if err != nil {
		return nil, err
	}
	choice, ok := scenario.Choice(choiceID)
	if !ok {
		return nil, shared.NewInvalidChoiceError(choiceID.String(), scenario.ID().String())
	}

	s := e.state
	decision := Decision{
		Round:       s.Round,
		ChoiceID:    choice.ID(),
		ChoiceType:  choice.Type(),
		Title:       choice.Title(),
		WinDelta:    choice.WinDelta(),
		SalaryDelta: choice.SalaryDelta(),
	}

	s.Wins += choice.WinDelta()
	s.Payroll += choice.SalaryDelta()
	s.LuxuryTax = e.calc.Compute(s.Payroll)
	s.TotalSpend = s.Payroll + s.LuxuryTax

	if pid, has := choice.Player(); has {
		decision.Player = pid
		s.Roster = append(s.Roster, pid)
	}
	s.Decisions = append(s.Decisions, decision)
	s.ScenarioPath = append(s.ScenarioPath, choice.Next())
	s.Round++

	if s.Round > e.rules.TotalRounds {
		s.GameOver = true
	}
	if next, ok := e.catalog.Scenario(choice.Next()); ok && next.IsTerminal() {
		s.GameOver = true
	}

	return &ChoiceResult{
		Snapshot:    e.snapshot(),
		Consequence: choice.Consequence(),
		Over:        s.GameOver,
	}, nil
}

// Snapshot returns the derived read-only view of the current game
func (e *Engine) Snapshot() (Snapshot, error) {
	if e.state == nil {
		return Snapshot{}, shared.NewNoActiveGameError()
	}
	return e.snapshot(), nil
}

func (e *Engine) snapshot() Snapshot {
	return project(*e.state, e.calc.SalaryCap(), e.rules)
}

// Reset discards the current game. The tutorial flag survives.
func (e *Engine) Reset() {
	e.state = nil
}

// Export returns a copy of the raw state for persistence
func (e *Engine) Export() (GameState, error) {
	if e.state == nil {
		return GameState{}, shared.NewNoActiveGameError()
	}
	return e.state.Clone(), nil
}

// Restore replaces the current state with a previously exported one after
// checking it against the catalog. On error the current state is kept.
func (e *Engine) Restore(state GameState) error {
	if !e.catalog.IsLoaded() {
		return shared.NewDataNotLoadedError("content catalog is empty")
	}
	if err := e.validateState(state); err != nil {
		return err
	}
	restored := state.Clone()
	e.state = &restored
	return nil
}

func (e *Engine) validateState(s GameState) error {
	team, ok := e.catalog.Team(s.Team)
	if !ok {
		return shared.NewInvalidSaveError(fmt.Sprintf("unknown team %q", s.Team))
	}
	if s.Round < 1 || s.Round > e.rules.TotalRounds+1 {
		return shared.NewInvalidSaveError(fmt.Sprintf("round %d out of range", s.Round))
	}
	if len(s.Decisions) != s.Round-1 {
		return shared.NewInvalidSaveError(fmt.Sprintf("%d decisions recorded for round %d", len(s.Decisions), s.Round))
	}
	if len(s.ScenarioPath) != s.Round {
		return shared.NewInvalidSaveError(fmt.Sprintf("scenario path has %d entries for round %d", len(s.ScenarioPath), s.Round))
	}
	if s.Payroll < 0 || s.LuxuryTax < 0 || s.TotalSpend < 0 {
		return shared.NewInvalidSaveError("negative money amount")
	}
	if s.ScenarioPath[0] != team.FirstScenarioID() {
		return shared.NewInvalidSaveError(fmt.Sprintf("path starts at %s", s.ScenarioPath[0]))
	}
	for _, id := range s.ScenarioPath {
		scenario, ok := e.catalog.Scenario(id)
		if !ok || scenario.Team() != s.Team {
			return shared.NewInvalidSaveError(fmt.Sprintf("unknown scenario %s", id))
		}
	}

	// the over flag must agree with the path, otherwise the game is stuck
	// without a scenario or an ending
	last, _ := e.catalog.Scenario(s.ScenarioPath[len(s.ScenarioPath)-1])
	over := s.Round > e.rules.TotalRounds || last.IsTerminal()
	if s.GameOver != over {
		return shared.NewInvalidSaveError(fmt.Sprintf("game over is %t at round %d on scenario %s", s.GameOver, s.Round, last.ID()))
	}
	if !over && last.Round() != s.Round {
		return shared.NewInvalidSaveError(fmt.Sprintf("scenario %s is round %d, game is at round %d", last.ID(), last.Round(), s.Round))
	}

	initial := team.InitialRoster()
	if len(s.Roster) < len(initial) {
		return shared.NewInvalidSaveError("roster is smaller than the starting roster")
	}
	for i, pid := range initial {
		if s.Roster[i] != pid {
			return shared.NewInvalidSaveError("roster does not start with the team's starting roster")
		}
	}
	return nil
}

// TutorialComplete reports the tutorial flag
func (e *Engine) TutorialComplete() bool {
	return e.tutorialComplete
}

// SetTutorialComplete sets the tutorial flag
func (e *Engine) SetTutorialComplete(done bool) {
	e.tutorialComplete = done
}
