package setup

import (
	"reflect"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	engine   *game.Engine
	saves    game.SaveSlotRepository
	settings game.SettingsRepository
	clock    shared.Clock
	saveSlot string
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	engine *game.Engine,
	saves game.SaveSlotRepository,
	settings game.SettingsRepository,
	clock shared.Clock,
	saveSlot string,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if saveSlot == "" {
		saveSlot = game.DefaultSaveSlot
	}

	return &HandlerRegistry{
		engine:   engine,
		saves:    saves,
		settings: settings,
		clock:    clock,
		saveSlot: saveSlot,
	}
}

type registration struct {
	request mediator.Request
	handler mediator.RequestHandler
}

func register(m mediator.Mediator, regs []registration) error {
	for _, r := range regs {
		if err := m.Register(reflect.TypeOf(r.request), r.handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGameHandlers registers the handlers that drive a game
//
// This method registers:
//   - StartGameCommand, ApplyChoiceCommand, ResetGameCommand
//   - GetCurrentScenarioQuery, GetGameStateQuery, GetEndingQuery, GetFinancialExplanationQuery
//   - CompleteTutorialCommand, GetTutorialStatusQuery
func (r *HandlerRegistry) RegisterGameHandlers(m mediator.Mediator) error {
	return register(m, []registration{
		{&gameCommands.StartGameCommand{}, gameCommands.NewStartGameHandler(r.engine)},
		{&gameCommands.ApplyChoiceCommand{}, gameCommands.NewApplyChoiceHandler(r.engine)},
		{&gameCommands.ResetGameCommand{}, gameCommands.NewResetGameHandler(r.engine, r.saves, r.saveSlot)},
		{&gameCommands.CompleteTutorialCommand{}, gameCommands.NewCompleteTutorialHandler(r.engine, r.settings)},
		{&gameQueries.GetCurrentScenarioQuery{}, gameQueries.NewGetCurrentScenarioHandler(r.engine)},
		{&gameQueries.GetGameStateQuery{}, gameQueries.NewGetGameStateHandler(r.engine)},
		{&gameQueries.GetEndingQuery{}, gameQueries.NewGetEndingHandler(r.engine)},
		{&gameQueries.GetFinancialExplanationQuery{}, gameQueries.NewGetFinancialExplanationHandler(r.engine)},
		{&gameQueries.GetTutorialStatusQuery{}, gameQueries.NewGetTutorialStatusHandler(r.engine, r.settings)},
	})
}

// RegisterCatalogHandlers registers the read-only content queries
func (r *HandlerRegistry) RegisterCatalogHandlers(m mediator.Mediator) error {
	return register(m, []registration{
		{&gameQueries.ListTeamsQuery{}, gameQueries.NewListTeamsHandler(r.engine.Catalog(), r.engine.Calculator())},
		{&gameQueries.GetTeamRosterQuery{}, gameQueries.NewGetTeamRosterHandler(r.engine.Catalog())},
		{&gameQueries.ListPlayersQuery{}, gameQueries.NewListPlayersHandler(r.engine.Catalog())},
	})
}

// RegisterSaveHandlers registers save slot handlers. Without a save store they
// still answer: save and clear report PersistenceUnavailable, load finds nothing.
func (r *HandlerRegistry) RegisterSaveHandlers(m mediator.Mediator) error {
	return register(m, []registration{
		{&gameCommands.SaveGameCommand{}, gameCommands.NewSaveGameHandler(r.engine, r.saves, r.clock, r.saveSlot)},
		{&gameCommands.LoadGameCommand{}, gameCommands.NewLoadGameHandler(r.engine, r.saves, r.saveSlot)},
		{&gameCommands.ClearSaveCommand{}, gameCommands.NewClearSaveHandler(r.saves, r.saveSlot)},
	})
}

// CreateConfiguredMediator creates a mediator with every handler registered and
// the middlewares applied in the order given
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()

	for _, mw := range middlewares {
		m.RegisterMiddleware(mw)
	}

	if err := r.RegisterGameHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterCatalogHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterSaveHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
