package steps

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/cucumber/godog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/content"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/persistence"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/mediator"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/setup"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/database"
)

// gameSession is one run of the program: a fresh engine wired to the shared database
type gameSession struct {
	engine   *game.Engine
	mediator mediator.Mediator
}

type saveSlotContext struct {
	db       *gorm.DB
	catalog  *roster.Catalog
	session  *gameSession
	saved    game.GameState
	loadResp *commands.LoadGameResponse
	loadedAs game.GameState
}

func (sc *saveSlotContext) reset() {
	if sc.db != nil {
		if sqlDB, err := sc.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	*sc = saveSlotContext{}
}

func (sc *saveSlotContext) newSession() (*gameSession, error) {
	engine := game.NewEngine(sc.catalog, tax.NewDefaultCalculator(), game.DefaultRules())
	registry := setup.NewHandlerRegistry(
		engine,
		persistence.NewGormSaveSlotRepository(sc.db),
		persistence.NewGormSettingsRepository(sc.db),
		nil,
		"",
	)
	m, err := registry.CreateConfiguredMediator()
	if err != nil {
		return nil, err
	}
	return &gameSession{engine: engine, mediator: m}, nil
}

func (sc *saveSlotContext) aGameSessionBackedByAnEmptyDatabase() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	catalog, err := content.LoadEmbedded()
	if err != nil {
		return err
	}
	sc.db = db
	sc.catalog = catalog
	sc.session, err = sc.newSession()
	return err
}

func (sc *saveSlotContext) iStartASeasonInTheSession(team string) error {
	_, err := sc.session.mediator.Send(context.Background(), &commands.StartGameCommand{TeamID: team})
	return err
}

func (sc *saveSlotContext) iChooseInTheSession(choice string) error {
	_, err := sc.session.mediator.Send(context.Background(), &commands.ApplyChoiceCommand{ChoiceID: choice})
	return err
}

func (sc *saveSlotContext) iSaveTheGame() error {
	if _, err := sc.session.mediator.Send(context.Background(), &commands.SaveGameCommand{}); err != nil {
		return err
	}
	state, err := sc.session.engine.Export()
	if err != nil {
		return err
	}
	sc.saved = state
	return nil
}

func (sc *saveSlotContext) aNewSessionLoadsTheSavedGame() error {
	session, err := sc.newSession()
	if err != nil {
		return err
	}
	sc.session = session

	response, err := session.mediator.Send(context.Background(), &commands.LoadGameCommand{})
	if err != nil {
		return err
	}
	sc.loadResp = response.(*commands.LoadGameResponse)
	if sc.loadResp.Loaded {
		if sc.loadedAs, err = session.engine.Export(); err != nil {
			return err
		}
	}
	return nil
}

func (sc *saveSlotContext) theLoadedGameShouldMatchTheSavedOne() error {
	if !sc.loadResp.Loaded {
		return fmt.Errorf("expected a saved game to be loaded")
	}
	if !reflect.DeepEqual(sc.saved, sc.loadedAs) {
		return fmt.Errorf("loaded state %+v differs from saved state %+v", sc.loadedAs, sc.saved)
	}
	return nil
}

func (sc *saveSlotContext) noGameShouldHaveBeenLoaded() error {
	if sc.loadResp.Loaded {
		return fmt.Errorf("expected no game, loaded one saved at %s", sc.loadResp.SavedAt)
	}
	if sc.session.engine.HasActiveGame() {
		return fmt.Errorf("expected no active game after an empty load")
	}
	return nil
}

func (sc *saveSlotContext) theSaveSlotHolds(raw string) error {
	return sc.db.Create(&persistence.SaveSlotModel{
		Slot:    game.DefaultSaveSlot,
		TeamID:  "bucks",
		Round:   1,
		State:   datatypes.JSON(raw),
		SavedAt: time.Now(),
	}).Error
}

func (sc *saveSlotContext) iResetTheGame() error {
	response, err := sc.session.mediator.Send(context.Background(), &commands.ResetGameCommand{})
	if err != nil {
		return err
	}
	if !response.(*commands.ResetGameResponse).SaveCleared {
		return fmt.Errorf("reset did not clear the save slot")
	}
	return nil
}

func (sc *saveSlotContext) theSaveSlotShouldBeEmpty() error {
	var count int64
	if err := sc.db.Model(&persistence.SaveSlotModel{}).Where("slot = ?", game.DefaultSaveSlot).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected an empty save slot, found %d rows", count)
	}
	return nil
}

func (sc *saveSlotContext) iCompleteTheTutorial() error {
	response, err := sc.session.mediator.Send(context.Background(), &commands.CompleteTutorialCommand{})
	if err != nil {
		return err
	}
	if !response.(*commands.CompleteTutorialResponse).Persisted {
		return fmt.Errorf("tutorial flag was not persisted")
	}
	return nil
}

func (sc *saveSlotContext) aNewSessionShouldReportTheTutorialAsComplete() error {
	session, err := sc.newSession()
	if err != nil {
		return err
	}
	response, err := session.mediator.Send(context.Background(), &queries.GetTutorialStatusQuery{})
	if err != nil {
		return err
	}
	if !response.(*queries.GetTutorialStatusResponse).Complete {
		return fmt.Errorf("expected the tutorial to be complete in a new session")
	}
	return nil
}

// InitializeSaveSlotScenario registers save slot steps
func InitializeSaveSlotScenario(ctx *godog.ScenarioContext) {
	sc := &saveSlotContext{}

	ctx.Before(func(c context.Context, s *godog.Scenario) (context.Context, error) {
		sc.reset()
		return c, nil
	})

	ctx.Step(`^a game session backed by an empty database$`, sc.aGameSessionBackedByAnEmptyDatabase)
	ctx.Step(`^I start a season with "([^"]*)" in the session$`, sc.iStartASeasonInTheSession)
	ctx.Step(`^I choose "([^"]*)" in the session$`, sc.iChooseInTheSession)
	ctx.Step(`^I save the game$`, sc.iSaveTheGame)
	ctx.Step(`^a new session loads the saved game$`, sc.aNewSessionLoadsTheSavedGame)
	ctx.Step(`^the loaded game should match the saved one$`, sc.theLoadedGameShouldMatchTheSavedOne)
	ctx.Step(`^no game should have been loaded$`, sc.noGameShouldHaveBeenLoaded)
	ctx.Step(`^the save slot holds "([^"]*)"$`, sc.theSaveSlotHolds)
	ctx.Step(`^I reset the game$`, sc.iResetTheGame)
	ctx.Step(`^the save slot should be empty$`, sc.theSaveSlotShouldBeEmpty)
	ctx.Step(`^I complete the tutorial$`, sc.iCompleteTheTutorial)
	ctx.Step(`^a new session should report the tutorial as complete$`, sc.aNewSessionShouldReportTheTutorialAsComplete)
}
