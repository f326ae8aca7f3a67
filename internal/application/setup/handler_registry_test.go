package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/logging"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/setup"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
	"github.com/braydenokley13-ux/T101-M1-L2/test/helpers"
)

func TestCreateConfiguredMediator_PlaysAFullSeason(t *testing.T) {
	// Arrange
	engine := game.NewEngine(helpers.NewTestCatalog(t), tax.NewDefaultCalculator(), game.DefaultRules())
	saves := helpers.NewMockSaveSlotRepository()
	logger := helpers.NewMockLogger()
	registry := setup.NewHandlerRegistry(engine, saves, helpers.NewMockSettingsRepository(), nil, "")

	m, err := registry.CreateConfiguredMediator(logging.RequestLoggingMiddleware(logger))
	require.NoError(t, err)
	ctx := context.Background()

	// Act
	_, err = m.Send(ctx, &gameCommands.StartGameCommand{TeamID: "spurs"})
	require.NoError(t, err)
	for _, id := range []string{"sign_star", "add_depth", "develop", "hold"} {
		_, err = m.Send(ctx, &gameCommands.ApplyChoiceCommand{ChoiceID: id})
		require.NoError(t, err)
	}
	_, err = m.Send(ctx, &gameCommands.SaveGameCommand{})
	require.NoError(t, err)
	resp, err := m.Send(ctx, &gameQueries.GetEndingQuery{})
	require.NoError(t, err)

	// Assert
	result := resp.(*gameQueries.GetEndingResponse)
	assert.True(t, result.Final)
	// 52 wins, $138M payroll, $3M tax, $141M spend
	assert.Equal(t, roster.EndingChampionshipRun, result.Outcome.Ending.ID())
	assert.True(t, saves.Has(game.DefaultSaveSlot))
	assert.True(t, logger.HasMessage(logging.LevelInfo, "game started"))
	assert.True(t, logger.HasMessage(logging.LevelDebug, "request handled"))
}

func TestCreateConfiguredMediator_WithoutSaveStore(t *testing.T) {
	// Arrange
	engine := game.NewEngine(helpers.NewTestCatalog(t), tax.NewDefaultCalculator(), game.DefaultRules())
	registry := setup.NewHandlerRegistry(engine, nil, nil, nil, "")

	m, err := registry.CreateConfiguredMediator()
	require.NoError(t, err)
	ctx := context.Background()

	// Act
	loadResp, loadErr := m.Send(ctx, &gameCommands.LoadGameCommand{})
	_, startErr := m.Send(ctx, &gameCommands.StartGameCommand{TeamID: "spurs"})
	_, saveErr := m.Send(ctx, &gameCommands.SaveGameCommand{})
	_, clearErr := m.Send(ctx, &gameCommands.ClearSaveCommand{})
	_, choiceErr := m.Send(ctx, &gameCommands.ApplyChoiceCommand{ChoiceID: "sign_star"})

	// Assert
	require.NoError(t, loadErr)
	assert.False(t, loadResp.(*gameCommands.LoadGameResponse).Loaded)
	require.NoError(t, startErr)
	assert.ErrorIs(t, saveErr, shared.ErrPersistenceUnavailable)
	assert.ErrorIs(t, clearErr, shared.ErrPersistenceUnavailable)
	require.NoError(t, choiceErr)
	snap, err := engine.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Round)
}
