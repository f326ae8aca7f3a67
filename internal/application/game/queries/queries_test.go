package queries_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/ending"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
	"github.com/braydenokley13-ux/T101-M1-L2/test/helpers"
)

func newEngine(t *testing.T) *game.Engine {
	t.Helper()
	return game.NewEngine(helpers.NewTestCatalog(t), tax.NewDefaultCalculator(), game.DefaultRules())
}

func TestGetCurrentScenarioHandler_IncludesSignablePlayers(t *testing.T) {
	// Arrange
	engine := newEngine(t)
	_, err := engine.StartGame(helpers.TestSpurs)
	require.NoError(t, err)

	// Act
	resp, err := queries.NewGetCurrentScenarioHandler(engine).Handle(context.Background(), &queries.GetCurrentScenarioQuery{})

	// Assert
	require.NoError(t, err)
	current := resp.(*queries.GetCurrentScenarioResponse)
	assert.Equal(t, roster.ScenarioID("spurs_r1"), current.Scenario.ID())
	assert.Equal(t, 1, current.Round)
	assert.Equal(t, 4, current.TotalRounds)
	require.Contains(t, current.Players, roster.PlayerID("paul_george"))
	require.Contains(t, current.Players, roster.PlayerID("stephon_castle"))
	assert.Equal(t, int64(35_000_000), current.Players["paul_george"].Salary())
}

func TestGetCurrentScenarioHandler_NoGame(t *testing.T) {
	_, err := queries.NewGetCurrentScenarioHandler(newEngine(t)).Handle(context.Background(), &queries.GetCurrentScenarioQuery{})

	assert.ErrorIs(t, err, shared.ErrNoActiveScenario)
}

func TestGetGameStateHandler(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.StartGame(helpers.TestSpurs)
	require.NoError(t, err)

	resp, err := queries.NewGetGameStateHandler(engine).Handle(context.Background(), &queries.GetGameStateQuery{})

	require.NoError(t, err)
	state := resp.(*queries.GetGameStateResponse)
	assert.Equal(t, "San Antonio Spurs", state.Team.Name())
	assert.Equal(t, int64(38_000_000), state.Snapshot.CapRemaining)
	assert.Equal(t, 8, state.Snapshot.WinsNeeded)
	assert.Len(t, state.Players, 3)
}

func TestGetGameStateHandler_NoGame(t *testing.T) {
	_, err := queries.NewGetGameStateHandler(newEngine(t)).Handle(context.Background(), &queries.GetGameStateQuery{})

	assert.ErrorIs(t, err, shared.ErrNoActiveGame)
}

func TestGetEndingHandler_FinishedSeason(t *testing.T) {
	// Arrange
	engine := newEngine(t)
	_, err := engine.StartGame(helpers.TestSpurs)
	require.NoError(t, err)
	for _, id := range []roster.ChoiceID{"draft_rookie", "stand_pat", "develop", "hold"} {
		_, err := engine.ApplyChoice(id)
		require.NoError(t, err)
	}

	// Act
	resp, err := queries.NewGetEndingHandler(engine).Handle(context.Background(), &queries.GetEndingQuery{})

	// Assert
	require.NoError(t, err)
	result := resp.(*queries.GetEndingResponse)
	assert.True(t, result.Final)
	assert.Equal(t, roster.EndingRebuildMode, result.Outcome.Ending.ID())
	assert.Equal(t, "rebuild_mode for the Spurs", result.Outcome.Analysis)
	// 44 wins + 30 budget + 20 tax
	assert.Equal(t, 94, result.Outcome.Rating.Score)
	assert.Equal(t, ending.GradeAPlus, result.Outcome.Rating.Grade)
	assert.Equal(t, ending.ClaimCodeElite, result.ClaimCode)
}

func TestGetEndingHandler_PreviewWhileInProgress(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.StartGame(helpers.TestLakers)
	require.NoError(t, err)

	resp, err := queries.NewGetEndingHandler(engine).Handle(context.Background(), &queries.GetEndingQuery{})

	require.NoError(t, err)
	assert.False(t, resp.(*queries.GetEndingResponse).Final)
}

func TestGetEndingHandler_NoGame(t *testing.T) {
	_, err := queries.NewGetEndingHandler(newEngine(t)).Handle(context.Background(), &queries.GetEndingQuery{})

	assert.ErrorIs(t, err, shared.ErrNoActiveGame)
}

func TestGetTutorialStatusHandler(t *testing.T) {
	engine := newEngine(t)
	settings := helpers.NewMockSettingsRepository()
	handler := queries.NewGetTutorialStatusHandler(engine, settings)

	resp, err := handler.Handle(context.Background(), &queries.GetTutorialStatusQuery{})
	require.NoError(t, err)
	assert.False(t, resp.(*queries.GetTutorialStatusResponse).Complete)

	require.NoError(t, settings.SetBool(context.Background(), game.TutorialSettingKey, true))

	resp, err = handler.Handle(context.Background(), &queries.GetTutorialStatusQuery{})
	require.NoError(t, err)
	assert.True(t, resp.(*queries.GetTutorialStatusResponse).Complete)
	assert.True(t, engine.TutorialComplete())
}

func TestGetTutorialStatusHandler_StoreFailureFallsBackToEngine(t *testing.T) {
	engine := newEngine(t)
	engine.SetTutorialComplete(true)
	settings := helpers.NewMockSettingsRepository()
	settings.FailWith = errors.New("gone")

	resp, err := queries.NewGetTutorialStatusHandler(engine, settings).Handle(context.Background(), &queries.GetTutorialStatusQuery{})

	require.NoError(t, err)
	assert.True(t, resp.(*queries.GetTutorialStatusResponse).Complete)
}

func TestListTeamsHandler(t *testing.T) {
	resp, err := queries.NewListTeamsHandler(helpers.NewTestCatalog(t), tax.NewDefaultCalculator()).
		Handle(context.Background(), &queries.ListTeamsQuery{})

	require.NoError(t, err)
	teams := resp.(*queries.ListTeamsResponse).Teams
	require.Len(t, teams, 2)
	assert.Equal(t, helpers.TestSpurs, teams[0].Team.ID())
	assert.Equal(t, int64(0), teams[0].StartingTax)
	assert.Equal(t, int64(38_000_000), teams[0].CapRemaining)
	assert.Equal(t, int64(3_000_000), teams[1].StartingTax)
}

func TestListTeamsHandler_NotLoaded(t *testing.T) {
	_, err := queries.NewListTeamsHandler(nil, tax.NewDefaultCalculator()).Handle(context.Background(), &queries.ListTeamsQuery{})

	assert.ErrorIs(t, err, shared.ErrDataNotLoaded)
}

func TestGetTeamRosterHandler(t *testing.T) {
	resp, err := queries.NewGetTeamRosterHandler(helpers.NewTestCatalog(t)).
		Handle(context.Background(), &queries.GetTeamRosterQuery{TeamID: "spurs"})

	require.NoError(t, err)
	result := resp.(*queries.GetTeamRosterResponse)
	require.Len(t, result.Players, 3)
	assert.Equal(t, roster.PlayerID("wembanyama"), result.Players[0].ID())
	assert.Equal(t, int64(48_000_000), result.RosterSalary)
}

func TestGetTeamRosterHandler_InvalidTeam(t *testing.T) {
	_, err := queries.NewGetTeamRosterHandler(helpers.NewTestCatalog(t)).
		Handle(context.Background(), &queries.GetTeamRosterQuery{TeamID: "knicks"})

	assert.ErrorIs(t, err, shared.ErrInvalidTeam)
}

func TestGetFinancialExplanationHandler(t *testing.T) {
	engine := newEngine(t)
	_, err := engine.StartGame(helpers.TestLakers)
	require.NoError(t, err)

	resp, err := queries.NewGetFinancialExplanationHandler(engine).
		Handle(context.Background(), &queries.GetFinancialExplanationQuery{})

	require.NoError(t, err)
	assert.Equal(t, "You're a little over the cap. You'll pay $3.0M in luxury tax.",
		resp.(*queries.GetFinancialExplanationResponse).Explanation)
}

func playerIDs(players []*roster.Player) []roster.PlayerID {
	ids := make([]roster.PlayerID, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID())
	}
	return ids
}

func TestListPlayersHandler(t *testing.T) {
	tests := []struct {
		name  string
		query queries.ListPlayersQuery
		want  []roster.PlayerID
	}{
		{
			name:  "by tier",
			query: queries.ListPlayersQuery{Tier: "role"},
			want:  []roster.PlayerID{"bruce_brown", "devin_vassell", "malik_monk", "tre_jones"},
		},
		{
			name:  "by nba team is case insensitive",
			query: queries.ListPlayersQuery{NBATeam: "lal"},
			want:  []roster.PlayerID{"anthony_davis", "lebron_james"},
		},
		{
			name:  "tier and nba team together",
			query: queries.ListPlayersQuery{Tier: "star", NBATeam: "FA"},
			want:  []roster.PlayerID{"jimmy_butler", "paul_george"},
		},
		{
			name:  "no match",
			query: queries.ListPlayersQuery{Tier: "rookie", NBATeam: "SAS"},
			want:  []roster.PlayerID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := tt.query
			resp, err := queries.NewListPlayersHandler(helpers.NewTestCatalog(t)).Handle(context.Background(), &query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, playerIDs(resp.(*queries.ListPlayersResponse).Players))
		})
	}
}

func TestListPlayersHandler_NoFilterGroupsByTier(t *testing.T) {
	resp, err := queries.NewListPlayersHandler(helpers.NewTestCatalog(t)).
		Handle(context.Background(), &queries.ListPlayersQuery{})

	require.NoError(t, err)
	players := resp.(*queries.ListPlayersResponse).Players
	require.Len(t, players, 10)
	assert.Equal(t, roster.PlayerID("anthony_davis"), players[0].ID())
	assert.Equal(t, roster.PlayerID("stephon_castle"), players[9].ID())
}

func TestListPlayersHandler_InvalidTier(t *testing.T) {
	_, err := queries.NewListPlayersHandler(helpers.NewTestCatalog(t)).
		Handle(context.Background(), &queries.ListPlayersQuery{Tier: "legend"})

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "tier", validationErr.Field)
}

func TestListPlayersHandler_NotLoaded(t *testing.T) {
	_, err := queries.NewListPlayersHandler(nil).Handle(context.Background(), &queries.ListPlayersQuery{})

	assert.ErrorIs(t, err, shared.ErrDataNotLoaded)
}
