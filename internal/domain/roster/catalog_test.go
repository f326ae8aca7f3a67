package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

func mustPlayer(t *testing.T, id string, salary int64, tier roster.Tier) *roster.Player {
	t.Helper()
	p, err := roster.NewPlayer(roster.PlayerSpec{
		ID:     roster.PlayerID(id),
		Name:   id,
		Salary: salary,
		Tier:   tier,
	})
	require.NoError(t, err)
	return p
}

func mustChoice(t *testing.T, id, next string, opts ...roster.ChoiceOption) *roster.Choice {
	t.Helper()
	c, err := roster.NewChoice(roster.ChoiceSpec{
		ID:          roster.ChoiceID(id),
		Type:        roster.ChoiceTypeDepth,
		Title:       id,
		WinDelta:    2,
		SalaryDelta: 1_000_000,
		Risk:        roster.RiskLow,
		Next:        roster.ScenarioID(next),
	}, opts...)
	require.NoError(t, err)
	return c
}

func mustScenario(t *testing.T, id, team string, round int, choices ...*roster.Choice) *roster.Scenario {
	t.Helper()
	s, err := roster.NewScenario(roster.ScenarioSpec{
		ID:       roster.ScenarioID(id),
		Team:     roster.TeamID(team),
		Round:    round,
		Title:    id,
		Terminal: len(choices) == 0,
		Choices:  choices,
	})
	require.NoError(t, err)
	return s
}

func allEndings(t *testing.T) []*roster.Ending {
	t.Helper()
	var endings []*roster.Ending
	for _, id := range roster.AllEndingIDs() {
		e, err := roster.NewEnding(roster.EndingSpec{ID: id, Title: id.String(), Type: roster.EndingTypeNeutral})
		require.NoError(t, err)
		endings = append(endings, e)
	}
	return endings
}

type catalogParts struct {
	teams     []*roster.Team
	players   []*roster.Player
	scenarios []*roster.Scenario
	endings   []*roster.Ending
}

func validParts(t *testing.T) catalogParts {
	t.Helper()
	team, err := roster.NewTeam(roster.TeamSpec{
		ID:              "spurs",
		Name:            "San Antonio Spurs",
		StartingWins:    38,
		StartingPayroll: 98_000_000,
		InitialRoster:   []roster.PlayerID{"wembanyama", "tre_jones"},
	})
	require.NoError(t, err)

	return catalogParts{
		teams: []*roster.Team{team},
		players: []*roster.Player{
			mustPlayer(t, "wembanyama", 12_000_000, roster.TierStar),
			mustPlayer(t, "tre_jones", 9_000_000, roster.TierRole),
			mustPlayer(t, "chris_paul", 10_000_000, roster.TierRole),
		},
		scenarios: []*roster.Scenario{
			mustScenario(t, "spurs_r1", "spurs", 1,
				mustChoice(t, "sign_vet", "spurs_final", roster.WithPlayer("chris_paul")),
			),
			mustScenario(t, "spurs_final", "spurs", 0),
		},
		endings: allEndings(t),
	}
}

func (p catalogParts) build() (*roster.Catalog, error) {
	return roster.NewCatalog(p.teams, p.players, p.scenarios, p.endings)
}

func TestNewCatalog_ValidContent(t *testing.T) {
	// Arrange
	parts := validParts(t)

	// Act
	catalog, err := parts.build()

	// Assert
	require.NoError(t, err)
	assert.True(t, catalog.IsLoaded())

	team, ok := catalog.Team("spurs")
	require.True(t, ok)
	assert.Equal(t, "San Antonio Spurs", team.Name())

	players := catalog.TeamRoster("spurs")
	require.Len(t, players, 2)
	assert.Equal(t, "wembanyama", players[0].ID().String())
	assert.Equal(t, "tre_jones", players[1].ID().String())
}

func TestNewCatalog_RejectsDanglingNextPointer(t *testing.T) {
	// Arrange
	parts := validParts(t)
	parts.scenarios = []*roster.Scenario{
		mustScenario(t, "spurs_r1", "spurs", 1, mustChoice(t, "go", "spurs_r2")),
	}

	// Act
	_, err := parts.build()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next scenario spurs_r2 does not exist")
}

func TestNewCatalog_RejectsSkippedRound(t *testing.T) {
	// Arrange
	parts := validParts(t)
	parts.scenarios = []*roster.Scenario{
		mustScenario(t, "spurs_r1", "spurs", 1, mustChoice(t, "go", "spurs_r3")),
		mustScenario(t, "spurs_r3", "spurs", 3, mustChoice(t, "finish", "spurs_final")),
		mustScenario(t, "spurs_final", "spurs", 0),
	}

	// Act
	_, err := parts.build()

	// Assert
	require.Error(t, err)
	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "scenario spurs_r1 choice go", validationErr.Field)
	assert.Contains(t, err.Error(), "next scenario spurs_r3 is round 3, want 2")
}

func TestNewCatalog_RejectsCrossTeamNextPointer(t *testing.T) {
	// Arrange
	parts := validParts(t)
	lakers, err := roster.NewTeam(roster.TeamSpec{ID: "lakers", Name: "Los Angeles Lakers"})
	require.NoError(t, err)
	parts.teams = append(parts.teams, lakers)
	parts.scenarios = []*roster.Scenario{
		mustScenario(t, "spurs_r1", "spurs", 1, mustChoice(t, "go", "lakers_r1")),
		mustScenario(t, "lakers_r1", "lakers", 1, mustChoice(t, "stay", "lakers_final")),
		mustScenario(t, "lakers_final", "lakers", 0),
	}

	// Act
	_, err = parts.build()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to team lakers")
}

func TestNewCatalog_RejectsUnknownPlayers(t *testing.T) {
	// Arrange
	parts := validParts(t)
	parts.players = parts.players[:1]

	// Act
	_, err := parts.build()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown roster player tre_jones")
	assert.Contains(t, err.Error(), "unknown player chris_paul")
}

func TestNewCatalog_RequiresEveryEnding(t *testing.T) {
	// Arrange
	parts := validParts(t)
	parts.endings = parts.endings[1:]

	// Act
	_, err := parts.build()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing ending: complete_disaster")
}

func TestNewCatalog_RequiresFirstRoundScenario(t *testing.T) {
	// Arrange
	parts := validParts(t)
	parts.scenarios = []*roster.Scenario{mustScenario(t, "spurs_final", "spurs", 0)}

	// Act
	_, err := parts.build()

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing round-1 scenario spurs_r1")
}

func TestCatalog_NilIsNotLoaded(t *testing.T) {
	var catalog *roster.Catalog

	assert.False(t, catalog.IsLoaded())
	_, ok := catalog.Team("spurs")
	assert.False(t, ok)
	assert.Empty(t, catalog.Teams())
}

func TestCatalog_PlayersByTier(t *testing.T) {
	catalog, err := validParts(t).build()
	require.NoError(t, err)

	roles := catalog.PlayersByTier(roster.TierRole)

	require.Len(t, roles, 2)
	assert.Equal(t, roster.PlayerID("chris_paul"), roles[0].ID())
	assert.Equal(t, roster.PlayerID("tre_jones"), roles[1].ID())
}

func TestTeam_InitialRosterIsCopied(t *testing.T) {
	catalog, err := validParts(t).build()
	require.NoError(t, err)
	team, _ := catalog.Team("spurs")

	ids := team.InitialRoster()
	ids[0] = "someone_else"

	assert.Equal(t, roster.PlayerID("wembanyama"), team.InitialRoster()[0])
}

func TestScenario_TerminalRules(t *testing.T) {
	_, err := roster.NewScenario(roster.ScenarioSpec{
		ID:       "spurs_final",
		Team:     "spurs",
		Terminal: true,
		Choices:  []*roster.Choice{mustChoice(t, "x", "spurs_r1")},
	})
	assert.Error(t, err)

	_, err = roster.NewScenario(roster.ScenarioSpec{ID: "spurs_r1", Team: "spurs", Round: 1})
	assert.Error(t, err)
}

func TestChoice_PlayerIsTagged(t *testing.T) {
	with := mustChoice(t, "sign", "spurs_final", roster.WithPlayer("chris_paul"))
	without := mustChoice(t, "pass", "spurs_final")

	pid, ok := with.Player()
	assert.True(t, ok)
	assert.Equal(t, roster.PlayerID("chris_paul"), pid)

	_, ok = without.Player()
	assert.False(t, ok)
}

func TestEnding_AnalysisFallsBackToDescription(t *testing.T) {
	ending, err := roster.NewEnding(roster.EndingSpec{
		ID:          roster.EndingSavvyGM,
		Type:        roster.EndingTypeVictory,
		Description: "generic",
		Analysis:    map[roster.TeamID]string{"spurs": "spurs specific"},
	})
	require.NoError(t, err)

	assert.Equal(t, "spurs specific", ending.Analysis("spurs"))
	assert.Equal(t, "generic", ending.Analysis("lakers"))
	assert.True(t, ending.IsVictory())
}
