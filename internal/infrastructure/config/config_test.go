package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/infrastructure/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Arrange
	t.Chdir(t.TempDir())

	// Act
	cfg, err := config.LoadConfig("")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.NotEmpty(t, cfg.Database.Path)
	assert.Equal(t, config.DefaultSalaryCap, cfg.Game.SalaryCap)
	assert.Equal(t, config.DefaultBudgetLimit, cfg.Game.BudgetLimit)
	assert.Equal(t, 46, cfg.Game.PlayoffWins)
	assert.Equal(t, 4, cfg.Game.TotalRounds)
	assert.Equal(t, "nba_tax_game_save", cfg.Game.SaveSlot)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  type: sqlite
  path: ":memory:"
game:
  budget_limit: 160000000
  save_slot: classroom
metrics:
  enabled: true
`), 0644))
	t.Setenv("TAXGAME_GAME_PLAYOFF_WINS", "44")
	t.Setenv("TAXGAME_LOGGING_LEVEL", "debug")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, int64(160_000_000), cfg.Game.BudgetLimit)
	assert.Equal(t, "classroom", cfg.Game.SaveSlot)
	assert.Equal(t, 44, cfg.Game.PlayoffWins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  type: mongo\n"), 0644))

	_, err := config.LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	cfg := config.LoadConfigOrDefault(path)

	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestUserConfigHandler_DefaultTeam(t *testing.T) {
	// Arrange
	handler, err := config.NewUserConfigHandlerAt(t.TempDir())
	require.NoError(t, err)

	// Act
	empty, err := handler.Load()
	require.NoError(t, err)
	require.NoError(t, handler.SetDefaultTeam("spurs"))
	stored, err := handler.Load()
	require.NoError(t, err)
	require.NoError(t, handler.ClearDefaultTeam())
	cleared, err := handler.Load()
	require.NoError(t, err)

	// Assert
	assert.Empty(t, empty.DefaultTeam)
	assert.Equal(t, "spurs", stored.DefaultTeam)
	assert.Empty(t, cleared.DefaultTeam)
}
