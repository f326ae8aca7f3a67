package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/persistence"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/test/helpers"
)

func TestSettingsRepository_MissingKeyIsFalse(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSettingsRepository(db)

	value, err := repo.GetBool(context.Background(), game.TutorialSettingKey)

	require.NoError(t, err)
	assert.False(t, value)
}

func TestSettingsRepository_SetAndGet(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSettingsRepository(db)
	ctx := context.Background()

	// Act
	require.NoError(t, repo.SetBool(ctx, game.TutorialSettingKey, true))
	first, err := repo.GetBool(ctx, game.TutorialSettingKey)
	require.NoError(t, err)
	require.NoError(t, repo.SetBool(ctx, game.TutorialSettingKey, false))
	second, err := repo.GetBool(ctx, game.TutorialSettingKey)
	require.NoError(t, err)

	// Assert
	assert.True(t, first)
	assert.False(t, second)
}

func TestSettingsRepository_NonBooleanValue(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSettingsRepository(db)
	require.NoError(t, db.Create(&persistence.SettingModel{Key: "flag", Value: "maybe"}).Error)

	_, err := repo.GetBool(context.Background(), "flag")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-boolean")
}

func TestSettingsRepository_DatabaseGone(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSettingsRepository(db)
	require.NoError(t, db.Migrator().DropTable(&persistence.SettingModel{}))

	err := repo.SetBool(context.Background(), "flag", true)

	assert.ErrorIs(t, err, shared.ErrPersistenceUnavailable)
}
