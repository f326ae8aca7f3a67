package shared_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

func TestGameError_IsMatchesByCode(t *testing.T) {
	err := shared.NewInvalidTeamError("knicks")

	assert.True(t, errors.Is(err, shared.ErrInvalidTeam))
	assert.False(t, errors.Is(err, shared.ErrInvalidChoice))
	assert.Contains(t, err.Error(), `"knicks"`)
}

func TestGameError_IsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to start game: %w", shared.NewDataNotLoadedError("catalog is empty"))

	assert.True(t, errors.Is(wrapped, shared.ErrDataNotLoaded))
}

func TestPersistenceUnavailable_UnwrapsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := shared.NewPersistenceUnavailableError("save", cause)

	assert.True(t, errors.Is(err, shared.ErrPersistenceUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "persistence unavailable during save: disk I/O error", err.Error())
}
