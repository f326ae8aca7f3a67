package helpers

import (
	"context"
	"sync"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// MockSettingsRepository is an in-memory test double for game.SettingsRepository
type MockSettingsRepository struct {
	mu       sync.RWMutex
	values   map[string]bool
	FailWith error
}

var _ game.SettingsRepository = (*MockSettingsRepository)(nil)

// NewMockSettingsRepository creates an empty mock settings repository
func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{values: make(map[string]bool)}
}

// GetBool returns the stored flag, false when unset
func (m *MockSettingsRepository) GetBool(ctx context.Context, key string) (bool, error) {
	if m.FailWith != nil {
		return false, shared.NewPersistenceUnavailableError("read setting", m.FailWith)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

// SetBool stores the flag
func (m *MockSettingsRepository) SetBool(ctx context.Context, key string, value bool) error {
	if m.FailWith != nil {
		return shared.NewPersistenceUnavailableError("write setting", m.FailWith)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
