package helpers

import (
	"context"
	"sync"
	"time"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// MockSaveSlotRepository is an in-memory test double for game.SaveSlotRepository
type MockSaveSlotRepository struct {
	mu    sync.RWMutex
	slots map[string]*game.SavedGame
	// FailWith makes every call return a PersistenceUnavailable error wrapping it
	FailWith error
	// LoadErr overrides the result of Load, e.g. to simulate a corrupted slot
	LoadErr error
}

var _ game.SaveSlotRepository = (*MockSaveSlotRepository)(nil)

// NewMockSaveSlotRepository creates an empty mock save slot repository
func NewMockSaveSlotRepository() *MockSaveSlotRepository {
	return &MockSaveSlotRepository{
		slots: make(map[string]*game.SavedGame),
	}
}

// Save stores a copy of the state in the slot
func (m *MockSaveSlotRepository) Save(ctx context.Context, slot string, state game.GameState, savedAt time.Time) error {
	if m.FailWith != nil {
		return shared.NewPersistenceUnavailableError("save", m.FailWith)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = &game.SavedGame{Slot: slot, State: state.Clone(), SavedAt: savedAt}
	return nil
}

// Load returns a copy of the slot, or nil when it is empty
func (m *MockSaveSlotRepository) Load(ctx context.Context, slot string) (*game.SavedGame, error) {
	if m.FailWith != nil {
		return nil, shared.NewPersistenceUnavailableError("load", m.FailWith)
	}
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	saved, ok := m.slots[slot]
	if !ok {
		return nil, nil
	}
	out := *saved
	out.State = saved.State.Clone()
	return &out, nil
}

// Clear empties the slot
func (m *MockSaveSlotRepository) Clear(ctx context.Context, slot string) error {
	if m.FailWith != nil {
		return shared.NewPersistenceUnavailableError("clear", m.FailWith)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, slot)
	return nil
}

// Has reports whether the slot holds a game
func (m *MockSaveSlotRepository) Has(slot string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.slots[slot]
	return ok
}
