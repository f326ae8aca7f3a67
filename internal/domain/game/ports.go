package game

import (
	"context"
	"time"
)

// SavedGame is the content of the save slot
type SavedGame struct {
	Slot    string
	State   GameState
	SavedAt time.Time
}

// SaveSlotRepository persists a single named save slot.
// Load returns (nil, nil) when the slot is empty.
type SaveSlotRepository interface {
	Save(ctx context.Context, slot string, state GameState, savedAt time.Time) error
	Load(ctx context.Context, slot string) (*SavedGame, error)
	Clear(ctx context.Context, slot string) error
}

// SettingsRepository persists small player preferences such as the tutorial flag
type SettingsRepository interface {
	GetBool(ctx context.Context, key string) (bool, error)
	SetBool(ctx context.Context, key string, value bool) error
}

// Storage keys
const (
	DefaultSaveSlot    = "nba_tax_game_save"
	TutorialSettingKey = "nba_tax_tutorial_complete"
)
