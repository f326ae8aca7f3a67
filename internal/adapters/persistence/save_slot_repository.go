package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// GormSaveSlotRepository implements game.SaveSlotRepository using GORM
type GormSaveSlotRepository struct {
	db *gorm.DB
}

var _ game.SaveSlotRepository = (*GormSaveSlotRepository)(nil)

// NewGormSaveSlotRepository creates a new GORM save slot repository
func NewGormSaveSlotRepository(db *gorm.DB) *GormSaveSlotRepository {
	return &GormSaveSlotRepository{db: db}
}

// Save writes the state into the slot, replacing whatever it held
func (r *GormSaveSlotRepository) Save(ctx context.Context, slot string, state game.GameState, savedAt time.Time) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	model := &SaveSlotModel{
		Slot:    slot,
		GameID:  state.GameID,
		TeamID:  state.Team.String(),
		Round:   state.Round,
		State:   datatypes.JSON(payload),
		SavedAt: savedAt.UTC(),
	}

	// Upsert: create or update
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return shared.NewPersistenceUnavailableError("save", err)
	}
	return nil
}

// Load reads the slot. An empty slot returns (nil, nil); a payload that no longer
// decodes returns an InvalidSave error.
func (r *GormSaveSlotRepository) Load(ctx context.Context, slot string) (*game.SavedGame, error) {
	var model SaveSlotModel
	result := r.db.WithContext(ctx).Where("slot = ?", slot).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, shared.NewPersistenceUnavailableError("load", result.Error)
	}

	var state game.GameState
	if err := json.Unmarshal(model.State, &state); err != nil {
		return nil, shared.NewInvalidSaveError(fmt.Sprintf("slot %s: %v", slot, err))
	}

	return &game.SavedGame{
		Slot:    model.Slot,
		State:   state,
		SavedAt: model.SavedAt,
	}, nil
}

// Clear deletes the slot. Clearing an empty slot is not an error.
func (r *GormSaveSlotRepository) Clear(ctx context.Context, slot string) error {
	if err := r.db.WithContext(ctx).Where("slot = ?", slot).Delete(&SaveSlotModel{}).Error; err != nil {
		return shared.NewPersistenceUnavailableError("clear", err)
	}
	return nil
}
