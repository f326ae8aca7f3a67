package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// LoadGameCommand restores the game held in the save slot
type LoadGameCommand struct{}

// LoadGameResponse reports whether a game was restored. An empty or unreadable
// slot is not an error: Loaded is false and the current state is kept.
type LoadGameResponse struct {
	Loaded   bool
	SavedAt  time.Time
	Snapshot *game.Snapshot
}

// LoadGameHandler handles the LoadGame command
type LoadGameHandler struct {
	engine *game.Engine
	saves  game.SaveSlotRepository
	slot   string
}

// NewLoadGameHandler creates a new LoadGameHandler
func NewLoadGameHandler(engine *game.Engine, saves game.SaveSlotRepository, slot string) *LoadGameHandler {
	return &LoadGameHandler{engine: engine, saves: saves, slot: slot}
}

// Handle executes the LoadGame command
func (h *LoadGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*LoadGameCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *LoadGameCommand")
	}

	logger := common.LoggerFromContext(ctx)

	if h.saves == nil {
		logger.Log("WARNING", "no save store configured, nothing to load", map[string]interface{}{
			"slot": h.slot,
		})
		return &LoadGameResponse{Loaded: false}, nil
	}

	saved, err := h.saves.Load(ctx, h.slot)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidSave) {
			logger.Log("WARNING", "ignoring unreadable save slot", map[string]interface{}{
				"slot":  h.slot,
				"error": err.Error(),
			})
			return &LoadGameResponse{Loaded: false}, nil
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if saved == nil {
		return &LoadGameResponse{Loaded: false}, nil
	}

	if err := h.engine.Restore(saved.State); err != nil {
		if errors.Is(err, shared.ErrInvalidSave) {
			logger.Log("WARNING", "ignoring inconsistent saved game", map[string]interface{}{
				"slot":  h.slot,
				"error": err.Error(),
			})
			return &LoadGameResponse{Loaded: false}, nil
		}
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	snapshot, err := h.engine.Snapshot()
	if err != nil {
		return nil, err
	}

	return &LoadGameResponse{
		Loaded:   true,
		SavedAt:  saved.SavedAt,
		Snapshot: &snapshot,
	}, nil
}
