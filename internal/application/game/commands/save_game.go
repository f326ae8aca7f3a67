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

// errNoSaveStore is the cause reported when the session runs without storage
var errNoSaveStore = errors.New("no save store configured")

// SaveGameCommand writes the current game to the save slot
type SaveGameCommand struct{}

// SaveGameResponse reports where and when the game was saved
type SaveGameResponse struct {
	Slot    string
	SavedAt time.Time
}

// SaveGameHandler handles the SaveGame command
type SaveGameHandler struct {
	engine *game.Engine
	saves  game.SaveSlotRepository
	clock  shared.Clock
	slot   string
}

// NewSaveGameHandler creates a new SaveGameHandler
func NewSaveGameHandler(engine *game.Engine, saves game.SaveSlotRepository, clock shared.Clock, slot string) *SaveGameHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &SaveGameHandler{engine: engine, saves: saves, clock: clock, slot: slot}
}

// Handle executes the SaveGame command
func (h *SaveGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*SaveGameCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveGameCommand")
	}

	state, err := h.engine.Export()
	if err != nil {
		return nil, err
	}

	if h.saves == nil {
		return nil, shared.NewPersistenceUnavailableError("save", errNoSaveStore)
	}

	savedAt := h.clock.Now()
	if err := h.saves.Save(ctx, h.slot, state, savedAt); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return &SaveGameResponse{Slot: h.slot, SavedAt: savedAt}, nil
}
