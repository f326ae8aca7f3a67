package commands

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// ClearSaveCommand empties the save slot without touching the current game
type ClearSaveCommand struct{}

// ClearSaveResponse is returned once the slot is empty
type ClearSaveResponse struct {
	Slot string
}

// ClearSaveHandler handles the ClearSave command
type ClearSaveHandler struct {
	saves game.SaveSlotRepository
	slot  string
}

// NewClearSaveHandler creates a new ClearSaveHandler
func NewClearSaveHandler(saves game.SaveSlotRepository, slot string) *ClearSaveHandler {
	return &ClearSaveHandler{saves: saves, slot: slot}
}

// Handle executes the ClearSave command
func (h *ClearSaveHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ClearSaveCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ClearSaveCommand")
	}

	if h.saves == nil {
		return nil, shared.NewPersistenceUnavailableError("clear", errNoSaveStore)
	}

	if err := h.saves.Clear(ctx, h.slot); err != nil {
		return nil, fmt.Errorf("failed to clear save: %w", err)
	}

	return &ClearSaveResponse{Slot: h.slot}, nil
}
