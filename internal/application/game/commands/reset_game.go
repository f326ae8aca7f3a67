package commands

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

// ResetGameCommand discards the current game and its save slot
type ResetGameCommand struct{}

// ResetGameResponse reports whether the save slot was cleared too
type ResetGameResponse struct {
	SaveCleared bool
}

// ResetGameHandler handles the ResetGame command
type ResetGameHandler struct {
	engine *game.Engine
	saves  game.SaveSlotRepository
	slot   string
}

// NewResetGameHandler creates a new ResetGameHandler
func NewResetGameHandler(engine *game.Engine, saves game.SaveSlotRepository, slot string) *ResetGameHandler {
	return &ResetGameHandler{engine: engine, saves: saves, slot: slot}
}

// Handle executes the ResetGame command. A failing save store does not fail the reset.
func (h *ResetGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ResetGameCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ResetGameCommand")
	}

	h.engine.Reset()

	if h.saves == nil {
		return &ResetGameResponse{}, nil
	}
	if err := h.saves.Clear(ctx, h.slot); err != nil {
		common.LoggerFromContext(ctx).Log("WARNING", "failed to clear save slot during reset", map[string]interface{}{
			"slot":  h.slot,
			"error": err.Error(),
		})
		return &ResetGameResponse{SaveCleared: false}, nil
	}

	return &ResetGameResponse{SaveCleared: true}, nil
}
