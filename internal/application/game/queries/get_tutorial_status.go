package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

// GetTutorialStatusQuery asks whether the tutorial has been completed
type GetTutorialStatusQuery struct{}

// GetTutorialStatusResponse carries the tutorial flag
type GetTutorialStatusResponse struct {
	Complete bool
}

// GetTutorialStatusHandler handles the GetTutorialStatus query
type GetTutorialStatusHandler struct {
	engine   *game.Engine
	settings game.SettingsRepository
}

// NewGetTutorialStatusHandler creates a new GetTutorialStatusHandler
func NewGetTutorialStatusHandler(engine *game.Engine, settings game.SettingsRepository) *GetTutorialStatusHandler {
	return &GetTutorialStatusHandler{engine: engine, settings: settings}
}

// Handle executes the GetTutorialStatus query. Stored flag wins; an unreadable
// store falls back to the in-memory flag.
func (h *GetTutorialStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetTutorialStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTutorialStatusQuery")
	}

	complete := h.engine.TutorialComplete()
	if h.settings != nil {
		stored, err := h.settings.GetBool(ctx, game.TutorialSettingKey)
		if err != nil {
			common.LoggerFromContext(ctx).Log("WARNING", "failed to read tutorial flag", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			complete = complete || stored
			h.engine.SetTutorialComplete(complete)
		}
	}

	return &GetTutorialStatusResponse{Complete: complete}, nil
}
