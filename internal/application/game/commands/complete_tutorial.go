package commands

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

// CompleteTutorialCommand marks the tutorial as seen
type CompleteTutorialCommand struct{}

// CompleteTutorialResponse reports whether the flag reached storage
type CompleteTutorialResponse struct {
	Persisted bool
}

// CompleteTutorialHandler handles the CompleteTutorial command
type CompleteTutorialHandler struct {
	engine   *game.Engine
	settings game.SettingsRepository
}

// NewCompleteTutorialHandler creates a new CompleteTutorialHandler
func NewCompleteTutorialHandler(engine *game.Engine, settings game.SettingsRepository) *CompleteTutorialHandler {
	return &CompleteTutorialHandler{engine: engine, settings: settings}
}

// Handle executes the CompleteTutorial command. Storage failures are logged, not returned.
func (h *CompleteTutorialHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CompleteTutorialCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *CompleteTutorialCommand")
	}

	h.engine.SetTutorialComplete(true)

	if h.settings == nil {
		return &CompleteTutorialResponse{}, nil
	}
	if err := h.settings.SetBool(ctx, game.TutorialSettingKey, true); err != nil {
		common.LoggerFromContext(ctx).Log("WARNING", "failed to persist tutorial flag", map[string]interface{}{
			"error": err.Error(),
		})
		return &CompleteTutorialResponse{Persisted: false}, nil
	}

	return &CompleteTutorialResponse{Persisted: true}, nil
}
