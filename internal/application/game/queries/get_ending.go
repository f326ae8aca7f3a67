package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/ending"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

// GetEndingQuery asks for the ending, its analysis and the GM rating
type GetEndingQuery struct{}

// GetEndingResponse is the results screen
type GetEndingResponse struct {
	Outcome   *ending.Outcome
	Snapshot  game.Snapshot
	ClaimCode string
	Final     bool
}

// GetEndingHandler handles the GetEnding query. It resolves the ending of the
// state as it stands, so a game in progress gets a preview with Final=false.
type GetEndingHandler struct {
	engine *game.Engine
}

// NewGetEndingHandler creates a new GetEndingHandler
func NewGetEndingHandler(engine *game.Engine) *GetEndingHandler {
	return &GetEndingHandler{engine: engine}
}

// Handle executes the GetEnding query
func (h *GetEndingHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetEndingQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetEndingQuery")
	}

	snapshot, err := h.engine.Snapshot()
	if err != nil {
		return nil, err
	}

	outcome, err := ending.Evaluate(h.engine.Catalog(), snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ending: %w", err)
	}

	code, _ := outcome.Rating.Grade.ClaimCode()

	return &GetEndingResponse{
		Outcome:   outcome,
		Snapshot:  snapshot,
		ClaimCode: code,
		Final:     snapshot.GameOver,
	}, nil
}
