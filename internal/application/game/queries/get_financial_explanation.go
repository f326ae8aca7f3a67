package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
)

// GetFinancialExplanationQuery asks for the plain-language cap summary of the current game
type GetFinancialExplanationQuery struct{}

// GetFinancialExplanationResponse carries the explanation text
type GetFinancialExplanationResponse struct {
	Explanation string
	Snapshot    game.Snapshot
}

// GetFinancialExplanationHandler handles the GetFinancialExplanation query
type GetFinancialExplanationHandler struct {
	engine *game.Engine
}

// NewGetFinancialExplanationHandler creates a new GetFinancialExplanationHandler
func NewGetFinancialExplanationHandler(engine *game.Engine) *GetFinancialExplanationHandler {
	return &GetFinancialExplanationHandler{engine: engine}
}

// Handle executes the GetFinancialExplanation query
func (h *GetFinancialExplanationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetFinancialExplanationQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetFinancialExplanationQuery")
	}

	snapshot, err := h.engine.Snapshot()
	if err != nil {
		return nil, err
	}

	return &GetFinancialExplanationResponse{
		Explanation: h.engine.Calculator().Explain(snapshot.Payroll, snapshot.IsOverBudget),
		Snapshot:    snapshot,
	}, nil
}
