package commands

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/metrics"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/ending"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// ApplyChoiceCommand picks a choice in the current scenario
type ApplyChoiceCommand struct {
	ChoiceID string
}

// ApplyChoiceResponse carries the updated state. NextScenario is nil once the game is over.
type ApplyChoiceResponse struct {
	Decision     game.Decision
	Snapshot     game.Snapshot
	Consequence  string
	Over         bool
	NextScenario *roster.Scenario
}

// ApplyChoiceHandler handles the ApplyChoice command
type ApplyChoiceHandler struct {
	engine *game.Engine
}

// NewApplyChoiceHandler creates a new ApplyChoiceHandler
func NewApplyChoiceHandler(engine *game.Engine) *ApplyChoiceHandler {
	return &ApplyChoiceHandler{engine: engine}
}

// Handle executes the ApplyChoice command
func (h *ApplyChoiceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ApplyChoiceCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ApplyChoiceCommand")
	}

	result, err := h.engine.ApplyChoice(roster.ChoiceID(cmd.ChoiceID))
	if err != nil {
		return nil, err
	}

	decisions := result.Snapshot.Decisions
	response := &ApplyChoiceResponse{
		Decision:    decisions[len(decisions)-1],
		Snapshot:    result.Snapshot,
		Consequence: result.Consequence,
		Over:        result.Over,
	}

	team := result.Snapshot.Team.String()
	metrics.RecordChoice(team, string(response.Decision.ChoiceType), result.Snapshot.Payroll, result.Snapshot.LuxuryTax)

	if result.Over {
		recordSeasonEnd(ctx, h.engine.Catalog(), result.Snapshot)
	} else {
		next, err := h.engine.CurrentScenario()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve next scenario: %w", err)
		}
		response.NextScenario = next
	}

	common.LoggerFromContext(ctx).Log("INFO", "choice applied", map[string]interface{}{
		"game_id": result.Snapshot.GameID,
		"choice":  cmd.ChoiceID,
		"round":   response.Decision.Round,
		"payroll": result.Snapshot.Payroll,
		"over":    result.Over,
	})

	return response, nil
}

func recordSeasonEnd(ctx context.Context, catalog *roster.Catalog, snapshot game.Snapshot) {
	outcome, err := ending.Evaluate(catalog, snapshot)
	if err != nil {
		common.LoggerFromContext(ctx).Log("WARNING", "failed to resolve ending for metrics", map[string]interface{}{
			"game_id": snapshot.GameID,
			"error":   err.Error(),
		})
		return
	}
	metrics.RecordEnding(snapshot.Team.String(), outcome.Ending.ID().String(), string(outcome.Rating.Grade), snapshot.Wins)
}
