package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// GetCurrentScenarioQuery asks for the scenario the player must answer now
type GetCurrentScenarioQuery struct{}

// GetCurrentScenarioResponse carries the scenario and the records of any players its choices sign
type GetCurrentScenarioResponse struct {
	Scenario    *roster.Scenario
	Round       int
	TotalRounds int
	Players     map[roster.PlayerID]*roster.Player
}

// GetCurrentScenarioHandler handles the GetCurrentScenario query
type GetCurrentScenarioHandler struct {
	engine *game.Engine
}

// NewGetCurrentScenarioHandler creates a new GetCurrentScenarioHandler
func NewGetCurrentScenarioHandler(engine *game.Engine) *GetCurrentScenarioHandler {
	return &GetCurrentScenarioHandler{engine: engine}
}

// Handle executes the GetCurrentScenario query
func (h *GetCurrentScenarioHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetCurrentScenarioQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCurrentScenarioQuery")
	}

	scenario, err := h.engine.CurrentScenario()
	if err != nil {
		return nil, err
	}

	players := make(map[roster.PlayerID]*roster.Player)
	for _, choice := range scenario.Choices() {
		if pid, ok := choice.Player(); ok {
			if p, found := h.engine.Catalog().Player(pid); found {
				players[pid] = p
			}
		}
	}

	return &GetCurrentScenarioResponse{
		Scenario:    scenario,
		Round:       scenario.Round(),
		TotalRounds: h.engine.Rules().TotalRounds,
		Players:     players,
	}, nil
}
