package commands

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/metrics"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// StartGameCommand starts a fresh season for a team (id or abbreviation)
type StartGameCommand struct {
	TeamID string
}

// StartGameResponse carries the opening state and the first scenario
type StartGameResponse struct {
	Team     *roster.Team
	Snapshot game.Snapshot
	Scenario *roster.Scenario
}

// StartGameHandler handles the StartGame command
type StartGameHandler struct {
	engine   *game.Engine
	resolver *common.TeamResolver
}

// NewStartGameHandler creates a new StartGameHandler
func NewStartGameHandler(engine *game.Engine) *StartGameHandler {
	return &StartGameHandler{
		engine:   engine,
		resolver: common.NewTeamResolver(engine.Catalog()),
	}
}

// Handle executes the StartGame command
func (h *StartGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StartGameCommand")
	}

	team, err := h.resolver.ResolveTeam(cmd.TeamID)
	if err != nil {
		return nil, err
	}

	snapshot, err := h.engine.StartGame(team.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	scenario, err := h.engine.CurrentScenario()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve opening scenario: %w", err)
	}

	metrics.RecordGameStarted(team.ID().String())

	common.LoggerFromContext(ctx).Log("INFO", "game started", map[string]interface{}{
		"game_id": snapshot.GameID,
		"team":    team.ID().String(),
		"payroll": snapshot.Payroll,
	})

	return &StartGameResponse{
		Team:     team,
		Snapshot: snapshot,
		Scenario: scenario,
	}, nil
}
