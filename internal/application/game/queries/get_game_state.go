package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// GetGameStateQuery asks for the derived view of the current game
type GetGameStateQuery struct{}

// GetGameStateResponse carries the snapshot and the team being managed
type GetGameStateResponse struct {
	Team     *roster.Team
	Snapshot game.Snapshot
	Players  []*roster.Player
}

// GetGameStateHandler handles the GetGameState query
type GetGameStateHandler struct {
	engine *game.Engine
}

// NewGetGameStateHandler creates a new GetGameStateHandler
func NewGetGameStateHandler(engine *game.Engine) *GetGameStateHandler {
	return &GetGameStateHandler{engine: engine}
}

// Handle executes the GetGameState query
func (h *GetGameStateHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetGameStateQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetGameStateQuery")
	}

	snapshot, err := h.engine.Snapshot()
	if err != nil {
		return nil, err
	}

	team, _ := h.engine.Catalog().Team(snapshot.Team)

	return &GetGameStateResponse{
		Team:     team,
		Snapshot: snapshot,
		Players:  h.engine.Catalog().ResolvePlayers(snapshot.Roster),
	}, nil
}
