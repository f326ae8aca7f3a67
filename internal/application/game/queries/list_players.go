package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// ListPlayersQuery browses the player pool. Both filters are optional; when
// both are set a player must match both.
type ListPlayersQuery struct {
	Tier    string
	NBATeam string
}

// ListPlayersResponse carries the matching players
type ListPlayersResponse struct {
	Players []*roster.Player
}

// ListPlayersHandler handles the ListPlayers query
type ListPlayersHandler struct {
	catalog *roster.Catalog
}

// NewListPlayersHandler creates a new ListPlayersHandler
func NewListPlayersHandler(catalog *roster.Catalog) *ListPlayersHandler {
	return &ListPlayersHandler{catalog: catalog}
}

// Handle executes the ListPlayers query
func (h *ListPlayersHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListPlayersQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListPlayersQuery")
	}

	if !h.catalog.IsLoaded() {
		return nil, shared.NewDataNotLoadedError("content catalog is empty")
	}

	abbr := strings.ToUpper(strings.TrimSpace(query.NBATeam))
	tierName := strings.ToLower(strings.TrimSpace(query.Tier))

	if tierName == "" {
		if abbr != "" {
			return &ListPlayersResponse{Players: h.catalog.PlayersByNBATeam(abbr)}, nil
		}
		var all []*roster.Player
		for _, tier := range []roster.Tier{roster.TierStar, roster.TierRole, roster.TierRookie} {
			all = append(all, h.catalog.PlayersByTier(tier)...)
		}
		return &ListPlayersResponse{Players: all}, nil
	}

	tier, err := roster.ParseTier(tierName)
	if err != nil {
		return nil, shared.NewValidationError("tier", err.Error())
	}

	players := h.catalog.PlayersByTier(tier)
	if abbr != "" {
		kept := players[:0:0]
		for _, p := range players {
			if p.NBATeam() == abbr {
				kept = append(kept, p)
			}
		}
		players = kept
	}
	return &ListPlayersResponse{Players: players}, nil
}
