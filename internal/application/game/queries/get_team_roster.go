package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// GetTeamRosterQuery asks for a team's starting roster
type GetTeamRosterQuery struct {
	TeamID string
}

// GetTeamRosterResponse carries the roster in configured order
type GetTeamRosterResponse struct {
	Team    *roster.Team
	Players []*roster.Player
	// RosterSalary sums listed salaries; it can differ from the team's starting payroll
	RosterSalary int64
}

// GetTeamRosterHandler handles the GetTeamRoster query
type GetTeamRosterHandler struct {
	catalog  *roster.Catalog
	resolver *common.TeamResolver
}

// NewGetTeamRosterHandler creates a new GetTeamRosterHandler
func NewGetTeamRosterHandler(catalog *roster.Catalog) *GetTeamRosterHandler {
	return &GetTeamRosterHandler{
		catalog:  catalog,
		resolver: common.NewTeamResolver(catalog),
	}
}

// Handle executes the GetTeamRoster query
func (h *GetTeamRosterHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetTeamRosterQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetTeamRosterQuery")
	}

	team, err := h.resolver.ResolveTeam(query.TeamID)
	if err != nil {
		return nil, err
	}

	players := h.catalog.TeamRoster(team.ID())
	var total int64
	for _, p := range players {
		total += p.Salary()
	}

	return &GetTeamRosterResponse{
		Team:         team,
		Players:      players,
		RosterSalary: total,
	}, nil
}
