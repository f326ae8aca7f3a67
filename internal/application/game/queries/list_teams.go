package queries

import (
	"context"
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/application/common"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

// ListTeamsQuery asks for every selectable team
type ListTeamsQuery struct{}

// TeamSummary is a team with its opening tax position
type TeamSummary struct {
	Team         *roster.Team
	StartingTax  int64
	CapRemaining int64
}

// ListTeamsResponse carries the teams in catalog order
type ListTeamsResponse struct {
	Teams []TeamSummary
}

// ListTeamsHandler handles the ListTeams query
type ListTeamsHandler struct {
	catalog *roster.Catalog
	calc    *tax.Calculator
}

// NewListTeamsHandler creates a new ListTeamsHandler
func NewListTeamsHandler(catalog *roster.Catalog, calc *tax.Calculator) *ListTeamsHandler {
	return &ListTeamsHandler{catalog: catalog, calc: calc}
}

// Handle executes the ListTeams query
func (h *ListTeamsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListTeamsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListTeamsQuery")
	}

	if !h.catalog.IsLoaded() {
		return nil, shared.NewDataNotLoadedError("content catalog is empty")
	}

	teams := h.catalog.Teams()
	summaries := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		summaries = append(summaries, TeamSummary{
			Team:         team,
			StartingTax:  h.calc.Compute(team.StartingPayroll()),
			CapRemaining: max(0, h.calc.SalaryCap()-team.StartingPayroll()),
		})
	}

	return &ListTeamsResponse{Teams: summaries}, nil
}
