package common

import (
	"strings"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// TeamResolver resolves the team a user typed into a catalog record.
//
// Resolution order:
//  1. Exact team id ("spurs")
//  2. Case-insensitive id ("Spurs")
//  3. Case-insensitive abbreviation ("SAS")
//
// Returns DataNotLoaded for an empty catalog and InvalidTeam when nothing matches.
type TeamResolver struct {
	catalog *roster.Catalog
}

// NewTeamResolver creates a resolver over the catalog
func NewTeamResolver(catalog *roster.Catalog) *TeamResolver {
	return &TeamResolver{catalog: catalog}
}

// ResolveTeam finds the team for an id or abbreviation
func (r *TeamResolver) ResolveTeam(input string) (*roster.Team, error) {
	if !r.catalog.IsLoaded() {
		return nil, shared.NewDataNotLoadedError("content catalog is empty")
	}

	if team, ok := r.catalog.Team(roster.TeamID(input)); ok {
		return team, nil
	}

	needle := strings.TrimSpace(input)
	for _, team := range r.catalog.Teams() {
		if strings.EqualFold(team.ID().String(), needle) || strings.EqualFold(team.Abbr(), needle) {
			return team, nil
		}
	}

	return nil, shared.NewInvalidTeamError(input)
}
