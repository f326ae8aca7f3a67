package ending

import (
	"fmt"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// Outcome is everything the results screen shows
type Outcome struct {
	Ending   *roster.Ending
	Analysis string
	Rating   Rating
}

// Evaluate resolves the ending record, its team analysis and the rating for a snapshot
func Evaluate(catalog *roster.Catalog, s game.Snapshot) (*Outcome, error) {
	id := Resolve(s)
	record, ok := catalog.Ending(id)
	if !ok {
		return nil, shared.NewDataNotLoadedError(fmt.Sprintf("ending %s is missing", id))
	}
	return &Outcome{
		Ending:   record,
		Analysis: Analysis(record, s.Team),
		Rating:   Rate(s),
	}, nil
}

// Analysis returns the team-specific analysis of an ending, or its description
func Analysis(e *roster.Ending, team roster.TeamID) string {
	if team == "" {
		return e.Description()
	}
	return e.Analysis(team)
}
