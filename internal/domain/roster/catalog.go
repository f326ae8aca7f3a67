package roster

import (
	"errors"
	"fmt"
	"sort"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// Catalog is the read-only content store: teams, players, scenarios and endings.
// It is built once by a loader and never mutated afterwards.
//
// Invariants checked by NewCatalog:
// - every team's initial roster references known players
// - every team has a round-1 scenario
// - every choice's next pointer resolves to a scenario of the same team
// - every choice's player (when present) is a known player
// - every ending the resolver can produce is present
type Catalog struct {
	teamOrder []TeamID
	teams     map[TeamID]*Team
	players   map[PlayerID]*Player
	scenarios map[ScenarioID]*Scenario
	endings   map[EndingID]*Ending
}

// NewCatalog indexes the records and validates cross references
func NewCatalog(teams []*Team, players []*Player, scenarios []*Scenario, endings []*Ending) (*Catalog, error) {
	c := &Catalog{
		teams:     make(map[TeamID]*Team, len(teams)),
		players:   make(map[PlayerID]*Player, len(players)),
		scenarios: make(map[ScenarioID]*Scenario, len(scenarios)),
		endings:   make(map[EndingID]*Ending, len(endings)),
	}

	for _, p := range players {
		if _, exists := c.players[p.ID()]; exists {
			return nil, fmt.Errorf("duplicate player: %s", p.ID())
		}
		c.players[p.ID()] = p
	}
	for _, t := range teams {
		if _, exists := c.teams[t.ID()]; exists {
			return nil, fmt.Errorf("duplicate team: %s", t.ID())
		}
		c.teams[t.ID()] = t
		c.teamOrder = append(c.teamOrder, t.ID())
	}
	for _, s := range scenarios {
		if _, exists := c.scenarios[s.ID()]; exists {
			return nil, fmt.Errorf("duplicate scenario: %s", s.ID())
		}
		c.scenarios[s.ID()] = s
	}
	for _, e := range endings {
		if _, exists := c.endings[e.ID()]; exists {
			return nil, fmt.Errorf("duplicate ending: %s", e.ID())
		}
		c.endings[e.ID()] = e
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	var errs []error

	for _, teamID := range c.teamOrder {
		team := c.teams[teamID]
		field := fmt.Sprintf("team %s", teamID)
		for _, pid := range team.initialRoster {
			if _, ok := c.players[pid]; !ok {
				errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("unknown roster player %s", pid)))
			}
		}
		first, ok := c.scenarios[team.FirstScenarioID()]
		if !ok || first.IsTerminal() || first.Round() != 1 {
			errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("missing round-1 scenario %s", team.FirstScenarioID())))
		}
	}

	for _, id := range c.sortedScenarioIDs() {
		s := c.scenarios[id]
		if _, ok := c.teams[s.Team()]; !ok {
			errs = append(errs, shared.NewValidationError(fmt.Sprintf("scenario %s", id), fmt.Sprintf("unknown team %s", s.Team())))
		}
		for _, choice := range s.choices {
			field := fmt.Sprintf("scenario %s choice %s", id, choice.ID())
			next, ok := c.scenarios[choice.Next()]
			switch {
			case !ok:
				errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("next scenario %s does not exist", choice.Next())))
			case next.Team() != s.Team():
				errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("next scenario %s belongs to team %s", next.ID(), next.Team())))
			case !next.IsTerminal() && next.Round() != s.Round()+1:
				// the engine only finds a scenario whose round matches the game round
				errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("next scenario %s is round %d, want %d", next.ID(), next.Round(), s.Round()+1)))
			}
			if pid, has := choice.Player(); has {
				if _, ok := c.players[pid]; !ok {
					errs = append(errs, shared.NewValidationError(field, fmt.Sprintf("unknown player %s", pid)))
				}
			}
		}
	}

	for _, id := range AllEndingIDs() {
		if _, ok := c.endings[id]; !ok {
			errs = append(errs, shared.NewValidationError("endings", fmt.Sprintf("missing ending: %s", id)))
		}
	}

	return errors.Join(errs...)
}

func (c *Catalog) sortedScenarioIDs() []ScenarioID {
	ids := make([]ScenarioID, 0, len(c.scenarios))
	for id := range c.scenarios {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// IsLoaded reports whether the catalog holds any content
func (c *Catalog) IsLoaded() bool {
	return c != nil && len(c.teams) > 0 && len(c.scenarios) > 0
}

// Team looks up a team by id
func (c *Catalog) Team(id TeamID) (*Team, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.teams[id]
	return t, ok
}

// Teams returns all teams in load order
func (c *Catalog) Teams() []*Team {
	if c == nil {
		return nil
	}
	teams := make([]*Team, 0, len(c.teamOrder))
	for _, id := range c.teamOrder {
		teams = append(teams, c.teams[id])
	}
	return teams
}

// Player looks up a player by id
func (c *Catalog) Player(id PlayerID) (*Player, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.players[id]
	return p, ok
}

// TeamRoster resolves a team's starting roster into player records
func (c *Catalog) TeamRoster(id TeamID) []*Player {
	team, ok := c.Team(id)
	if !ok {
		return nil
	}
	return c.ResolvePlayers(team.initialRoster)
}

// ResolvePlayers maps ids to records, skipping unknown ids
func (c *Catalog) ResolvePlayers(ids []PlayerID) []*Player {
	players := make([]*Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.Player(id); ok {
			players = append(players, p)
		}
	}
	return players
}

// PlayersByTier returns all players in a tier, sorted by id
func (c *Catalog) PlayersByTier(tier Tier) []*Player {
	return c.filterPlayers(func(p *Player) bool { return p.Tier() == tier })
}

// PlayersByNBATeam returns all players whose NBA team matches the abbreviation
func (c *Catalog) PlayersByNBATeam(abbr string) []*Player {
	return c.filterPlayers(func(p *Player) bool { return p.NBATeam() == abbr })
}

func (c *Catalog) filterPlayers(keep func(*Player) bool) []*Player {
	if c == nil {
		return nil
	}
	var players []*Player
	for _, p := range c.players {
		if keep(p) {
			players = append(players, p)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].ID() < players[j].ID() })
	return players
}

// Scenario looks up a scenario by id
func (c *Catalog) Scenario(id ScenarioID) (*Scenario, bool) {
	if c == nil {
		return nil, false
	}
	s, ok := c.scenarios[id]
	return s, ok
}

// Ending looks up an ending by id
func (c *Catalog) Ending(id EndingID) (*Ending, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.endings[id]
	return e, ok
}
