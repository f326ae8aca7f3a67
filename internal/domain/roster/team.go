package roster

import "fmt"

// Colors holds a team's palette
type Colors struct {
	Primary   string
	Secondary string
	Accent    string
}

// Team is a selectable franchise. Immutable once loaded.
type Team struct {
	id              TeamID
	name            string
	abbr            string
	city            string
	colors          Colors
	startingWins    int
	startingPayroll int64
	difficulty      string
	description     string
	situation       string
	intro           string
	initialRoster   []PlayerID
}

// TeamSpec carries the fields needed to build a Team
type TeamSpec struct {
	ID              TeamID
	Name            string
	Abbr            string
	City            string
	Colors          Colors
	StartingWins    int
	StartingPayroll int64
	Difficulty      string
	Description     string
	Situation       string
	Intro           string
	InitialRoster   []PlayerID
}

// NewTeam validates a spec and returns the immutable team
func NewTeam(spec TeamSpec) (*Team, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("team id cannot be empty")
	}
	if spec.StartingPayroll < 0 {
		return nil, fmt.Errorf("team %s: starting payroll cannot be negative", spec.ID)
	}
	if spec.StartingWins < 0 {
		return nil, fmt.Errorf("team %s: starting wins cannot be negative", spec.ID)
	}

	roster := make([]PlayerID, len(spec.InitialRoster))
	copy(roster, spec.InitialRoster)

	return &Team{
		id:              spec.ID,
		name:            spec.Name,
		abbr:            spec.Abbr,
		city:            spec.City,
		colors:          spec.Colors,
		startingWins:    spec.StartingWins,
		startingPayroll: spec.StartingPayroll,
		difficulty:      spec.Difficulty,
		description:     spec.Description,
		situation:       spec.Situation,
		intro:           spec.Intro,
		initialRoster:   roster,
	}, nil
}

func (t *Team) ID() TeamID { return t.id }
func (t *Team) Name() string { return t.name }
func (t *Team) Abbr() string { return t.abbr }
func (t *Team) City() string { return t.city }
func (t *Team) Colors() Colors { return t.colors }
func (t *Team) StartingWins() int { return t.startingWins }
func (t *Team) StartingPayroll() int64 { return t.startingPayroll }
func (t *Team) Difficulty() string { return t.difficulty }
func (t *Team) Description() string { return t.description }
func (t *Team) Situation() string { return t.situation }
func (t *Team) Intro() string { return t.intro }

// InitialRoster returns a copy of the starting roster, order preserved
func (t *Team) InitialRoster() []PlayerID {
	roster := make([]PlayerID, len(t.initialRoster))
	copy(roster, t.initialRoster)
	return roster
}

// FirstScenarioID is the id of the round-1 scenario for this team
func (t *Team) FirstScenarioID() ScenarioID {
	return ScenarioID(fmt.Sprintf("%s_r1", t.id))
}
