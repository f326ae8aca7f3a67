package roster

import "fmt"

// ChoiceType is the closed set of decision flavours
type ChoiceType string

const (
	ChoiceTypeStar     ChoiceType = "star"
	ChoiceTypeDepth    ChoiceType = "depth"
	ChoiceTypeRookie   ChoiceType = "rookie"
	ChoiceTypeStrategy ChoiceType = "strategy"
)

// IsValid checks if the choice type is valid
func (t ChoiceType) IsValid() bool {
	switch t {
	case ChoiceTypeStar, ChoiceTypeDepth, ChoiceTypeRookie, ChoiceTypeStrategy:
		return true
	default:
		return false
	}
}

// Label returns the card label shown for the type
func (t ChoiceType) Label() string {
	switch t {
	case ChoiceTypeStar:
		return "Star Move"
	case ChoiceTypeDepth:
		return "Add Depth"
	case ChoiceTypeRookie:
		return "Develop Youth"
	case ChoiceTypeStrategy:
		return "Strategy"
	default:
		return "Decision"
	}
}

// Risk is the risk label shown on a choice
type Risk string

const (
	RiskLow    Risk = "low"
	RiskMedium Risk = "medium"
	RiskHigh   Risk = "high"
)

// IsValid checks if the risk label is valid
func (r Risk) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// Choice is one option in a scenario. The associated player is optional:
// a choice either signs a player (WithPlayer) or it does not.
type Choice struct {
	id          ChoiceID
	choiceType  ChoiceType
	title       string
	description string
	winDelta    int
	salaryDelta int64
	player      PlayerID
	hasPlayer   bool
	risk        Risk
	consequence string
	next        ScenarioID
}

// ChoiceSpec carries the base fields shared by every choice
type ChoiceSpec struct {
	ID          ChoiceID
	Type        ChoiceType
	Title       string
	Description string
	WinDelta    int
	SalaryDelta int64
	Risk        Risk
	Consequence string
	Next        ScenarioID
}

// ChoiceOption refines a choice under construction
type ChoiceOption func(*Choice)

// WithPlayer attaches the player the choice adds to the roster
func WithPlayer(id PlayerID) ChoiceOption {
	return func(c *Choice) {
		c.player = id
		c.hasPlayer = true
	}
}

// NewChoice validates a spec and returns the immutable choice
func NewChoice(spec ChoiceSpec, opts ...ChoiceOption) (*Choice, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("choice id cannot be empty")
	}
	if !spec.Type.IsValid() {
		return nil, fmt.Errorf("choice %s: invalid type %q", spec.ID, spec.Type)
	}
	if !spec.Risk.IsValid() {
		return nil, fmt.Errorf("choice %s: invalid risk %q", spec.ID, spec.Risk)
	}
	if spec.SalaryDelta < 0 {
		return nil, fmt.Errorf("choice %s: salary delta cannot be negative", spec.ID)
	}
	if spec.Next == "" {
		return nil, fmt.Errorf("choice %s: next scenario cannot be empty", spec.ID)
	}

	c := &Choice{
		id:          spec.ID,
		choiceType:  spec.Type,
		title:       spec.Title,
		description: spec.Description,
		winDelta:    spec.WinDelta,
		salaryDelta: spec.SalaryDelta,
		risk:        spec.Risk,
		consequence: spec.Consequence,
		next:        spec.Next,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasPlayer && c.player == "" {
		return nil, fmt.Errorf("choice %s: player id cannot be empty", spec.ID)
	}

	return c, nil
}

func (c *Choice) ID() ChoiceID { return c.id }
func (c *Choice) Type() ChoiceType { return c.choiceType }
func (c *Choice) Title() string { return c.title }
func (c *Choice) Description() string { return c.description }
func (c *Choice) WinDelta() int { return c.winDelta }
func (c *Choice) SalaryDelta() int64 { return c.salaryDelta }
func (c *Choice) Risk() Risk { return c.risk }
func (c *Choice) Consequence() string { return c.consequence }
func (c *Choice) Next() ScenarioID { return c.next }

// Player returns the associated player, if the choice has one
func (c *Choice) Player() (PlayerID, bool) {
	return c.player, c.hasPlayer
}

// Scenario is one decision point in a team's storyline. Terminal scenarios
// mark the end of the story: they carry no choices and no round.
type Scenario struct {
	id          ScenarioID
	team        TeamID
	round       int
	title       string
	description string
	terminal    bool
	choices     []*Choice
}

// ScenarioSpec carries the fields needed to build a Scenario
type ScenarioSpec struct {
	ID          ScenarioID
	Team        TeamID
	Round       int
	Title       string
	Description string
	Terminal    bool
	Choices     []*Choice
}

// NewScenario validates a spec and returns the immutable scenario
func NewScenario(spec ScenarioSpec) (*Scenario, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("scenario id cannot be empty")
	}
	if spec.Team == "" {
		return nil, fmt.Errorf("scenario %s: team cannot be empty", spec.ID)
	}
	if spec.Terminal {
		if len(spec.Choices) > 0 {
			return nil, fmt.Errorf("scenario %s: terminal scenario cannot have choices", spec.ID)
		}
	} else {
		if spec.Round < 1 {
			return nil, fmt.Errorf("scenario %s: round must be positive", spec.ID)
		}
		if len(spec.Choices) == 0 {
			return nil, fmt.Errorf("scenario %s: must have at least one choice", spec.ID)
		}
	}

	seen := make(map[ChoiceID]bool, len(spec.Choices))
	choices := make([]*Choice, 0, len(spec.Choices))
	for _, c := range spec.Choices {
		if c == nil {
			return nil, fmt.Errorf("scenario %s: nil choice", spec.ID)
		}
		if seen[c.ID()] {
			return nil, fmt.Errorf("scenario %s: duplicate choice %s", spec.ID, c.ID())
		}
		seen[c.ID()] = true
		choices = append(choices, c)
	}

	round := spec.Round
	if spec.Terminal {
		round = 0
	}

	return &Scenario{
		id:          spec.ID,
		team:        spec.Team,
		round:       round,
		title:       spec.Title,
		description: spec.Description,
		terminal:    spec.Terminal,
		choices:     choices,
	}, nil
}

func (s *Scenario) ID() ScenarioID { return s.id }
func (s *Scenario) Team() TeamID { return s.team }
func (s *Scenario) Round() int { return s.round }
func (s *Scenario) Title() string { return s.title }
func (s *Scenario) Description() string { return s.description }
func (s *Scenario) IsTerminal() bool { return s.terminal }

// Choices returns the choices in presentation order
func (s *Scenario) Choices() []*Choice {
	choices := make([]*Choice, len(s.choices))
	copy(choices, s.choices)
	return choices
}

// Choice looks up a choice by id
func (s *Scenario) Choice(id ChoiceID) (*Choice, bool) {
	for _, c := range s.choices {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}
