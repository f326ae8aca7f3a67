package roster

import "fmt"

// Tier is the coarse rarity bucket of a player
type Tier string

const (
	TierStar   Tier = "star"
	TierRole   Tier = "role"
	TierRookie Tier = "rookie"
)

// IsValid checks if the tier is one of the known buckets
func (t Tier) IsValid() bool {
	switch t {
	case TierStar, TierRole, TierRookie:
		return true
	default:
		return false
	}
}

// ParseTier parses a string into a Tier
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid tier: %s", s)
	}
	return t, nil
}

// Stats is the per-game stat line shown on decision cards
type Stats struct {
	PPG float64
	RPG float64
	APG float64
}

// Player is immutable reference data
type Player struct {
	id          PlayerID
	name        string
	firstName   string
	lastName    string
	position    string
	nbaTeam     string
	number      int
	age         int
	salary      int64
	stats       Stats
	tier        Tier
	winImpact   int
	description string
}

// PlayerSpec carries the fields needed to build a Player
type PlayerSpec struct {
	ID          PlayerID
	Name        string
	FirstName   string
	LastName    string
	Position    string
	NBATeam     string
	Number      int
	Age         int
	Salary      int64
	Stats       Stats
	Tier        Tier
	WinImpact   int
	Description string
}

// NewPlayer validates a spec and returns the immutable player
func NewPlayer(spec PlayerSpec) (*Player, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("player id cannot be empty")
	}
	if spec.Salary < 0 {
		return nil, fmt.Errorf("player %s: salary cannot be negative", spec.ID)
	}
	if !spec.Tier.IsValid() {
		return nil, fmt.Errorf("player %s: invalid tier %q", spec.ID, spec.Tier)
	}

	return &Player{
		id:          spec.ID,
		name:        spec.Name,
		firstName:   spec.FirstName,
		lastName:    spec.LastName,
		position:    spec.Position,
		nbaTeam:     spec.NBATeam,
		number:      spec.Number,
		age:         spec.Age,
		salary:      spec.Salary,
		stats:       spec.Stats,
		tier:        spec.Tier,
		winImpact:   spec.WinImpact,
		description: spec.Description,
	}, nil
}

func (p *Player) ID() PlayerID { return p.id }
func (p *Player) Name() string { return p.name }
func (p *Player) FirstName() string { return p.firstName }
func (p *Player) LastName() string { return p.lastName }
func (p *Player) Position() string { return p.position }
func (p *Player) NBATeam() string { return p.nbaTeam }
func (p *Player) Number() int { return p.number }
func (p *Player) Age() int { return p.age }
func (p *Player) Salary() int64 { return p.salary }
func (p *Player) Stats() Stats { return p.stats }
func (p *Player) Tier() Tier { return p.tier }
func (p *Player) WinImpact() int { return p.winImpact }
func (p *Player) Description() string { return p.description }

// Initials returns the two-letter avatar text used on decision cards
func (p *Player) Initials() string {
	initials := ""
	for _, part := range []string{p.firstName, p.lastName} {
		for _, r := range part {
			initials += string(r)
			break
		}
	}
	return initials
}
