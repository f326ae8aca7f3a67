package roster

import "fmt"

// EndingType is the tone of an ending
type EndingType string

const (
	EndingTypeVictory EndingType = "victory"
	EndingTypeFailure EndingType = "failure"
	EndingTypeNeutral EndingType = "neutral"
)

// IsValid checks if the ending type is valid
func (t EndingType) IsValid() bool {
	switch t {
	case EndingTypeVictory, EndingTypeFailure, EndingTypeNeutral:
		return true
	default:
		return false
	}
}

// Ending is a static narrative result, selected but never mutated
type Ending struct {
	id          EndingID
	icon        string
	title       string
	subtitle    string
	endingType  EndingType
	description string
	analysis    map[TeamID]string
}

// EndingSpec carries the fields needed to build an Ending
type EndingSpec struct {
	ID          EndingID
	Icon        string
	Title       string
	Subtitle    string
	Type        EndingType
	Description string
	Analysis    map[TeamID]string
}

// NewEnding validates a spec and returns the immutable ending
func NewEnding(spec EndingSpec) (*Ending, error) {
	if spec.ID == "" {
		return nil, fmt.Errorf("ending id cannot be empty")
	}
	if !spec.Type.IsValid() {
		return nil, fmt.Errorf("ending %s: invalid type %q", spec.ID, spec.Type)
	}

	analysis := make(map[TeamID]string, len(spec.Analysis))
	for team, text := range spec.Analysis {
		analysis[team] = text
	}

	return &Ending{
		id:          spec.ID,
		icon:        spec.Icon,
		title:       spec.Title,
		subtitle:    spec.Subtitle,
		endingType:  spec.Type,
		description: spec.Description,
		analysis:    analysis,
	}, nil
}

func (e *Ending) ID() EndingID { return e.id }
func (e *Ending) Icon() string { return e.icon }
func (e *Ending) Title() string { return e.title }
func (e *Ending) Subtitle() string { return e.subtitle }
func (e *Ending) Type() EndingType { return e.endingType }
func (e *Ending) Description() string { return e.description }

// IsVictory reports whether the ending celebrates the player
func (e *Ending) IsVictory() bool {
	return e.endingType == EndingTypeVictory
}

// Analysis returns the team-specific write-up, falling back to the description
func (e *Ending) Analysis(team TeamID) string {
	if text, ok := e.analysis[team]; ok && text != "" {
		return text
	}
	return e.description
}
