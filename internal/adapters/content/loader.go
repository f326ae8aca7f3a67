package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

const (
	TeamsFile     = "teams.yaml"
	PlayersFile   = "players.yaml"
	ScenariosFile = "scenarios.yaml"
	EndingsFile   = "endings.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// Loader decodes the content tables from a file system and assembles the catalog
type Loader struct {
	files    fs.FS
	validate *validator.Validate
}

// NewLoader creates a loader reading the four tables from the root of files
func NewLoader(files fs.FS) *Loader {
	return &Loader{
		files:    files,
		validate: validator.New(),
	}
}

// LoadEmbedded builds the catalog from the tables compiled into the binary
func LoadEmbedded() (*roster.Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded content: %w", err)
	}
	return NewLoader(sub).Load()
}

// LoadDir builds the catalog from a directory holding the four tables
func LoadDir(dir string) (*roster.Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: content dir: %w", shared.ErrDataNotLoaded, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: content dir %s is not a directory", shared.ErrDataNotLoaded, dir)
	}
	return NewLoader(os.DirFS(dir)).Load()
}

// Load decodes, validates and cross-checks every table. Any failure is reported as
// DataNotLoaded so callers never start a game over partial content.
func (l *Loader) Load() (*roster.Catalog, error) {
	var (
		teamsDoc     teamsFile
		playersDoc   playersFile
		scenariosDoc scenariosFile
		endingsDoc   endingsFile
	)

	docs := []struct {
		name string
		out  interface{}
	}{
		{TeamsFile, &teamsDoc},
		{PlayersFile, &playersDoc},
		{ScenariosFile, &scenariosDoc},
		{EndingsFile, &endingsDoc},
	}
	for _, d := range docs {
		if err := l.decode(d.name, d.out); err != nil {
			return nil, fmt.Errorf("%w: %w", shared.ErrDataNotLoaded, err)
		}
	}

	catalog, err := assemble(teamsDoc, playersDoc, scenariosDoc, endingsDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrDataNotLoaded, err)
	}
	return catalog, nil
}

func (l *Loader) decode(name string, out interface{}) error {
	raw, err := fs.ReadFile(l.files, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := l.validate.Struct(out); err != nil {
		return fmt.Errorf("%s: %w", name, formatValidationError(err))
	}
	return nil
}

// formatValidationError converts validator errors into one ValidationError per field
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	fieldErrs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrs = append(fieldErrs, shared.NewValidationError(
			e.Namespace(),
			fmt.Sprintf("failed validation: %s (value: '%v')", e.Tag(), e.Value()),
		))
	}
	return fmt.Errorf("validation failed: %w", errors.Join(fieldErrs...))
}

func assemble(teamsDoc teamsFile, playersDoc playersFile, scenariosDoc scenariosFile, endingsDoc endingsFile) (*roster.Catalog, error) {
	players := make([]*roster.Player, 0, len(playersDoc.Players))
	for _, r := range playersDoc.Players {
		p, err := roster.NewPlayer(r.toSpec())
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	teams := make([]*roster.Team, 0, len(teamsDoc.Teams))
	for _, r := range teamsDoc.Teams {
		spec := r.toSpec()
		spec.Intro = scenariosDoc.Teams[r.ID].Intro
		t, err := roster.NewTeam(spec)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	var scenarios []*roster.Scenario
	for _, teamID := range sortedKeys(scenariosDoc.Teams) {
		for _, r := range scenariosDoc.Teams[teamID].Rounds {
			s, err := r.toScenario(roster.TeamID(teamID))
			if err != nil {
				return nil, err
			}
			scenarios = append(scenarios, s)
		}
	}

	endings := make([]*roster.Ending, 0, len(endingsDoc.Endings))
	for _, id := range sortedKeys(endingsDoc.Endings) {
		e, err := endingsDoc.Endings[id].toEnding(roster.EndingID(id))
		if err != nil {
			return nil, err
		}
		endings = append(endings, e)
	}

	return roster.NewCatalog(teams, players, scenarios, endings)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r teamRecord) toSpec() roster.TeamSpec {
	ids := make([]roster.PlayerID, len(r.Roster))
	for i, id := range r.Roster {
		ids[i] = roster.PlayerID(id)
	}
	return roster.TeamSpec{
		ID:              roster.TeamID(r.ID),
		Name:            r.Name,
		Abbr:            r.Abbr,
		City:            r.City,
		Colors:          roster.Colors{Primary: r.Colors.Primary, Secondary: r.Colors.Secondary, Accent: r.Colors.Accent},
		StartingWins:    r.StartingWins,
		StartingPayroll: r.StartingPayroll,
		Difficulty:      r.Difficulty,
		Description:     strings.TrimSpace(r.Description),
		Situation:       strings.TrimSpace(r.Situation),
		InitialRoster:   ids,
	}
}

func (r playerRecord) toSpec() roster.PlayerSpec {
	return roster.PlayerSpec{
		ID:          roster.PlayerID(r.ID),
		Name:        r.Name,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Position:    r.Position,
		NBATeam:     r.NBATeam,
		Number:      r.Number,
		Age:         r.Age,
		Salary:      r.Salary,
		Stats:       roster.Stats{PPG: r.Stats.PPG, RPG: r.Stats.RPG, APG: r.Stats.APG},
		Tier:        roster.Tier(r.Tier),
		WinImpact:   r.WinImpact,
		Description: r.Description,
	}
}

func (r scenarioRecord) toScenario(team roster.TeamID) (*roster.Scenario, error) {
	choices := make([]*roster.Choice, 0, len(r.Choices))
	for _, cr := range r.Choices {
		var opts []roster.ChoiceOption
		if cr.Player != "" {
			opts = append(opts, roster.WithPlayer(roster.PlayerID(cr.Player)))
		}
		c, err := roster.NewChoice(roster.ChoiceSpec{
			ID:          roster.ChoiceID(cr.ID),
			Type:        roster.ChoiceType(cr.Type),
			Title:       cr.Title,
			Description: cr.Description,
			WinDelta:    cr.WinChange,
			SalaryDelta: cr.SalaryChange,
			Risk:        roster.Risk(cr.Risk),
			Consequence: strings.TrimSpace(cr.Consequence),
			Next:        roster.ScenarioID(cr.Next),
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", r.ID, err)
		}
		choices = append(choices, c)
	}

	return roster.NewScenario(roster.ScenarioSpec{
		ID:          roster.ScenarioID(r.ID),
		Team:        team,
		Round:       r.Round,
		Title:       r.Title,
		Description: strings.TrimSpace(r.Description),
		Terminal:    r.Terminal,
		Choices:     choices,
	})
}

func (r endingRecord) toEnding(id roster.EndingID) (*roster.Ending, error) {
	analysis := make(map[roster.TeamID]string, len(r.Analysis))
	for team, text := range r.Analysis {
		analysis[roster.TeamID(team)] = strings.TrimSpace(text)
	}
	return roster.NewEnding(roster.EndingSpec{
		ID:          id,
		Icon:        r.Icon,
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Type:        roster.EndingType(r.Type),
		Description: strings.TrimSpace(r.Description),
		Analysis:    analysis,
	})
}
