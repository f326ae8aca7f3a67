package helpers

import (
	"fmt"
	"testing"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
)

// Test storyline:
//
//	spurs:  38 wins, $98M, four rounds then spurs_final
//	lakers: 42 wins, $138M, lakers_r1 "go_all_in" jumps straight to lakers_final
const (
	TestSpurs  roster.TeamID = "spurs"
	TestLakers roster.TeamID = "lakers"
)

type testChoice struct {
	id     string
	kind   roster.ChoiceType
	wins   int
	salary int64
	player string
	next   string
}

type testScenario struct {
	id      string
	team    roster.TeamID
	round   int
	choices []testChoice
}

var testPlayers = []roster.PlayerSpec{
	{ID: "wembanyama", Name: "Victor Wembanyama", FirstName: "Victor", LastName: "Wembanyama", Position: "C", NBATeam: "SAS", Salary: 12_000_000, Tier: roster.TierStar, WinImpact: 12},
	{ID: "devin_vassell", Name: "Devin Vassell", FirstName: "Devin", LastName: "Vassell", Position: "SG", NBATeam: "SAS", Salary: 27_000_000, Tier: roster.TierRole, WinImpact: 4},
	{ID: "tre_jones", Name: "Tre Jones", FirstName: "Tre", LastName: "Jones", Position: "PG", NBATeam: "SAS", Salary: 9_000_000, Tier: roster.TierRole, WinImpact: 2},
	{ID: "lebron_james", Name: "LeBron James", FirstName: "LeBron", LastName: "James", Position: "SF", NBATeam: "LAL", Salary: 48_000_000, Tier: roster.TierStar, WinImpact: 12},
	{ID: "anthony_davis", Name: "Anthony Davis", FirstName: "Anthony", LastName: "Davis", Position: "PF", NBATeam: "LAL", Salary: 43_000_000, Tier: roster.TierStar, WinImpact: 11},
	{ID: "paul_george", Name: "Paul George", FirstName: "Paul", LastName: "George", Position: "SF", NBATeam: "FA", Salary: 35_000_000, Tier: roster.TierStar, WinImpact: 8},
	{ID: "stephon_castle", Name: "Stephon Castle", FirstName: "Stephon", LastName: "Castle", Position: "PG", NBATeam: "FA", Salary: 3_000_000, Tier: roster.TierRookie, WinImpact: 2},
	{ID: "bruce_brown", Name: "Bruce Brown", FirstName: "Bruce", LastName: "Brown", Position: "SG", NBATeam: "FA", Salary: 5_000_000, Tier: roster.TierRole, WinImpact: 3},
	{ID: "malik_monk", Name: "Malik Monk", FirstName: "Malik", LastName: "Monk", Position: "SG", NBATeam: "FA", Salary: 8_000_000, Tier: roster.TierRole, WinImpact: 4},
	{ID: "jimmy_butler", Name: "Jimmy Butler", FirstName: "Jimmy", LastName: "Butler", Position: "SF", NBATeam: "FA", Salary: 20_000_000, Tier: roster.TierStar, WinImpact: 6},
}

var testTeams = []roster.TeamSpec{
	{
		ID: TestSpurs, Name: "San Antonio Spurs", Abbr: "SAS", City: "San Antonio",
		StartingWins: 38, StartingPayroll: 98_000_000, Difficulty: "Easy",
		InitialRoster: []roster.PlayerID{"wembanyama", "devin_vassell", "tre_jones"},
	},
	{
		ID: TestLakers, Name: "Los Angeles Lakers", Abbr: "LAL", City: "Los Angeles",
		StartingWins: 42, StartingPayroll: 138_000_000, Difficulty: "Hard",
		InitialRoster: []roster.PlayerID{"lebron_james", "anthony_davis"},
	},
}

var testScenarios = []testScenario{
	{id: "spurs_r1", team: TestSpurs, round: 1, choices: []testChoice{
		{id: "draft_rookie", kind: roster.ChoiceTypeRookie, wins: 2, salary: 3_000_000, player: "stephon_castle", next: "spurs_r2"},
		{id: "sign_star", kind: roster.ChoiceTypeStar, wins: 8, salary: 35_000_000, player: "paul_george", next: "spurs_r2"},
	}},
	{id: "spurs_r2", team: TestSpurs, round: 2, choices: []testChoice{
		{id: "add_depth", kind: roster.ChoiceTypeDepth, wins: 3, salary: 5_000_000, player: "bruce_brown", next: "spurs_r3"},
		{id: "extend_jones", kind: roster.ChoiceTypeDepth, wins: 1, salary: 4_000_000, player: "tre_jones", next: "spurs_r3"},
		{id: "stand_pat", kind: roster.ChoiceTypeStrategy, wins: 1, next: "spurs_r3"},
	}},
	{id: "spurs_r3", team: TestSpurs, round: 3, choices: []testChoice{
		{id: "trade_deadline", kind: roster.ChoiceTypeDepth, wins: 4, salary: 8_000_000, player: "malik_monk", next: "spurs_r4"},
		{id: "develop", kind: roster.ChoiceTypeStrategy, wins: 2, next: "spurs_r4"},
	}},
	{id: "spurs_r4", team: TestSpurs, round: 4, choices: []testChoice{
		{id: "final_push", kind: roster.ChoiceTypeStrategy, wins: 3, salary: 2_000_000, next: "spurs_final"},
		{id: "hold", kind: roster.ChoiceTypeStrategy, wins: 1, next: "spurs_final"},
	}},
	{id: "spurs_final", team: TestSpurs},
	{id: "lakers_r1", team: TestLakers, round: 1, choices: []testChoice{
		{id: "go_all_in", kind: roster.ChoiceTypeStar, wins: 6, salary: 20_000_000, player: "jimmy_butler", next: "lakers_final"},
		{id: "stay_course", kind: roster.ChoiceTypeStrategy, wins: 1, next: "lakers_r2"},
	}},
	{id: "lakers_r2", team: TestLakers, round: 2, choices: []testChoice{
		{id: "cheap_vet", kind: roster.ChoiceTypeDepth, wins: 2, salary: 2_000_000, next: "lakers_final"},
	}},
	{id: "lakers_final", team: TestLakers},
}

// BuildTestCatalog assembles the small two-team storyline used across tests
func BuildTestCatalog() (*roster.Catalog, error) {
	var players []*roster.Player
	for _, spec := range testPlayers {
		p, err := roster.NewPlayer(spec)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	var teams []*roster.Team
	for _, spec := range testTeams {
		t, err := roster.NewTeam(spec)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	var scenarios []*roster.Scenario
	for _, ts := range testScenarios {
		var choices []*roster.Choice
		for _, tc := range ts.choices {
			var opts []roster.ChoiceOption
			if tc.player != "" {
				opts = append(opts, roster.WithPlayer(roster.PlayerID(tc.player)))
			}
			c, err := roster.NewChoice(roster.ChoiceSpec{
				ID:          roster.ChoiceID(tc.id),
				Type:        tc.kind,
				Title:       tc.id,
				WinDelta:    tc.wins,
				SalaryDelta: tc.salary,
				Risk:        roster.RiskMedium,
				Consequence: fmt.Sprintf("You chose %s.", tc.id),
				Next:        roster.ScenarioID(tc.next),
			}, opts...)
			if err != nil {
				return nil, err
			}
			choices = append(choices, c)
		}
		s, err := roster.NewScenario(roster.ScenarioSpec{
			ID:       roster.ScenarioID(ts.id),
			Team:     ts.team,
			Round:    ts.round,
			Title:    ts.id,
			Terminal: len(choices) == 0,
			Choices:  choices,
		})
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	var endings []*roster.Ending
	for _, id := range roster.AllEndingIDs() {
		e, err := roster.NewEnding(roster.EndingSpec{
			ID:          id,
			Title:       id.String(),
			Type:        roster.EndingTypeNeutral,
			Description: fmt.Sprintf("%s description", id),
			Analysis:    map[roster.TeamID]string{TestSpurs: fmt.Sprintf("%s for the Spurs", id)},
		})
		if err != nil {
			return nil, err
		}
		endings = append(endings, e)
	}

	return roster.NewCatalog(teams, players, scenarios, endings)
}

// NewTestCatalog is BuildTestCatalog for unit tests
func NewTestCatalog(t *testing.T) *roster.Catalog {
	t.Helper()
	catalog, err := BuildTestCatalog()
	if err != nil {
		t.Fatalf("failed to build test catalog: %v", err)
	}
	return catalog
}
