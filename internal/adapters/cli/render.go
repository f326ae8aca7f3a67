package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/game"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/roster"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	tableBorder  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	victoryColor = lipgloss.Color("2")
	failureColor = lipgloss.Color("1")
	neutralColor = lipgloss.Color("3")
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func renderTeams(w io.Writer, resp *gameQueries.ListTeamsResponse) {
	t := newTable("ID", "Team", "Wins", "Payroll", "Tax", "Cap Room", "Difficulty")
	for _, s := range resp.Teams {
		t.Row(
			s.Team.ID().String(),
			s.Team.Name(),
			strconv.Itoa(s.Team.StartingWins()),
			tax.FormatMoney(s.Team.StartingPayroll()),
			tax.FormatMoney(s.StartingTax),
			formatSigned(s.CapRemaining),
			s.Team.Difficulty(),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderRoster(w io.Writer, resp *gameQueries.GetTeamRosterResponse) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", resp.Team.Name(), resp.Team.Abbr())))
	if resp.Team.Situation() != "" {
		fmt.Fprintln(w, dimStyle.Render(resp.Team.Situation()))
	}
	renderPlayers(w, resp.Players)
	fmt.Fprintf(w, "Listed salaries: %s  Starting payroll: %s\n",
		tax.FormatMoney(resp.RosterSalary), tax.FormatMoney(resp.Team.StartingPayroll()))
}

func renderPlayers(w io.Writer, players []*roster.Player) {
	t := newTable("#", "Player", "Pos", "Tier", "Salary", "PPG/RPG/APG")
	for _, p := range players {
		s := p.Stats()
		t.Row(
			strconv.Itoa(p.Number()),
			p.Name(),
			p.Position(),
			string(p.Tier()),
			tax.FormatMoney(p.Salary()),
			fmt.Sprintf("%.1f/%.1f/%.1f", s.PPG, s.RPG, s.APG),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderScenario(w io.Writer, scenario *roster.Scenario, round, totalRounds int, players map[roster.PlayerID]*roster.Player) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Round %d of %d: %s", round, totalRounds, scenario.Title())))
	if scenario.Description() != "" {
		fmt.Fprintln(w, scenario.Description())
	}
	fmt.Fprintln(w)

	t := newTable("", "Choice", "Type", "Wins", "Salary", "Risk")
	for i, c := range scenario.Choices() {
		label := c.Title()
		if id, ok := c.Player(); ok {
			if p, found := players[id]; found {
				label = fmt.Sprintf("%s (%s)", label, p.Name())
			}
		}
		t.Row(
			strconv.Itoa(i+1),
			fmt.Sprintf("%s\n%s", label, c.ID()),
			c.Type().Label(),
			fmt.Sprintf("%+d", c.WinDelta()),
			"+" + tax.FormatMoney(c.SalaryDelta()),
			string(c.Risk()),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderSnapshot(w io.Writer, s game.Snapshot) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%s  round %s", s.Team, roundLabel(s))))

	wins := fmt.Sprintf("%d", s.Wins)
	if s.MadePlayoffs {
		wins = goodStyle.Render(wins + " (playoff pace)")
	} else {
		wins = warnStyle.Render(fmt.Sprintf("%s (%d more for the playoffs)", wins, s.WinsNeeded))
	}
	fmt.Fprintf(w, "  Wins:         %s\n", wins)
	fmt.Fprintf(w, "  Payroll:      %s\n", tax.FormatMoney(s.Payroll))

	luxury := tax.FormatMoney(s.LuxuryTax)
	if s.LuxuryTax > 0 {
		luxury = warnStyle.Render(luxury)
	}
	fmt.Fprintf(w, "  Luxury tax:   %s\n", luxury)

	spend := tax.FormatMoney(s.TotalSpend)
	if s.IsOverBudget {
		spend = badStyle.Render(spend + " (over budget)")
	}
	fmt.Fprintf(w, "  Total spend:  %s\n", spend)
	fmt.Fprintf(w, "  Cap room:     %s\n", formatSigned(s.CapRemaining))
	fmt.Fprintf(w, "  Budget room:  %s\n", formatSigned(s.BudgetRemaining))
}

func roundLabel(s game.Snapshot) string {
	if s.GameOver {
		return "final"
	}
	return fmt.Sprintf("%d/%d", s.Round, s.TotalRounds)
}

func renderChoiceResult(w io.Writer, resp *gameCommands.ApplyChoiceResponse) {
	d := resp.Decision
	fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf("Round %d: %s", d.Round, d.Title)))
	if resp.Consequence != "" {
		fmt.Fprintln(w, resp.Consequence)
	}
	fmt.Fprintln(w)
	renderSnapshot(w, resp.Snapshot)
}

func renderDecisions(w io.Writer, decisions []game.Decision) {
	if len(decisions) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No decisions yet."))
		return
	}
	t := newTable("Round", "Decision", "Type", "Wins", "Salary")
	for _, d := range decisions {
		t.Row(
			strconv.Itoa(d.Round),
			d.Title,
			d.ChoiceType.Label(),
			fmt.Sprintf("%+d", d.WinDelta),
			"+" + tax.FormatMoney(d.SalaryDelta),
		)
	}
	fmt.Fprintln(w, t.Render())
}

func renderEnding(w io.Writer, resp *gameQueries.GetEndingResponse) {
	e := resp.Outcome.Ending

	color := neutralColor
	switch {
	case e.IsVictory():
		color = victoryColor
	case e.Type() == roster.EndingTypeFailure:
		color = failureColor
	}

	var b strings.Builder
	heading := strings.TrimSpace(fmt.Sprintf("%s %s", e.Icon(), e.Title()))
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(heading))
	if e.Subtitle() != "" {
		b.WriteString("\n" + dimStyle.Render(e.Subtitle()))
	}
	b.WriteString("\n\n" + resp.Outcome.Analysis)
	b.WriteString(fmt.Sprintf("\n\nGM rating: %s (%d)", resp.Outcome.Rating.Grade, resp.Outcome.Rating.Score))
	if resp.ClaimCode != "" && resp.Final {
		b.WriteString("\nClaim code: " + resp.ClaimCode)
	}

	fmt.Fprintln(w, cardStyle.BorderForeground(color).Render(b.String()))
	if !resp.Final {
		fmt.Fprintln(w, warnStyle.Render("Season still in progress: this is where you are headed."))
	}
	fmt.Fprintln(w)
	renderSnapshot(w, resp.Snapshot)
	fmt.Fprintln(w)
	renderDecisions(w, resp.Snapshot.Decisions)
}

// formatSigned renders room under a limit, negative amounts as "-$5.0M"
func formatSigned(amount int64) string {
	if amount < 0 {
		return "-" + tax.FormatMoney(-amount)
	}
	return tax.FormatMoney(amount)
}
