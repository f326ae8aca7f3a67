package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	gameCommands "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/commands"
	gameQueries "github.com/braydenokley13-ux/T101-M1-L2/internal/application/game/queries"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

// NewTutorialCommand creates the tutorial command
func NewTutorialCommand() *cobra.Command {
	var complete bool

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Learn how the salary cap and luxury tax work",
		Long: `Explain the salary cap, the luxury tax brackets and the budget limit.

Use --complete to mark the tutorial as done so it is not offered again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				out := cmd.OutOrStdout()

				if complete {
					response, err := app.Send(ctx, &gameCommands.CompleteTutorialCommand{})
					if err != nil {
						return err
					}
					if !response.(*gameCommands.CompleteTutorialResponse).Persisted {
						fmt.Fprintln(out, warnStyle.Render("Tutorial marked complete for this session, but it could not be saved."))
						return nil
					}
					fmt.Fprintln(out, "Tutorial marked complete.")
					return nil
				}

				response, err := app.Send(ctx, &gameQueries.GetTutorialStatusQuery{})
				if err != nil {
					return err
				}

				renderTutorial(out, app)
				if response.(*gameQueries.GetTutorialStatusResponse).Complete {
					fmt.Fprintln(out, dimStyle.Render("Tutorial already completed."))
				} else {
					fmt.Fprintln(out, dimStyle.Render("Run 'taxgame tutorial --complete' when you're ready."))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&complete, "complete", false, "Mark the tutorial as completed")

	return cmd
}

func renderTutorial(w io.Writer, app *App) {
	calc := app.Engine().Calculator()
	rules := app.Engine().Rules()

	fmt.Fprintln(w, titleStyle.Render("How the luxury tax works"))
	fmt.Fprintf(w, "The salary cap is %s. Every dollar of payroll above it is taxed,\n", tax.FormatMoney(calc.SalaryCap()))
	fmt.Fprintln(w, "and the rate climbs the further over you go:")
	fmt.Fprintln(w)

	t := newTable("Payroll", "Luxury tax")
	for _, over := range []int64{0, 5_000_000, 10_000_000, 15_000_000} {
		payroll := calc.SalaryCap() + over
		t.Row(tax.FormatMoney(payroll), tax.FormatMoney(calc.Compute(payroll)))
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintf(w, "Payroll plus tax is your total spend. Keep it under %s or the owner\n", tax.FormatMoney(rules.BudgetLimit))
	fmt.Fprintf(w, "calls it a blown budget. You need %d wins to make the playoffs.\n", rules.PlayoffWins)
	fmt.Fprintln(w)
}
