package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

type taxContext struct {
	calc   *tax.Calculator
	result int64
}

func (tc *taxContext) reset() {
	tc.calc = nil
	tc.result = 0
}

func (tc *taxContext) theDefaultLuxuryTaxTable() error {
	tc.calc = tax.NewDefaultCalculator()
	return nil
}

func (tc *taxContext) thePayrollIs(payroll int64) error {
	tc.result = tc.calc.Compute(payroll)
	return nil
}

func (tc *taxContext) theLuxuryTaxShouldBe(expected int64) error {
	if tc.result != expected {
		return fmt.Errorf("expected luxury tax %d, got %d", expected, tc.result)
	}
	return nil
}

func (tc *taxContext) theLuxuryTaxShouldNeverDecrease(from, to, step int64) error {
	prev := tc.calc.Compute(from)
	for payroll := from; payroll <= to; payroll += step {
		got := tc.calc.Compute(payroll)
		if got < prev {
			return fmt.Errorf("tax dropped from %d to %d at payroll %d", prev, got, payroll)
		}
		prev = got
	}
	return nil
}

// InitializeTaxScenario registers luxury tax steps
func InitializeTaxScenario(ctx *godog.ScenarioContext) {
	tc := &taxContext{}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return c, nil
	})

	ctx.Step(`^the default luxury tax table$`, tc.theDefaultLuxuryTaxTable)
	ctx.Step(`^the payroll is (\d+)$`, tc.thePayrollIs)
	ctx.Step(`^the luxury tax should be (\d+)$`, tc.theLuxuryTaxShouldBe)
	ctx.Step(`^the luxury tax should never decrease between (\d+) and (\d+) in steps of (\d+)$`, tc.theLuxuryTaxShouldNeverDecrease)
}
