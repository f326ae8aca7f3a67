package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultSalaryCap is the payroll threshold below which no tax applies
const DefaultSalaryCap int64 = 136_000_000

// Calculator computes the progressive luxury tax owed on a payroll.
// It holds no state beyond its table and is safe to share.
type Calculator struct {
	salaryCap int64
	brackets  []Bracket
}

// NewCalculator validates the bracket table and returns a calculator
func NewCalculator(salaryCap int64, brackets []Bracket) (*Calculator, error) {
	if salaryCap < 0 {
		return nil, fmt.Errorf("salary cap cannot be negative")
	}
	if err := ValidateBrackets(brackets); err != nil {
		return nil, err
	}
	table := make([]Bracket, len(brackets))
	copy(table, brackets)
	return &Calculator{salaryCap: salaryCap, brackets: table}, nil
}

// NewDefaultCalculator returns the calculator for the default cap and table
func NewDefaultCalculator() *Calculator {
	return &Calculator{salaryCap: DefaultSalaryCap, brackets: DefaultBrackets()}
}

// SalaryCap returns the cap the calculator taxes above
func (c *Calculator) SalaryCap() int64 {
	return c.salaryCap
}

// Compute returns the tax owed on payroll, rounded half-up to whole dollars
func (c *Calculator) Compute(payroll int64) int64 {
	if payroll <= c.salaryCap {
		return 0
	}

	remaining := decimal.NewFromInt(payroll - c.salaryCap)
	total := decimal.Zero
	var prev int64

	for _, b := range c.brackets {
		if !remaining.IsPositive() {
			break
		}
		taxed := remaining
		if !b.IsUnbounded() {
			taxed = decimal.Min(remaining, decimal.NewFromInt(b.UpTo-prev))
			prev = b.UpTo
		}
		total = total.Add(taxed.Mul(b.Rate))
		remaining = remaining.Sub(taxed)
	}

	return total.Round(0).IntPart()
}

// Explain returns the plain-language summary of where a payroll sits against the cap
func (c *Calculator) Explain(payroll int64, overBudget bool) string {
	tax := c.Compute(payroll)

	var explanation string
	switch {
	case payroll <= c.salaryCap:
		explanation = "Great job! You're under the salary cap. No extra tax to pay!"
	case payroll <= c.salaryCap+5_000_000:
		explanation = fmt.Sprintf("You're a little over the cap. You'll pay %s in luxury tax.", FormatMoney(tax))
	case payroll <= c.salaryCap+10_000_000:
		explanation = fmt.Sprintf("You're over the cap! The luxury tax is getting expensive: %s", FormatMoney(tax))
	default:
		explanation = fmt.Sprintf("Whoa! Way over the cap! Your luxury tax bill is huge: %s", FormatMoney(tax))
	}

	if overBudget {
		explanation += " WARNING: You've gone over the budget limit!"
	}
	return explanation
}
