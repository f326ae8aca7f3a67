package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bracket is one progressive step of the luxury tax. UpTo is the cumulative
// threshold above the cap where the bracket ends; zero means unbounded.
type Bracket struct {
	UpTo int64
	Rate decimal.Decimal
}

// NewBracket builds a bracket from a string rate such as "1.75"
func NewBracket(upTo int64, rate string) (Bracket, error) {
	r, err := decimal.NewFromString(rate)
	if err != nil {
		return Bracket{}, fmt.Errorf("invalid bracket rate %q: %w", rate, err)
	}
	if r.IsNegative() {
		return Bracket{}, fmt.Errorf("bracket rate cannot be negative: %s", rate)
	}
	if upTo < 0 {
		return Bracket{}, fmt.Errorf("bracket threshold cannot be negative: %d", upTo)
	}
	return Bracket{UpTo: upTo, Rate: r}, nil
}

// IsUnbounded reports whether the bracket taxes everything above the previous threshold
func (b Bracket) IsUnbounded() bool {
	return b.UpTo == 0
}

// DefaultBrackets is the game's luxury tax table
func DefaultBrackets() []Bracket {
	return []Bracket{
		{UpTo: 5_000_000, Rate: decimal.RequireFromString("1.5")},
		{UpTo: 10_000_000, Rate: decimal.RequireFromString("1.75")},
		{UpTo: 15_000_000, Rate: decimal.RequireFromString("2.5")},
		{UpTo: 0, Rate: decimal.RequireFromString("3.25")},
	}
}

// ValidateBrackets checks that thresholds strictly increase and only the last bracket is unbounded
func ValidateBrackets(brackets []Bracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("bracket table cannot be empty")
	}
	var prev int64
	for i, b := range brackets {
		last := i == len(brackets)-1
		if b.IsUnbounded() {
			if !last {
				return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i)
			}
			continue
		}
		if b.UpTo <= prev {
			return fmt.Errorf("bracket %d: threshold %d must exceed %d", i, b.UpTo, prev)
		}
		prev = b.UpTo
	}
	if !brackets[len(brackets)-1].IsUnbounded() {
		return fmt.Errorf("last bracket must be unbounded")
	}
	return nil
}
