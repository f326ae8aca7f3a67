package tax

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// FormatMoney renders an amount the short way: $1.5M, $500K, $12
func FormatMoney(amount int64) string {
	d := decimal.NewFromInt(amount)
	switch {
	case amount >= 1_000_000:
		return "$" + d.Div(million).StringFixed(1) + "M"
	case amount >= 1_000:
		return "$" + d.Div(thousand).StringFixed(0) + "K"
	default:
		return "$" + strconv.FormatInt(amount, 10)
	}
}

// FormatFull renders an amount with thousands separators: $136,000,000
func FormatFull(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return sign + "$" + b.String()
}
