package tax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/tax"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$136.0M", tax.FormatMoney(136_000_000))
	assert.Equal(t, "$1.5M", tax.FormatMoney(1_500_000))
	assert.Equal(t, "$500K", tax.FormatMoney(500_000))
	assert.Equal(t, "$12", tax.FormatMoney(12))
	assert.Equal(t, "$0", tax.FormatMoney(0))
}

func TestFormatFull(t *testing.T) {
	assert.Equal(t, "$136,000,000", tax.FormatFull(136_000_000))
	assert.Equal(t, "$1,000", tax.FormatFull(1000))
	assert.Equal(t, "$999", tax.FormatFull(999))
	assert.Equal(t, "$0", tax.FormatFull(0))
	assert.Equal(t, "-$12,500", tax.FormatFull(-12_500))
}
