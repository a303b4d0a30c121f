package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"Isfahan/internal/money"
)

func TestUSD(t *testing.T) {
	m := money.USD(decimal.RequireFromString("16.99"))

	assert.Equal(t, "USD", m.Currency)
	assert.Equal(t, "USD 16.99", m.String())
}

func TestInBDT_FixedRate(t *testing.T) {
	m := money.USD(decimal.RequireFromString("10"))

	converted := m.InBDT()
	assert.Equal(t, "BDT", converted.Currency)
	assert.True(t, converted.Amount.Equal(decimal.RequireFromString("1200")), "got %s", converted.Amount)
}

func TestInBDT_KeepsCents(t *testing.T) {
	m := money.USD(decimal.RequireFromString("16.99"))

	converted := m.InBDT()
	assert.True(t, converted.Amount.Equal(decimal.RequireFromString("2038.80")), "got %s", converted.Amount)
	assert.Equal(t, "BDT 2038.80", converted.String())
}
