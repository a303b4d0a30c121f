package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Catalog prices are quoted in USD. Slips additionally show the amount in
// BDT at the storefront's fixed display rate.
var (
	usd = currency.USD
	bdt = currency.MustParseISO("BDT")

	usdToBDTRate = decimal.NewFromInt(120)
)

type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: usd.String()}
}

// InBDT converts a USD amount at the fixed display rate.
func (m Money) InBDT() Money {
	return Money{
		Amount:   m.Amount.Mul(usdToBDTRate),
		Currency: bdt.String(),
	}
}

func (m Money) String() string {
	return m.Currency + " " + m.Amount.StringFixed(2)
}
