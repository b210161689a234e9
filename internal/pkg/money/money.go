// Package money holds the rounding primitives shared by the pricing
// calculator and the payment orchestrator. Amounts are decimal currency
// units everywhere inside the service and integer minor units (cents)
// only at the gateway boundary.
package money

import (
	"github.com/shopspring/decimal"
)

// RoundUnit rounds half-up to the nearest whole currency unit.
func RoundUnit(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// RoundDecimal rounds half-up to one decimal place, the precision used
// for net income and rebate math.
func RoundDecimal(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// CeilUnit rounds up to the nearest whole currency unit.
func CeilUnit(d decimal.Decimal) decimal.Decimal {
	return d.RoundUp(0)
}

// ToMinorUnits converts a decimal amount to integer minor units for
// gateway calls. The amount is rounded to the cent first so drift from
// upstream arithmetic can never change the charged amount.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

// FromMinorUnits converts gateway minor units back to decimal units.
func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.NewFromInt(minor).Div(decimal.NewFromInt(100))
}

// Min returns the smaller of two amounts.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
