// Package pricing derives the fee split of a booking from its base
// price, optional rebate, and fee configuration. Pure computation, no
// I/O. The rounding rules here are load-bearing for financial
// correctness: given the same inputs the output must be bit-for-bit
// reproducible.
package pricing

import (
	"errors"

	"lendhub/internal/pkg/money"

	"github.com/shopspring/decimal"
)

var (
	ErrConflictingFeeSpec = errors.New("fee percentages and fixed fee amounts are mutually exclusive")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
)

var hundred = decimal.NewFromInt(100)

// Policy carries the marketplace-wide rounding knobs.
type Policy struct {
	// OwnerFeesThreshold is the post-rebate base at which owner fees
	// switch from one-decimal rounding to whole-unit rounding.
	OwnerFeesThreshold decimal.Decimal
	// MaxDiscountPercent caps the realized rebate relative to the
	// post-discount base.
	MaxDiscountPercent decimal.Decimal
}

// Params describes one booking's pricing inputs. Fees are given either
// as percentages or as fixed amounts, never both.
type Params struct {
	OwnerPrice decimal.Decimal
	Rebate     decimal.Decimal

	OwnerFeesPercent *decimal.Decimal
	TakerFeesPercent *decimal.Decimal

	OwnerFees *decimal.Decimal
	TakerFees *decimal.Decimal
}

// Quote is the derived fee split. PayerPrice is what the renter is
// charged; NetOwnerIncome is what the provider ultimately receives.
type Quote struct {
	PriceAfterRebate decimal.Decimal
	NetOwnerIncome   decimal.Decimal
	PayerPrice       decimal.Decimal
	OwnerFees        decimal.Decimal
	TakerFees        decimal.Decimal
	OwnerFeesPercent decimal.Decimal
	TakerFeesPercent decimal.Decimal
	RealizedDiscount decimal.Decimal
}

// Compute applies the rebate and fee rules:
//   - the rebate is rounded to the unit before being applied
//   - the realized discount is capped at MaxDiscountPercent of the
//     post-discount base, cap math at one decimal
//   - owner fees round to the unit once the post-rebate base reaches
//     OwnerFeesThreshold, otherwise to one decimal
//   - taker fees always round up to the unit
//   - net owner income and all rebate math round to one decimal
func Compute(p Params, pol Policy) (Quote, error) {
	if p.OwnerPrice.IsNegative() {
		return Quote{}, ErrNegativeBasePrice
	}
	percentGiven := p.OwnerFeesPercent != nil || p.TakerFeesPercent != nil
	fixedGiven := p.OwnerFees != nil || p.TakerFees != nil
	if percentGiven && fixedGiven {
		return Quote{}, ErrConflictingFeeSpec
	}

	discount := money.RoundUnit(p.Rebate)
	if discount.IsNegative() {
		discount = decimal.Zero
	}

	// Without a rebate the base stays untouched: rounding a raw 19.99
	// to 20.0 would flip the owner-fee threshold and change the charge.
	priceAfterRebate := p.OwnerPrice
	realized := decimal.Zero
	if discount.IsPositive() {
		priceAfterRebate = money.RoundDecimal(p.OwnerPrice.Sub(discount))
		if priceAfterRebate.IsNegative() {
			priceAfterRebate = decimal.Zero
		}

		maxDiscount := money.RoundDecimal(priceAfterRebate.Mul(pol.MaxDiscountPercent).Div(hundred))
		realized = money.Min(discount, maxDiscount)
		if !realized.Equal(discount) {
			priceAfterRebate = money.RoundDecimal(p.OwnerPrice.Sub(realized))
		}
	}

	ownerFees := feeAmount(priceAfterRebate, p.OwnerFees, p.OwnerFeesPercent, func(raw decimal.Decimal) decimal.Decimal {
		if priceAfterRebate.GreaterThanOrEqual(pol.OwnerFeesThreshold) {
			return money.RoundUnit(raw)
		}
		return money.RoundDecimal(raw)
	})
	takerFees := feeAmount(priceAfterRebate, p.TakerFees, p.TakerFeesPercent, money.CeilUnit)

	netOwnerIncome := money.RoundDecimal(priceAfterRebate.Sub(ownerFees))
	payerPrice := priceAfterRebate.Add(takerFees)

	return Quote{
		PriceAfterRebate: priceAfterRebate,
		NetOwnerIncome:   netOwnerIncome,
		PayerPrice:       payerPrice,
		OwnerFees:        ownerFees,
		TakerFees:        takerFees,
		OwnerFeesPercent: feePercent(priceAfterRebate, ownerFees, p.OwnerFeesPercent),
		TakerFeesPercent: feePercent(priceAfterRebate, takerFees, p.TakerFeesPercent),
		RealizedDiscount: realized,
	}, nil
}

func feeAmount(base decimal.Decimal, fixed, percent *decimal.Decimal, round func(decimal.Decimal) decimal.Decimal) decimal.Decimal {
	if fixed != nil {
		return *fixed
	}
	if percent == nil || percent.IsZero() {
		return decimal.Zero
	}
	return round(base.Mul(*percent).Div(hundred))
}

func feePercent(base, fees decimal.Decimal, given *decimal.Decimal) decimal.Decimal {
	if given != nil {
		return *given
	}
	if base.IsZero() {
		return decimal.Zero
	}
	return money.RoundDecimal(fees.Mul(hundred).Div(base))
}
