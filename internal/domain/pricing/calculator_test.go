//go:build unit

package pricing_test

import (
	"testing"

	"lendhub/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func policy() pricing.Policy {
	return pricing.Policy{
		OwnerFeesThreshold: decimal.NewFromInt(20),
		MaxDiscountPercent: decimal.NewFromInt(80),
	}
}

func TestCompute_FixedFees(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice: d("102"),
		OwnerFees:  dp("6"),
		TakerFees:  dp("18"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.PriceAfterRebate.Equal(d("102")))
	assert.True(t, quote.PayerPrice.Equal(d("120")))
	assert.True(t, quote.OwnerFees.Equal(d("6")))
	assert.True(t, quote.TakerFees.Equal(d("18")))
	assert.True(t, quote.NetOwnerIncome.Equal(d("96")))
	assert.True(t, quote.OwnerFeesPercent.Equal(d("5.9")))
	assert.True(t, quote.TakerFeesPercent.Equal(d("17.6")))
	assert.True(t, quote.RealizedDiscount.IsZero())
}

func TestCompute_PercentFees(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice:       d("100"),
		OwnerFeesPercent: dp("6"),
		TakerFeesPercent: dp("18"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.OwnerFees.Equal(d("6")))
	assert.True(t, quote.TakerFees.Equal(d("18")))
	assert.True(t, quote.NetOwnerIncome.Equal(d("94")))
	assert.True(t, quote.PayerPrice.Equal(d("118")))
}

func TestCompute_OwnerFeesThreshold(t *testing.T) {
	t.Run("below threshold keeps one decimal", func(t *testing.T) {
		quote, err := pricing.Compute(pricing.Params{
			OwnerPrice:       d("19.9"),
			OwnerFeesPercent: dp("7"),
		}, policy())
		require.NoError(t, err)
		assert.True(t, quote.OwnerFees.Equal(d("1.4")), "got %s", quote.OwnerFees)
	})

	t.Run("at threshold rounds to whole unit", func(t *testing.T) {
		quote, err := pricing.Compute(pricing.Params{
			OwnerPrice:       d("20"),
			OwnerFeesPercent: dp("7"),
		}, policy())
		require.NoError(t, err)
		assert.True(t, quote.OwnerFees.Equal(d("1")), "got %s", quote.OwnerFees)
	})
}

func TestCompute_NoRebateKeepsRawBase(t *testing.T) {
	// 19.99 must not be rounded to 20.0 when no rebate applies, or the
	// owner-fee threshold flips and the payer is overcharged.
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice:       d("19.99"),
		OwnerFeesPercent: dp("5"),
		TakerFeesPercent: dp("15"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.PriceAfterRebate.Equal(d("19.99")), "got %s", quote.PriceAfterRebate)
	assert.True(t, quote.OwnerFees.Equal(d("1")), "got %s", quote.OwnerFees)
	assert.True(t, quote.TakerFees.Equal(d("3")), "got %s", quote.TakerFees)
	assert.True(t, quote.PayerPrice.Equal(d("22.99")), "got %s", quote.PayerPrice)
}

func TestCompute_TakerFeesAlwaysCeil(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice:       d("10"),
		TakerFeesPercent: dp("15"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.TakerFees.Equal(d("2")), "got %s", quote.TakerFees)
	assert.True(t, quote.PayerPrice.Equal(d("12")))
}

func TestCompute_RebateRoundedBeforeApplying(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice: d("100"),
		Rebate:     d("5.4"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.RealizedDiscount.Equal(d("5")))
	assert.True(t, quote.PriceAfterRebate.Equal(d("95")))
}

func TestCompute_DiscountCap(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice: d("100"),
		Rebate:     d("90.4"),
	}, policy())
	require.NoError(t, err)

	// 90 exceeds 80% of the post-discount base, so the realized
	// discount shrinks to the cap and the price is recomputed.
	assert.True(t, quote.RealizedDiscount.Equal(d("8")), "got %s", quote.RealizedDiscount)
	assert.True(t, quote.PriceAfterRebate.Equal(d("92")))
}

func TestCompute_NegativeRebateIgnored(t *testing.T) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice: d("50"),
		Rebate:     d("-10"),
	}, policy())
	require.NoError(t, err)

	assert.True(t, quote.RealizedDiscount.IsZero())
	assert.True(t, quote.PriceAfterRebate.Equal(d("50")))
}

func TestCompute_ConflictingFeeSpec(t *testing.T) {
	_, err := pricing.Compute(pricing.Params{
		OwnerPrice:       d("100"),
		OwnerFeesPercent: dp("6"),
		TakerFees:        dp("18"),
	}, policy())
	assert.ErrorIs(t, err, pricing.ErrConflictingFeeSpec)
}

func TestCompute_NegativeBasePrice(t *testing.T) {
	_, err := pricing.Compute(pricing.Params{
		OwnerPrice: d("-1"),
	}, policy())
	assert.ErrorIs(t, err, pricing.ErrNegativeBasePrice)
}
