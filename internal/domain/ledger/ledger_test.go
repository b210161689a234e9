//go:build unit

package ledger_test

import (
	"testing"
	"time"

	"lendhub/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func tx(action ledger.Action, label ledger.Label, resourceID string, offsetMin int) ledger.Transaction {
	return ledger.Transaction{
		ID:          uuid.New(),
		BookingID:   uuid.Nil,
		Action:      action,
		Label:       label,
		ResourceID:  resourceID,
		Amount:      decimal.NewFromInt(49),
		CreatedDate: base.Add(time.Duration(offsetMin) * time.Minute),
	}
}

func TestLedger_DerivedCancellation(t *testing.T) {
	deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
	cancel := tx(ledger.ActionCancel, ledger.LabelDeposit, "pa_dep", 10)

	led := ledger.NewLedger([]ledger.Transaction{deposit, cancel})

	assert.True(t, led.IsCancelled(deposit), "a paired cancel record cancels the original")
	assert.False(t, led.IsCancelled(cancel))
}

func TestLedger_ExplicitCancelledMarker(t *testing.T) {
	deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
	deposit.Cancelled = true

	led := ledger.NewLedger([]ledger.Transaction{deposit})
	assert.True(t, led.IsCancelled(deposit))
}

func TestLedger_DepositReturnedEvenWhenCancelled(t *testing.T) {
	deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
	cancel := tx(ledger.ActionCancel, ledger.LabelDeposit, "pa_dep", 10)

	led := ledger.NewLedger([]ledger.Transaction{deposit, cancel})

	got := led.Deposit()
	require.NotNil(t, got)
	assert.Equal(t, "pa_dep", got.ResourceID)
	assert.True(t, led.IsCancelled(*got))
}

func TestLedger_LastRenewDepositIncludesSuperseded(t *testing.T) {
	r1 := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r1", 0)
	c1 := tx(ledger.ActionCancel, ledger.LabelDepositRenew, "pa_r1", 5)
	r2 := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r2", 10)
	c2 := tx(ledger.ActionCancel, ledger.LabelDepositRenew, "pa_r2", 15)

	led := ledger.NewLedger([]ledger.Transaction{r1, c1, r2, c2})

	got := led.LastRenewDeposit()
	require.NotNil(t, got)
	assert.Equal(t, "pa_r2", got.ResourceID)
}

func TestLedger_CurrentPreauthorization(t *testing.T) {
	t.Run("latest outstanding hold of any label", func(t *testing.T) {
		deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
		renewal := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r1", 10)

		led := ledger.NewLedger([]ledger.Transaction{deposit, renewal})

		got := led.CurrentPreauthorization()
		require.NotNil(t, got)
		assert.Equal(t, "pa_r1", got.ResourceID)
	})

	t.Run("skips reversed holds", func(t *testing.T) {
		deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
		renewal := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r1", 10)
		cancel := tx(ledger.ActionCancel, ledger.LabelDepositRenew, "pa_r1", 20)

		led := ledger.NewLedger([]ledger.Transaction{deposit, renewal, cancel})

		got := led.CurrentPreauthorization()
		require.NotNil(t, got)
		assert.Equal(t, "pa_dep", got.ResourceID)
	})

	t.Run("nil when everything is reversed", func(t *testing.T) {
		deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
		cancel := tx(ledger.ActionCancel, ledger.LabelDeposit, "pa_dep", 10)

		led := ledger.NewLedger([]ledger.Transaction{deposit, cancel})
		assert.Nil(t, led.CurrentPreauthorization())
	})
}

func TestLedger_NonCancelledRenewDeposits(t *testing.T) {
	r1 := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r1", 0)
	r2 := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r2", 10)
	c1 := tx(ledger.ActionCancel, ledger.LabelDepositRenew, "pa_r1", 20)

	led := ledger.NewLedger([]ledger.Transaction{r1, r2, c1})

	got := led.NonCancelledRenewDeposits()
	require.Len(t, got, 1)
	assert.Equal(t, "pa_r2", got[0].ResourceID)
}

func TestLedger_NonCancelledDepositHolds(t *testing.T) {
	// A failed best-effort cancel can leave the original and a renewal
	// outstanding at the same time; releasing the deposit sees both.
	deposit := tx(ledger.ActionPreauthorization, ledger.LabelDeposit, "pa_dep", 0)
	r1 := tx(ledger.ActionPreauthorization, ledger.LabelDepositRenew, "pa_r1", 10)
	payment := tx(ledger.ActionPreauthorization, ledger.LabelPayment, "pa_pay", 20)

	led := ledger.NewLedger([]ledger.Transaction{deposit, r1, payment})

	got := led.NonCancelledDepositHolds()
	require.Len(t, got, 2)
	assert.Equal(t, "pa_dep", got[0].ResourceID, "oldest first")
	assert.Equal(t, "pa_r1", got[1].ResourceID)
}

func TestLedger_PaymentQueries(t *testing.T) {
	payin := tx(ledger.ActionPayin, ledger.LabelPayment, "pi_1", 0)
	transfer := tx(ledger.ActionTransfer, ledger.LabelPayment, "tr_1", 10)
	payout := tx(ledger.ActionPayout, ledger.LabelPayment, "po_1", 20)

	led := ledger.NewLedger([]ledger.Transaction{payin, transfer, payout})

	require.NotNil(t, led.Payin())
	require.NotNil(t, led.Transfer())
	require.NotNil(t, led.Payout())
	assert.Equal(t, "pi_1", led.Payin().ResourceID)
	assert.Equal(t, "tr_1", led.Transfer().ResourceID)
	assert.Equal(t, "po_1", led.Payout().ResourceID)
}

func TestLedger_AppendKeepsReversalIndexCurrent(t *testing.T) {
	payin := tx(ledger.ActionPayin, ledger.LabelPayment, "pi_1", 0)
	led := ledger.NewLedger([]ledger.Transaction{payin})
	require.False(t, led.IsCancelled(payin))

	led.Append(tx(ledger.ActionRefund, ledger.LabelPayment, "pi_1", 10))
	assert.True(t, led.IsCancelled(payin))
}

func TestLedger_AllReturnsCopy(t *testing.T) {
	payin := tx(ledger.ActionPayin, ledger.LabelPayment, "pi_1", 0)
	led := ledger.NewLedger([]ledger.Transaction{payin})

	all := led.All()
	require.Len(t, all, 1)
	all[0].ResourceID = "mutated"

	assert.Equal(t, "pi_1", led.All()[0].ResourceID)
}
