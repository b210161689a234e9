package commands

import (
	"context"
	"log/slog"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/money"

	"github.com/shopspring/decimal"
)

// RenewDeposit re-issues the security-deposit hold before the previous
// one expires, capped at the configured renewal amount. The step is
// repeatable and sets no lifecycle marker; the previous hold is
// cancelled best-effort only after the new one exists.
func (u *paymentUseCaseImpl) RenewDeposit(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party) (*RenewDepositResult, error) {
	if bk.CancellationDepositDate() != nil || bk.StopRenewDeposit() {
		return &RenewDepositResult{Booking: bk, Renewed: false, PreviousCancel: BestEffortSkipped}, nil
	}
	if !bk.Pricing().Deposit.IsPositive() {
		return nil, newMissingDeposit(bk.ID())
	}
	if !payer.HasAccount() {
		return nil, newPartyNotOnboarded(bk.ID(), payer.ID)
	}

	amount := money.Min(u.renewalCap, bk.Pricing().Deposit)

	previous := u.previousDepositHold(led)

	res, err := u.gateway.CreatePreauthorization(ctx, payer.AccountRef, u.minor(amount), u.currency)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create renewal preauthorization"), ErrPreauthorizationFailed)
	}
	if res.Failed() {
		// Unrecoverable on this booking: block further renewals.
		bk.PoisonRenewDeposit()
		u.poison(ctx, bk, booking.Patch{StopRenewDeposit: boolPtr(true)})
		return nil, newGatewayError(ErrPreauthorizationFailed, bk.ID(), "createPreauthorization", res.Raw)
	}

	tx := u.newTransaction(bk, ledger.ActionPreauthorization, ledger.LabelDepositRenew, res, amount, decimal.Zero)
	if err := u.record(ctx, led, tx); err != nil {
		return nil, err
	}

	outcome := BestEffortSkipped
	if previous != nil {
		outcome = u.cancelPreauthBestEffort(ctx, bk, led, *previous)
	}

	return &RenewDepositResult{Booking: bk, Renewed: true, PreviousCancel: outcome}, nil
}

// previousDepositHold picks the hold the new renewal supersedes: the
// latest outstanding renewal, or the original deposit hold when no
// renewal happened yet.
func (u *paymentUseCaseImpl) previousDepositHold(led *ledger.Ledger) *ledger.Transaction {
	if renewals := led.NonCancelledRenewDeposits(); len(renewals) > 0 {
		last := renewals[len(renewals)-1]
		return &last
	}
	if dep := led.Deposit(); dep != nil && !led.IsCancelled(*dep) {
		return dep
	}
	return nil
}

// CancelDeposit releases every outstanding deposit hold, original and
// renewals alike, then records the cancellation marker. Gateway-side
// cancel is idempotent, so individual cancel failures are logged and
// skipped rather than propagated.
func (u *paymentUseCaseImpl) CancelDeposit(ctx context.Context, bk *booking.Booking, led *ledger.Ledger) (*booking.Booking, error) {
	if bk.CancellationDepositDate() != nil {
		return bk, nil
	}

	for _, hold := range led.NonCancelledDepositHolds() {
		res, err := u.gateway.CancelPreauthorization(ctx, hold.ResourceID)
		if err != nil || res.Failed() {
			slog.Warn("deposit hold cancel failed, skipping",
				"booking_id", bk.ID(), "resource_id", hold.ResourceID, "error", err)
			continue
		}
		cancelTx := u.newTransaction(bk, ledger.ActionCancel, hold.Label, res, hold.Amount, decimal.Zero)
		cancelTx.ResourceID = hold.ResourceID
		if err := u.record(ctx, led, cancelTx); err != nil {
			return nil, err
		}
	}

	now := u.clock.Now()
	if err := bk.MarkDepositCancelled(now); err != nil {
		return nil, err
	}
	// Releasing holds is replay-safe, so a lost booking row is tolerated.
	return u.persistPatch(ctx, bk, booking.Patch{CancellationDepositDate: timePtr(now)}, true)
}
