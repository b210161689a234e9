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

// CancelPreauthPayment releases the current outstanding
// preauthorization, whatever its label, and records the payment-side
// cancellation marker. With nothing outstanding the marker is still set.
func (u *paymentUseCaseImpl) CancelPreauthPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger) (*booking.Booking, error) {
	if bk.CancellationPaymentDate() != nil {
		return bk, nil
	}

	if current := led.CurrentPreauthorization(); current != nil {
		res, err := u.gateway.CancelPreauthorization(ctx, current.ResourceID)
		if err != nil || res.Failed() {
			slog.Warn("preauthorization cancel failed, skipping",
				"booking_id", bk.ID(), "resource_id", current.ResourceID, "error", err)
		} else {
			cancelTx := u.newTransaction(bk, ledger.ActionCancel, current.Label, res, current.Amount, decimal.Zero)
			cancelTx.ResourceID = current.ResourceID
			if err := u.record(ctx, led, cancelTx); err != nil {
				return nil, err
			}
		}
	}

	now := u.clock.Now()
	if err := bk.MarkPaymentCancelled(now); err != nil {
		return nil, err
	}
	return u.persistPatch(ctx, bk, booking.Patch{CancellationPaymentDate: timePtr(now)}, true)
}

// PayinPayment captures the rental payment against the existing
// preauthorization into the payer's wallet. Replays short-circuit on
// paymentUsedDate: invoking this twice performs exactly one capture.
func (u *paymentUseCaseImpl) PayinPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party, amountOverride *decimal.Decimal) (*booking.Booking, error) {
	if bk.PaymentUsedDate() != nil {
		return bk, nil
	}

	preauth := led.CurrentPreauthorization()
	if preauth == nil {
		return nil, newMissingTransaction(bk.ID(), "live preauthorization")
	}
	if !payer.HasAccount() || !payer.HasWallet() {
		return nil, newPartyNotOnboarded(bk.ID(), payer.ID)
	}

	amount := u.overrideOr(amountOverride, bk.Pricing().PayerPrice)
	now := u.clock.Now()

	if amount.IsZero() {
		// A zero capture is a valid, completed no-op: skip the gateway
		// but still set the marker.
		if err := bk.MarkPaymentUsed(now); err != nil {
			return nil, err
		}
		return u.persistPatch(ctx, bk, booking.Patch{PaymentUsedDate: timePtr(now)}, true)
	}

	res, err := u.gateway.CapturePayin(ctx, preauth.ResourceID, payer.AccountRef, u.minor(amount), 0, payer.WalletRef)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "capture payin"), ErrPayinFailed)
	}
	if res.Failed() {
		return nil, newGatewayError(ErrPayinFailed, bk.ID(), "capturePayin", res.Raw)
	}

	tx := u.newTransaction(bk, ledger.ActionPayin, ledger.LabelPayment, res, amount, decimal.Zero)
	if err := u.record(ctx, led, tx); err != nil {
		return nil, err
	}

	if err := bk.MarkPaymentUsed(now); err != nil {
		return nil, err
	}
	// Funds moved; losing the marker would allow a double capture, so a
	// persistence failure propagates here.
	return u.persistPatch(ctx, bk, booking.Patch{PaymentUsedDate: timePtr(now)}, false)
}

// CancelPayinPayment refunds the captured payment, fully when no
// override is given. A zero override skips the gateway entirely. No
// marker is set; the caller decides re-entry.
func (u *paymentUseCaseImpl) CancelPayinPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party, amountOverride *decimal.Decimal) (*booking.Booking, error) {
	payin := led.Payin()
	if payin == nil {
		return nil, newMissingTransaction(bk.ID(), "payin")
	}
	if led.IsCancelled(*payin) {
		return bk, nil
	}
	if amountOverride != nil && amountOverride.IsZero() {
		return bk, nil
	}

	var amountMinor, feesMinor *int64
	refunded := payin.Amount
	if amountOverride != nil {
		refunded = *amountOverride
		m := money.ToMinorUnits(refunded)
		f := int64(0)
		amountMinor, feesMinor = &m, &f
	}

	res, err := u.gateway.RefundPayin(ctx, payin.ResourceID, payer.AccountRef, amountMinor, feesMinor)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "refund payin"), ErrRefundFailed)
	}
	if res.Failed() {
		return nil, newGatewayError(ErrRefundFailed, bk.ID(), "refundPayin", res.Raw)
	}

	refundTx := u.newTransaction(bk, ledger.ActionRefund, ledger.LabelPayment, res, refunded, decimal.Zero)
	refundTx.ResourceID = payin.ResourceID
	if err := u.record(ctx, led, refundTx); err != nil {
		return nil, err
	}
	return bk, nil
}
