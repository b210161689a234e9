package commands

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferPayment moves the captured rental payment from the payer's
// wallet to the provider's wallet, net of platform fees. The gateway
// debits netIncome + fees and credits netIncome; the fee difference
// stays with the platform.
func (u *paymentUseCaseImpl) TransferPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer, owner Party, amountOverride *decimal.Decimal) (*booking.Booking, error) {
	if bk.PaymentTransferDate() != nil || bk.StopTransferPayment() {
		return bk, nil
	}

	var missing []Party
	if !payer.HasAccount() || !payer.HasWallet() {
		missing = append(missing, payer)
	}
	if !owner.HasWallet() {
		missing = append(missing, owner)
	}
	if len(missing) > 0 {
		ids := make([]uuid.UUID, len(missing))
		for i, p := range missing {
			ids[i] = p.ID
		}
		return nil, newPartyNotOnboarded(bk.ID(), ids...)
	}

	amount := u.overrideOr(amountOverride, bk.NetOwnerIncome())
	fees := bk.TotalFees()
	now := u.clock.Now()

	if amount.IsZero() {
		if err := bk.MarkPaymentTransferred(now); err != nil {
			return nil, err
		}
		return u.persistPatch(ctx, bk, booking.Patch{PaymentTransferDate: timePtr(now)}, true)
	}

	gross := amount.Add(fees)
	res, err := u.gateway.CreateTransfer(ctx, payer.WalletRef, owner.WalletRef, u.minor(gross), u.minor(fees))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create transfer"), ErrTransferFailed)
	}
	if res.Failed() {
		bk.PoisonTransferPayment()
		u.poison(ctx, bk, booking.Patch{StopTransferPayment: boolPtr(true)})
		return nil, newGatewayError(ErrTransferFailed, bk.ID(), "createTransfer", res.Raw)
	}

	tx := u.newTransaction(bk, ledger.ActionTransfer, ledger.LabelPayment, res, amount, fees)
	if err := u.record(ctx, led, tx); err != nil {
		return nil, err
	}

	if err := bk.MarkPaymentTransferred(now); err != nil {
		return nil, err
	}
	return u.persistPatch(ctx, bk, booking.Patch{PaymentTransferDate: timePtr(now)}, false)
}

// CancelTransferPayment refunds the wallet-to-wallet transfer. No
// marker is set; the caller decides what happens next.
func (u *paymentUseCaseImpl) CancelTransferPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, owner Party) (*booking.Booking, error) {
	transfer := led.Transfer()
	if transfer == nil {
		return nil, newMissingTransaction(bk.ID(), "transfer")
	}
	if led.IsCancelled(*transfer) {
		return bk, nil
	}

	res, err := u.gateway.RefundTransfer(ctx, transfer.ResourceID, owner.AccountRef)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "refund transfer"), ErrRefundFailed)
	}
	if res.Failed() {
		return nil, newGatewayError(ErrRefundFailed, bk.ID(), "refundTransfer", res.Raw)
	}

	refundTx := u.newTransaction(bk, ledger.ActionRefund, ledger.LabelPayment, res, transfer.Amount, transfer.Fees)
	refundTx.ResourceID = transfer.ResourceID
	if err := u.record(ctx, led, refundTx); err != nil {
		return nil, err
	}
	return bk, nil
}
