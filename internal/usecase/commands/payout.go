package commands

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PayoutPayment pays the provider's net income out of their wallet to
// their bank account. A missing bank account is a hard error, not a
// skip: the money has nowhere to go.
func (u *paymentUseCaseImpl) PayoutPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, owner Party, amountOverride *decimal.Decimal) (*booking.Booking, error) {
	if bk.WithdrawalDate() != nil || bk.StopWithdrawal() {
		return bk, nil
	}

	if !owner.HasAccount() || !owner.HasWallet() {
		return nil, newPartyNotOnboarded(bk.ID(), owner.ID)
	}
	if owner.BankAccountRef == "" {
		return nil, newMissingBankAccount(bk.ID(), owner.ID)
	}

	amount := u.overrideOr(amountOverride, bk.NetOwnerIncome())
	now := u.clock.Now()

	if amount.IsZero() {
		if err := bk.MarkWithdrawn(now); err != nil {
			return nil, err
		}
		return u.persistPatch(ctx, bk, booking.Patch{WithdrawalDate: timePtr(now)}, true)
	}

	res, err := u.gateway.CreatePayout(ctx, owner.AccountRef, owner.WalletRef, owner.BankAccountRef, u.minor(amount))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "create payout"), ErrPayoutFailed)
	}
	if res.Failed() {
		bk.PoisonWithdrawal()
		u.poison(ctx, bk, booking.Patch{StopWithdrawal: boolPtr(true)})
		return nil, newGatewayError(ErrPayoutFailed, bk.ID(), "createPayout", res.Raw)
	}

	tx := u.newTransaction(bk, ledger.ActionPayout, ledger.LabelPayment, res, amount, decimal.Zero)
	if err := u.record(ctx, led, tx); err != nil {
		return nil, err
	}

	if err := bk.MarkWithdrawn(now); err != nil {
		return nil, err
	}
	return u.persistPatch(ctx, bk, booking.Patch{WithdrawalDate: timePtr(now)}, false)
}
