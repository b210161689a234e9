package commands

import (
	"context"
	"log/slog"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/config"
	"lendhub/internal/pkg/errs"
	"lendhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BestEffortOutcome reports what happened to a non-critical side step.
// Failures are observed and logged but never block the primary
// operation.
type BestEffortOutcome string

const (
	BestEffortApplied BestEffortOutcome = "applied"
	BestEffortSkipped BestEffortOutcome = "skipped"
	BestEffortFailed  BestEffortOutcome = "failed"
)

// RenewDepositResult reports the new hold and what happened to the
// previous one. A failed previous-hold cancel leaves a stale gateway
// hold behind, which is acceptable; a missing deposit is not.
type RenewDepositResult struct {
	Booking        *booking.Booking
	Renewed        bool
	PreviousCancel BestEffortOutcome
}

// PaymentCommands is the payment orchestrator: the ordered set of
// idempotent operations that mutate booking payment state and the
// transaction ledger. Every operation short-circuits on its persisted
// lifecycle marker or poison flag, so re-running an entire chain after a
// crash is always safe: at most one gateway call happens per marker
// transition.
//
// Callers must invoke operations sequentially per booking; calls for
// different bookings are independent.
type PaymentCommands interface {
	RenewDeposit(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party) (*RenewDepositResult, error)
	CancelDeposit(ctx context.Context, bk *booking.Booking, led *ledger.Ledger) (*booking.Booking, error)
	CancelPreauthPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger) (*booking.Booking, error)
	PayinPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party, amountOverride *decimal.Decimal) (*booking.Booking, error)
	CancelPayinPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer Party, amountOverride *decimal.Decimal) (*booking.Booking, error)
	TransferPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, payer, owner Party, amountOverride *decimal.Decimal) (*booking.Booking, error)
	CancelTransferPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, owner Party) (*booking.Booking, error)
	PayoutPayment(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, owner Party, amountOverride *decimal.Decimal) (*booking.Booking, error)
}

type paymentUseCaseImpl struct {
	gateway     PaymentGateway
	bookingRepo BookingRepository
	txRepo      TransactionRepository
	clock       clock.Clock
	currency    string
	renewalCap  decimal.Decimal
}

func NewPaymentCommands(
	gateway PaymentGateway,
	bookingRepo BookingRepository,
	txRepo TransactionRepository,
	clk clock.Clock,
	gatewayCfg config.GatewayConfig,
	paymentCfg config.PaymentConfig,
) PaymentCommands {
	return &paymentUseCaseImpl{
		gateway:     gateway,
		bookingRepo: bookingRepo,
		txRepo:      txRepo,
		clock:       clk,
		currency:    gatewayCfg.Currency,
		renewalCap:  decimal.NewFromInt(paymentCfg.DepositRenewalCap),
	}
}

// newTransaction builds the ledger record for a successful gateway call.
func (u *paymentUseCaseImpl) newTransaction(
	bk *booking.Booking,
	action ledger.Action,
	label ledger.Label,
	res GatewayTransaction,
	amount, fees decimal.Decimal,
) ledger.Transaction {
	created := res.CreatedDate
	if created.IsZero() {
		created = u.clock.Now()
	}
	return ledger.Transaction{
		ID:            uuid.New(),
		BookingID:     bk.ID(),
		Action:        action,
		Label:         label,
		ResourceID:    res.ResourceID,
		Amount:        amount,
		Fees:          fees,
		CreatedDate:   created,
		ExecutionDate: res.ExecutionDate,
	}
}

// record persists the transaction and mirrors it into the in-memory
// ledger so later operations in the same chain observe it.
func (u *paymentUseCaseImpl) record(ctx context.Context, led *ledger.Ledger, tx ledger.Transaction) error {
	persisted, err := u.txRepo.Append(ctx, tx)
	if err != nil {
		return errs.Wrap(err, "failed to append transaction")
	}
	led.Append(persisted)
	return nil
}

// persistPatch writes a lifecycle-marker transition. When tolerant, a
// vanished booking row is logged and the in-memory booking is returned;
// that is only safe for transitions a replay would redo as a no-op.
func (u *paymentUseCaseImpl) persistPatch(ctx context.Context, bk *booking.Booking, patch booking.Patch, tolerant bool) (*booking.Booking, error) {
	updated, err := u.bookingRepo.Update(ctx, bk.ID(), patch)
	if err != nil {
		if tolerant && infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("booking row gone during marker update, keeping in-memory state",
				"booking_id", bk.ID(), "error", err)
			return bk, nil
		}
		return nil, errs.Mark(err, ErrBookingUpdateFailed)
	}
	return updated, nil
}

// poison persists a stop flag after an unrecoverable gateway failure.
// The primary error is already on its way to the caller, so a failed
// flag write is only logged.
func (u *paymentUseCaseImpl) poison(ctx context.Context, bk *booking.Booking, patch booking.Patch) {
	if _, err := u.bookingRepo.Update(ctx, bk.ID(), patch); err != nil {
		slog.Error("failed to persist poison flag", "booking_id", bk.ID(), "error", err)
	}
}

// cancelPreauthBestEffort cancels a superseded hold. Stale gateway-side
// holds are acceptable; double deposits are not, so failures here never
// surface.
func (u *paymentUseCaseImpl) cancelPreauthBestEffort(ctx context.Context, bk *booking.Booking, led *ledger.Ledger, hold ledger.Transaction) BestEffortOutcome {
	res, err := u.gateway.CancelPreauthorization(ctx, hold.ResourceID)
	if err != nil || res.Failed() {
		slog.Warn("best-effort preauthorization cancel failed",
			"booking_id", bk.ID(), "resource_id", hold.ResourceID, "error", err)
		return BestEffortFailed
	}
	cancelTx := u.newTransaction(bk, ledger.ActionCancel, hold.Label, res, hold.Amount, decimal.Zero)
	cancelTx.ResourceID = hold.ResourceID
	if err := u.record(ctx, led, cancelTx); err != nil {
		slog.Warn("failed to record best-effort cancel",
			"booking_id", bk.ID(), "resource_id", hold.ResourceID, "error", err)
		return BestEffortFailed
	}
	return BestEffortApplied
}

func (u *paymentUseCaseImpl) overrideOr(amountOverride *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if amountOverride != nil {
		return *amountOverride
	}
	return fallback
}

func (u *paymentUseCaseImpl) minor(amount decimal.Decimal) int64 {
	return money.ToMinorUnits(amount)
}

func timePtr(t time.Time) *time.Time { return &t }
func boolPtr(b bool) *bool           { return &b }
