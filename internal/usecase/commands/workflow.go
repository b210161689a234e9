package commands

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/infra"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrPartyNotFound   = errs.New("party not found")
)

// PaymentWorkflows are the entry points the booking lifecycle calls
// into: acceptance, cancellation, the deposit-renewal cron and
// end-of-rental settlement. Each call loads the booking, its parties,
// and rebuilds a fresh ledger from the persisted transactions, then runs
// the orchestrator operations in their required order. Re-running a
// whole workflow after a crash is safe: completed steps short-circuit on
// their markers.
type PaymentWorkflows interface {
	AcceptBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	CancelBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	CancelBookingDeposit(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	SettleBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error)
	RenewBookingDeposit(ctx context.Context, bookingID uuid.UUID) (*RenewDepositResult, error)
}

type paymentWorkflowsImpl struct {
	payments    PaymentCommands
	bookingRepo BookingRepository
	txRepo      TransactionRepository
	partyRepo   PartyRepository
}

func NewPaymentWorkflows(
	payments PaymentCommands,
	bookingRepo BookingRepository,
	txRepo TransactionRepository,
	partyRepo PartyRepository,
) PaymentWorkflows {
	return &paymentWorkflowsImpl{
		payments:    payments,
		bookingRepo: bookingRepo,
		txRepo:      txRepo,
		partyRepo:   partyRepo,
	}
}

type orchestrationContext struct {
	booking *booking.Booking
	ledger  *ledger.Ledger
	payer   Party
	owner   Party
}

func (w *paymentWorkflowsImpl) load(ctx context.Context, bookingID uuid.UUID) (*orchestrationContext, error) {
	bk, err := w.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}

	records, err := w.txRepo.FindByBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load transactions")
	}

	payer, err := w.partyRepo.FindByID(ctx, bk.PayerID())
	if err != nil {
		return nil, partyLoadErr(err)
	}
	owner, err := w.partyRepo.FindByID(ctx, bk.OwnerID())
	if err != nil {
		return nil, partyLoadErr(err)
	}

	return &orchestrationContext{
		booking: bk,
		ledger:  ledger.NewLedger(records),
		payer:   *payer,
		owner:   *owner,
	}, nil
}

// partyLoadErr marks only a genuine missing row as ErrPartyNotFound;
// infrastructure failures must not surface as a 404.
func partyLoadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrPartyNotFound)
	}
	return errs.Wrap(err, "failed to load party")
}

// AcceptBookingPayment runs the acceptance chain: capture the rental
// payment, then move the provider's net income to their wallet. The
// order matters: the transfer reads ledger state the capture produced.
func (w *paymentWorkflowsImpl) AcceptBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	oc, err := w.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	bk, err := w.payments.PayinPayment(ctx, oc.booking, oc.ledger, oc.payer, nil)
	if err != nil {
		return nil, err
	}
	return w.payments.TransferPayment(ctx, bk, oc.ledger, oc.payer, oc.owner, nil)
}

// CancelBookingPayment reverses a booking that never started: release
// the payment preauthorization, then every outstanding deposit hold.
func (w *paymentWorkflowsImpl) CancelBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	oc, err := w.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	bk, err := w.payments.CancelPreauthPayment(ctx, oc.booking, oc.ledger)
	if err != nil {
		return nil, err
	}
	return w.payments.CancelDeposit(ctx, bk, oc.ledger)
}

// CancelBookingDeposit releases the deposit holds alone, leaving the
// payment track untouched. Used when the rental continues but the
// deposit is no longer wanted.
func (w *paymentWorkflowsImpl) CancelBookingDeposit(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	oc, err := w.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return w.payments.CancelDeposit(ctx, oc.booking, oc.ledger)
}

// SettleBookingPayment ends a rental: pay the provider out and release
// the security deposit.
func (w *paymentWorkflowsImpl) SettleBookingPayment(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	oc, err := w.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	bk, err := w.payments.PayoutPayment(ctx, oc.booking, oc.ledger, oc.owner, nil)
	if err != nil {
		return nil, err
	}
	return w.payments.CancelDeposit(ctx, bk, oc.ledger)
}

// RenewBookingDeposit is the cron entry for long rentals whose deposit
// hold is about to expire.
func (w *paymentWorkflowsImpl) RenewBookingDeposit(ctx context.Context, bookingID uuid.UUID) (*RenewDepositResult, error) {
	oc, err := w.load(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return w.payments.RenewDeposit(ctx, oc.booking, oc.ledger, oc.payer)
}
