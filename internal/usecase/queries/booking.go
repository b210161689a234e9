package queries

import (
	"context"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrBookingNotFound = errs.New("booking not found")

// Read models (DTO for read side)
type BookingPaymentView struct {
	ID                      uuid.UUID         `json:"id"`
	ListingID               uuid.UUID         `json:"listing_id"`
	OwnerID                 uuid.UUID         `json:"owner_id"`
	PayerID                 uuid.UUID         `json:"payer_id"`
	PayerPrice              decimal.Decimal   `json:"payer_price"`
	OwnerPrice              decimal.Decimal   `json:"owner_price"`
	Deposit                 decimal.Decimal   `json:"deposit"`
	OwnerFees               decimal.Decimal   `json:"owner_fees"`
	TakerFees               decimal.Decimal   `json:"taker_fees"`
	DepositTrack            string            `json:"deposit_track"`
	PaymentTrack            string            `json:"payment_track"`
	PaymentUsedDate         *time.Time        `json:"payment_used_date,omitempty"`
	PaymentTransferDate     *time.Time        `json:"payment_transfer_date,omitempty"`
	WithdrawalDate          *time.Time        `json:"withdrawal_date,omitempty"`
	CancellationDepositDate *time.Time        `json:"cancellation_deposit_date,omitempty"`
	CancellationPaymentDate *time.Time        `json:"cancellation_payment_date,omitempty"`
	Transactions            []TransactionView `json:"transactions"`
}

type TransactionView struct {
	ID            uuid.UUID       `json:"id"`
	Action        string          `json:"action"`
	Label         string          `json:"label"`
	ResourceID    string          `json:"resource_id"`
	Amount        decimal.Decimal `json:"amount"`
	Fees          decimal.Decimal `json:"fees"`
	Cancelled     bool            `json:"cancelled"`
	CreatedDate   time.Time       `json:"created_date"`
	ExecutionDate *time.Time      `json:"execution_date,omitempty"`
}

type BookingReadStore interface {
	FindBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindTransactions(ctx context.Context, bookingID uuid.UUID) ([]ledger.Transaction, error)
}

type BookingQueries interface {
	GetPaymentState(ctx context.Context, bookingID uuid.UUID) (*BookingPaymentView, error)
	ListTransactions(ctx context.Context, bookingID uuid.UUID) ([]TransactionView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetPaymentState assembles the payment view of one booking: the
// pricing snapshot, the derived track states and the full ledger with
// derived cancellation flags.
func (q *bookingQueriesImpl) GetPaymentState(ctx context.Context, bookingID uuid.UUID) (*BookingPaymentView, error) {
	bk, err := q.store.FindBooking(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}

	records, err := q.store.FindTransactions(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load transactions")
	}
	led := ledger.NewLedger(records)

	txViews := make([]TransactionView, len(records))
	for i, tx := range records {
		txViews[i] = toTransactionView(led, tx)
	}

	pricing := bk.Pricing()
	return &BookingPaymentView{
		ID:                      bk.ID(),
		ListingID:               bk.ListingID(),
		OwnerID:                 bk.OwnerID(),
		PayerID:                 bk.PayerID(),
		PayerPrice:              pricing.PayerPrice,
		OwnerPrice:              pricing.OwnerPrice,
		Deposit:                 pricing.Deposit,
		OwnerFees:               pricing.OwnerFees,
		TakerFees:               pricing.TakerFees,
		DepositTrack:            string(bk.DepositTrack()),
		PaymentTrack:            string(bk.PaymentTrack()),
		PaymentUsedDate:         bk.PaymentUsedDate(),
		PaymentTransferDate:     bk.PaymentTransferDate(),
		WithdrawalDate:          bk.WithdrawalDate(),
		CancellationDepositDate: bk.CancellationDepositDate(),
		CancellationPaymentDate: bk.CancellationPaymentDate(),
		Transactions:            txViews,
	}, nil
}

// ListTransactions returns the booking's ledger alone, oldest first,
// with derived cancellation flags.
func (q *bookingQueriesImpl) ListTransactions(ctx context.Context, bookingID uuid.UUID) ([]TransactionView, error) {
	if _, err := q.store.FindBooking(ctx, bookingID); err != nil {
		return nil, errs.Mark(err, ErrBookingNotFound)
	}

	records, err := q.store.FindTransactions(ctx, bookingID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load transactions")
	}
	led := ledger.NewLedger(records)

	views := make([]TransactionView, len(records))
	for i, tx := range records {
		views[i] = toTransactionView(led, tx)
	}
	return views, nil
}

func toTransactionView(led *ledger.Ledger, tx ledger.Transaction) TransactionView {
	var executed *time.Time
	if !tx.ExecutionDate.IsZero() {
		t := tx.ExecutionDate
		executed = &t
	}
	return TransactionView{
		ID:            tx.ID,
		Action:        string(tx.Action),
		Label:         string(tx.Label),
		ResourceID:    tx.ResourceID,
		Amount:        tx.Amount,
		Fees:          tx.Fees,
		Cancelled:     led.IsCancelled(tx),
		CreatedDate:   tx.CreatedDate,
		ExecutionDate: executed,
	}
}
