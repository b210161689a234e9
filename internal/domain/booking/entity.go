package booking

import (
	"errors"
	"time"

	"lendhub/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrPaymentAlreadyCaptured    = errors.New("payment already captured")
	ErrPaymentNotCaptured        = errors.New("payment not captured yet")
	ErrPaymentAlreadyTransferred = errors.New("payment already transferred")
	ErrPaymentNotTransferred     = errors.New("payment not transferred yet")
	ErrAlreadyWithdrawn          = errors.New("payout already initiated")
	ErrDepositAlreadyCancelled   = errors.New("deposit already cancelled")
	ErrPaymentAlreadyCancelled   = errors.New("payment already cancelled")
	ErrNegativeAmount            = errors.New("amount cannot be negative")
)

// PricingSnapshot is fixed at booking-acceptance time and never
// recomputed afterwards. All amounts are decimal currency units.
type PricingSnapshot struct {
	PayerPrice decimal.Decimal
	OwnerPrice decimal.Decimal
	Deposit    decimal.Decimal
	OwnerFees  decimal.Decimal
	TakerFees  decimal.Decimal
}

// Booking is the payment view of a rental booking. Lifecycle markers are
// set exactly once and form the idempotency audit trail; poison flags
// permanently block retries of one workflow step.
type Booking struct {
	id        uuid.UUID
	listingID uuid.UUID
	ownerID   uuid.UUID
	payerID   uuid.UUID

	pricing PricingSnapshot

	paymentUsedDate         *time.Time
	paymentTransferDate     *time.Time
	withdrawalDate          *time.Time
	cancellationDepositDate *time.Time
	cancellationPaymentDate *time.Time

	stopRenewDeposit    bool
	stopTransferPayment bool
	stopWithdrawal      bool

	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(listingID, ownerID, payerID uuid.UUID, pricing PricingSnapshot, now time.Time) (*Booking, error) {
	for _, a := range []decimal.Decimal{
		pricing.PayerPrice, pricing.OwnerPrice, pricing.Deposit, pricing.OwnerFees, pricing.TakerFees,
	} {
		if a.IsNegative() {
			return nil, ErrNegativeAmount
		}
	}

	return &Booking{
		id:        uuid.New(),
		listingID: listingID,
		ownerID:   ownerID,
		payerID:   payerID,
		pricing:   pricing,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructBooking(
	id, listingID, ownerID, payerID uuid.UUID,
	pricing PricingSnapshot,
	paymentUsedDate, paymentTransferDate, withdrawalDate *time.Time,
	cancellationDepositDate, cancellationPaymentDate *time.Time,
	stopRenewDeposit, stopTransferPayment, stopWithdrawal bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                      id,
		listingID:               listingID,
		ownerID:                 ownerID,
		payerID:                 payerID,
		pricing:                 pricing,
		paymentUsedDate:         paymentUsedDate,
		paymentTransferDate:     paymentTransferDate,
		withdrawalDate:          withdrawalDate,
		cancellationDepositDate: cancellationDepositDate,
		cancellationPaymentDate: cancellationPaymentDate,
		stopRenewDeposit:        stopRenewDeposit,
		stopTransferPayment:     stopTransferPayment,
		stopWithdrawal:          stopWithdrawal,
		createdAt:               createdAt,
		updatedAt:               updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) ListingID() uuid.UUID     { return b.listingID }
func (b *Booking) OwnerID() uuid.UUID       { return b.ownerID }
func (b *Booking) PayerID() uuid.UUID       { return b.payerID }
func (b *Booking) Pricing() PricingSnapshot { return b.pricing }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

func (b *Booking) PaymentUsedDate() *time.Time         { return b.paymentUsedDate }
func (b *Booking) PaymentTransferDate() *time.Time     { return b.paymentTransferDate }
func (b *Booking) WithdrawalDate() *time.Time          { return b.withdrawalDate }
func (b *Booking) CancellationDepositDate() *time.Time { return b.cancellationDepositDate }
func (b *Booking) CancellationPaymentDate() *time.Time { return b.cancellationPaymentDate }

func (b *Booking) StopRenewDeposit() bool    { return b.stopRenewDeposit }
func (b *Booking) StopTransferPayment() bool { return b.stopTransferPayment }
func (b *Booking) StopWithdrawal() bool      { return b.stopWithdrawal }

// NetOwnerIncome is the amount actually credited to the provider:
// payer price minus owner fees, rounded to one decimal.
func (b *Booking) NetOwnerIncome() decimal.Decimal {
	return money.RoundDecimal(b.pricing.PayerPrice.Sub(b.pricing.OwnerFees))
}

// TotalFees is the platform's cut on a transfer: owner fees plus taker fees.
func (b *Booking) TotalFees() decimal.Decimal {
	return b.pricing.OwnerFees.Add(b.pricing.TakerFees)
}

func (b *Booking) DepositTrack() DepositTrackState {
	switch {
	case b.cancellationDepositDate != nil:
		return DepositTrackCancelled
	case b.stopRenewDeposit:
		return DepositTrackBlocked
	default:
		return DepositTrackHeld
	}
}

func (b *Booking) PaymentTrack() PaymentTrackState {
	switch {
	case b.cancellationPaymentDate != nil:
		return PaymentTrackCancelled
	case b.withdrawalDate != nil:
		return PaymentTrackPaidOut
	case b.paymentTransferDate != nil:
		return PaymentTrackTransferred
	case b.paymentUsedDate != nil:
		return PaymentTrackCaptured
	default:
		return PaymentTrackAuthorized
	}
}

// MarkPaymentUsed records that funds were captured. Setting a marker
// twice is a caller bug, not a replay: replays must short-circuit on the
// marker before reaching here.
func (b *Booking) MarkPaymentUsed(at time.Time) error {
	if b.paymentUsedDate != nil {
		return ErrPaymentAlreadyCaptured
	}
	b.paymentUsedDate = &at
	b.updatedAt = at
	return nil
}

func (b *Booking) MarkPaymentTransferred(at time.Time) error {
	if b.paymentTransferDate != nil {
		return ErrPaymentAlreadyTransferred
	}
	if b.paymentUsedDate == nil {
		return ErrPaymentNotCaptured
	}
	b.paymentTransferDate = &at
	b.updatedAt = at
	return nil
}

func (b *Booking) MarkWithdrawn(at time.Time) error {
	if b.withdrawalDate != nil {
		return ErrAlreadyWithdrawn
	}
	if b.paymentTransferDate == nil {
		return ErrPaymentNotTransferred
	}
	b.withdrawalDate = &at
	b.updatedAt = at
	return nil
}

func (b *Booking) MarkDepositCancelled(at time.Time) error {
	if b.cancellationDepositDate != nil {
		return ErrDepositAlreadyCancelled
	}
	b.cancellationDepositDate = &at
	b.updatedAt = at
	return nil
}

func (b *Booking) MarkPaymentCancelled(at time.Time) error {
	if b.cancellationPaymentDate != nil {
		return ErrPaymentAlreadyCancelled
	}
	b.cancellationPaymentDate = &at
	b.updatedAt = at
	return nil
}

func (b *Booking) PoisonRenewDeposit()    { b.stopRenewDeposit = true }
func (b *Booking) PoisonTransferPayment() { b.stopTransferPayment = true }
func (b *Booking) PoisonWithdrawal()      { b.stopWithdrawal = true }

// Patch is a partial update for persisting marker and poison-flag
// transitions. Nil fields are left untouched by the repository.
type Patch struct {
	PaymentUsedDate         *time.Time
	PaymentTransferDate     *time.Time
	WithdrawalDate          *time.Time
	CancellationDepositDate *time.Time
	CancellationPaymentDate *time.Time
	StopRenewDeposit        *bool
	StopTransferPayment     *bool
	StopWithdrawal          *bool
}
