package commands

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/pricing"
	"lendhub/internal/pkg/clock"
	"lendhub/internal/pkg/config"
	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPricing = errs.New("invalid pricing parameters")

// CreateBookingRequest carries the pricing inputs for a new booking.
// Fee percentages and fixed fee amounts are mutually exclusive.
type CreateBookingRequest struct {
	ListingID uuid.UUID
	OwnerID   uuid.UUID
	PayerID   uuid.UUID

	OwnerPrice decimal.Decimal
	Deposit    decimal.Decimal
	Rebate     decimal.Decimal

	OwnerFeesPercent *decimal.Decimal
	TakerFeesPercent *decimal.Decimal
	OwnerFees        *decimal.Decimal
	TakerFees        *decimal.Decimal
}

type CreateBookingResult struct {
	Booking *booking.Booking
	Quote   pricing.Quote
}

// BookingCommands freezes the fee split into the booking's pricing
// snapshot at acceptance time. The snapshot is never recomputed later:
// the orchestrator reads amounts from it, not from live fee config.
type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	policy      pricing.Policy
	clock       clock.Clock
}

func NewBookingCommands(bookingRepo BookingRepository, paymentCfg config.PaymentConfig, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		policy: pricing.Policy{
			OwnerFeesThreshold: decimal.NewFromInt(paymentCfg.OwnerFeesThreshold),
			MaxDiscountPercent: decimal.NewFromInt(paymentCfg.MaxDiscountPercent),
		},
		clock: clk,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	quote, err := pricing.Compute(pricing.Params{
		OwnerPrice:       req.OwnerPrice,
		Rebate:           req.Rebate,
		OwnerFeesPercent: req.OwnerFeesPercent,
		TakerFeesPercent: req.TakerFeesPercent,
		OwnerFees:        req.OwnerFees,
		TakerFees:        req.TakerFees,
	}, u.policy)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPricing)
	}

	bk, err := booking.NewBooking(req.ListingID, req.OwnerID, req.PayerID, booking.PricingSnapshot{
		PayerPrice: quote.PayerPrice,
		OwnerPrice: req.OwnerPrice,
		Deposit:    req.Deposit,
		OwnerFees:  quote.OwnerFees,
		TakerFees:  quote.TakerFees,
	}, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPricing)
	}

	if err := u.bookingRepo.Create(ctx, bk); err != nil {
		return nil, errs.Wrap(err, "failed to persist booking")
	}

	return &CreateBookingResult{Booking: bk, Quote: quote}, nil
}
