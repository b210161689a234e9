//go:build unit || e2e

package builder

import (
	"time"

	dombooking "lendhub/internal/domain/booking"
	reqdto "lendhub/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ListingID  uuid.UUID
	OwnerID    uuid.UUID
	PayerID    uuid.UUID
	PayerPrice decimal.Decimal
	OwnerPrice decimal.Decimal
	Deposit    decimal.Decimal
	OwnerFees  decimal.Decimal
	TakerFees  decimal.Decimal
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ListingID:  uuid.New(),
		OwnerID:    uuid.New(),
		PayerID:    uuid.New(),
		PayerPrice: decimal.NewFromInt(120),
		OwnerPrice: decimal.NewFromInt(102),
		Deposit:    decimal.NewFromInt(200),
		OwnerFees:  decimal.NewFromInt(6),
		TakerFees:  decimal.NewFromInt(18),
		CreatedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	return dombooking.NewBooking(b.ListingID, b.OwnerID, b.PayerID, dombooking.PricingSnapshot{
		PayerPrice: b.PayerPrice,
		OwnerPrice: b.OwnerPrice,
		Deposit:    b.Deposit,
		OwnerFees:  b.OwnerFees,
		TakerFees:  b.TakerFees,
	}, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	ownerPrice := b.OwnerPrice
	ownerFees := b.OwnerFees
	takerFees := b.TakerFees
	return reqdto.CreateBookingRequest{
		ListingID:  b.ListingID,
		OwnerID:    b.OwnerID,
		PayerID:    b.PayerID,
		OwnerPrice: &ownerPrice,
		Deposit:    b.Deposit,
		OwnerFees:  &ownerFees,
		TakerFees:  &takerFees,
	}
}
