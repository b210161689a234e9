package request

import (
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest carries the pricing inputs of a new booking.
// Fees may be given as percentages or fixed amounts, never both.
type CreateBookingRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	OwnerID   uuid.UUID `json:"owner_id" binding:"required"`
	PayerID   uuid.UUID `json:"payer_id" binding:"required"`

	// A pointer so binding:"required" rejects an absent owner_price;
	// on a value field the validator treats 0 as present.
	OwnerPrice *decimal.Decimal `json:"owner_price" binding:"required"`
	Deposit    decimal.Decimal  `json:"deposit"`
	Rebate     decimal.Decimal  `json:"rebate"`

	OwnerFeesPercent *decimal.Decimal `json:"owner_fees_percent,omitempty"`
	TakerFeesPercent *decimal.Decimal `json:"taker_fees_percent,omitempty"`
	OwnerFees        *decimal.Decimal `json:"owner_fees,omitempty"`
	TakerFees        *decimal.Decimal `json:"taker_fees,omitempty"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ListingID:        r.ListingID,
		OwnerID:          r.OwnerID,
		PayerID:          r.PayerID,
		OwnerPrice:       *r.OwnerPrice,
		Deposit:          r.Deposit,
		Rebate:           r.Rebate,
		OwnerFeesPercent: r.OwnerFeesPercent,
		TakerFeesPercent: r.TakerFeesPercent,
		OwnerFees:        r.OwnerFees,
		TakerFees:        r.TakerFees,
	}
}

// PayinOverrideRequest optionally replaces the snapshot amount for a
// capture or refund. A zero amount skips the gateway call.
type PayinOverrideRequest struct {
	Amount *decimal.Decimal `json:"amount,omitempty"`
}
