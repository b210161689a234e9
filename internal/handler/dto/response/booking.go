package response

import (
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID                      uuid.UUID       `json:"id"`
	ListingID               uuid.UUID       `json:"listing_id"`
	OwnerID                 uuid.UUID       `json:"owner_id"`
	PayerID                 uuid.UUID       `json:"payer_id"`
	PayerPrice              decimal.Decimal `json:"payer_price"`
	OwnerPrice              decimal.Decimal `json:"owner_price"`
	Deposit                 decimal.Decimal `json:"deposit"`
	OwnerFees               decimal.Decimal `json:"owner_fees"`
	TakerFees               decimal.Decimal `json:"taker_fees"`
	DepositTrack            string          `json:"deposit_track"`
	PaymentTrack            string          `json:"payment_track"`
	PaymentUsedDate         *time.Time      `json:"payment_used_date,omitempty"`
	PaymentTransferDate     *time.Time      `json:"payment_transfer_date,omitempty"`
	WithdrawalDate          *time.Time      `json:"withdrawal_date,omitempty"`
	CancellationDepositDate *time.Time      `json:"cancellation_deposit_date,omitempty"`
	CancellationPaymentDate *time.Time      `json:"cancellation_payment_date,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func FromBooking(bk *booking.Booking) *BookingResponse {
	pricing := bk.Pricing()
	return &BookingResponse{
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
		CreatedAt:               bk.CreatedAt(),
		UpdatedAt:               bk.UpdatedAt(),
	}
}

type QuoteResponse struct {
	PriceAfterRebate decimal.Decimal `json:"price_after_rebate"`
	NetOwnerIncome   decimal.Decimal `json:"net_owner_income"`
	PayerPrice       decimal.Decimal `json:"payer_price"`
	OwnerFees        decimal.Decimal `json:"owner_fees"`
	TakerFees        decimal.Decimal `json:"taker_fees"`
	OwnerFeesPercent decimal.Decimal `json:"owner_fees_percent"`
	TakerFeesPercent decimal.Decimal `json:"taker_fees_percent"`
	RealizedDiscount decimal.Decimal `json:"realized_discount"`
}

type CreateBookingResponse struct {
	Booking *BookingResponse `json:"booking"`
	Quote   QuoteResponse    `json:"quote"`
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: FromBooking(result.Booking),
		Quote: QuoteResponse{
			PriceAfterRebate: result.Quote.PriceAfterRebate,
			NetOwnerIncome:   result.Quote.NetOwnerIncome,
			PayerPrice:       result.Quote.PayerPrice,
			OwnerFees:        result.Quote.OwnerFees,
			TakerFees:        result.Quote.TakerFees,
			OwnerFeesPercent: result.Quote.OwnerFeesPercent,
			TakerFeesPercent: result.Quote.TakerFeesPercent,
			RealizedDiscount: result.Quote.RealizedDiscount,
		},
	}
}

type RenewDepositResponse struct {
	Booking        *BookingResponse `json:"booking"`
	Renewed        bool             `json:"renewed"`
	PreviousCancel string           `json:"previous_cancel"`
}

func FromRenewDepositResult(result *commands.RenewDepositResult) *RenewDepositResponse {
	return &RenewDepositResponse{
		Booking:        FromBooking(result.Booking),
		Renewed:        result.Renewed,
		PreviousCancel: string(result.PreviousCancel),
	}
}

type PaymentStateResponse struct {
	*queries.BookingPaymentView
}

func FromPaymentView(view *queries.BookingPaymentView) *PaymentStateResponse {
	return &PaymentStateResponse{BookingPaymentView: view}
}
