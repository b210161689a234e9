package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const bookingColumns = `
	id, listing_id, owner_id, payer_id,
	payer_price, owner_price, deposit, owner_fees, taker_fees,
	payment_used_date, payment_transfer_date, withdrawal_date,
	cancellation_deposit_date, cancellation_payment_date,
	stop_renew_deposit, stop_transfer_payment, stop_withdrawal,
	created_at, updated_at`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT`+bookingColumns+` FROM bookings WHERE id = $1`, id)
	bk, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return bk, nil
}

func (r *BookingRepository) Create(ctx context.Context, bk *booking.Booking) error {
	pricing := bk.Pricing()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, listing_id, owner_id, payer_id,
			payer_price, owner_price, deposit, owner_fees, taker_fees,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		bk.ID(), bk.ListingID(), bk.OwnerID(), bk.PayerID(),
		pricing.PayerPrice, pricing.OwnerPrice, pricing.Deposit, pricing.OwnerFees, pricing.TakerFees,
		bk.CreatedAt(), bk.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Update applies the non-nil patch fields. A vanished row surfaces as
// KindNotFound so callers can distinguish the race from a DB failure.
func (r *BookingRepository) Update(ctx context.Context, id uuid.UUID, patch booking.Patch) (*booking.Booking, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	appendSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.PaymentUsedDate != nil {
		appendSet("payment_used_date", *patch.PaymentUsedDate)
	}
	if patch.PaymentTransferDate != nil {
		appendSet("payment_transfer_date", *patch.PaymentTransferDate)
	}
	if patch.WithdrawalDate != nil {
		appendSet("withdrawal_date", *patch.WithdrawalDate)
	}
	if patch.CancellationDepositDate != nil {
		appendSet("cancellation_deposit_date", *patch.CancellationDepositDate)
	}
	if patch.CancellationPaymentDate != nil {
		appendSet("cancellation_payment_date", *patch.CancellationPaymentDate)
	}
	if patch.StopRenewDeposit != nil {
		appendSet("stop_renew_deposit", *patch.StopRenewDeposit)
	}
	if patch.StopTransferPayment != nil {
		appendSet("stop_transfer_payment", *patch.StopTransferPayment)
	}
	if patch.StopWithdrawal != nil {
		appendSet("stop_withdrawal", *patch.StopWithdrawal)
	}

	query := `UPDATE bookings SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING` + bookingColumns

	row := r.db.QueryRow(ctx, query, args...)
	bk, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking no longer exists", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	return bk, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, listingID, ownerID, payerID uuid.UUID

		payerPrice, ownerPrice, deposit, ownerFees, takerFees decimal.Decimal

		paymentUsedDate, paymentTransferDate, withdrawalDate  *time.Time
		cancellationDepositDate, cancellationPaymentDate      *time.Time
		stopRenewDeposit, stopTransferPayment, stopWithdrawal bool

		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&id, &listingID, &ownerID, &payerID,
		&payerPrice, &ownerPrice, &deposit, &ownerFees, &takerFees,
		&paymentUsedDate, &paymentTransferDate, &withdrawalDate,
		&cancellationDepositDate, &cancellationPaymentDate,
		&stopRenewDeposit, &stopTransferPayment, &stopWithdrawal,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, listingID, ownerID, payerID,
		booking.PricingSnapshot{
			PayerPrice: payerPrice,
			OwnerPrice: ownerPrice,
			Deposit:    deposit,
			OwnerFees:  ownerFees,
			TakerFees:  takerFees,
		},
		paymentUsedDate, paymentTransferDate, withdrawalDate,
		cancellationDepositDate, cancellationPaymentDate,
		stopRenewDeposit, stopTransferPayment, stopWithdrawal,
		createdAt, updatedAt,
	), nil
}
