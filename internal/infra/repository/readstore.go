package repository

import (
	"context"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingReadStore serves the query side with the same rows the write
// side uses; the payment core has no separate projection.
type BookingReadStore struct {
	bookings     *BookingRepository
	transactions *TransactionRepository
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{
		bookings:     NewBookingRepository(db),
		transactions: NewTransactionRepository(db),
	}
}

func (s *BookingReadStore) FindBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.bookings.FindByID(ctx, id)
}

func (s *BookingReadStore) FindTransactions(ctx context.Context, bookingID uuid.UUID) ([]ledger.Transaction, error) {
	return s.transactions.FindByBooking(ctx, bookingID)
}
