package repository

import (
	"context"
	"time"

	"lendhub/internal/domain/ledger"
	"lendhub/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// FindByBooking returns the booking's records oldest first, the order
// the ledger aggregate expects.
func (r *TransactionRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]ledger.Transaction, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, booking_id, action, label, resource_id, amount, fees, cancelled, created_date, execution_date
		FROM transactions
		WHERE booking_id = $1
		ORDER BY created_date ASC, id ASC`,
		bookingID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query transactions", err)
	}
	defer rows.Close()

	var records []ledger.Transaction
	for rows.Next() {
		var (
			tx        ledger.Transaction
			action    string
			label     string
			amount    decimal.Decimal
			fees      decimal.Decimal
			execution *time.Time
		)
		if err := rows.Scan(&tx.ID, &tx.BookingID, &action, &label, &tx.ResourceID, &amount, &fees, &tx.Cancelled, &tx.CreatedDate, &execution); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction", err)
		}
		tx.Action = ledger.Action(action)
		tx.Label = ledger.Label(label)
		tx.Amount = amount
		tx.Fees = fees
		if execution != nil {
			tx.ExecutionDate = *execution
		}
		records = append(records, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transactions", err)
	}
	return records, nil
}

// Append inserts one immutable record. Records are never updated or
// deleted; reversals are separate records.
func (r *TransactionRepository) Append(ctx context.Context, tx ledger.Transaction) (ledger.Transaction, error) {
	var execution *time.Time
	if !tx.ExecutionDate.IsZero() {
		execution = &tx.ExecutionDate
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO transactions (id, booking_id, action, label, resource_id, amount, fees, cancelled, created_date, execution_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		tx.ID, tx.BookingID, string(tx.Action), string(tx.Label), tx.ResourceID,
		tx.Amount, tx.Fees, tx.Cancelled, tx.CreatedDate, execution,
	)
	if err != nil {
		return ledger.Transaction{}, infra.WrapRepoErr("failed to append transaction", err)
	}
	return tx, nil
}
