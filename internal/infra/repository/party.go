package repository

import (
	"context"
	"errors"

	"lendhub/internal/infra"
	"lendhub/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PartyRepository struct {
	db *pgxpool.Pool
}

func NewPartyRepository(db *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{db: db}
}

// FindByID loads a user's gateway onboarding refs. Empty refs mean the
// user never finished onboarding; the orchestrator turns that into a
// precondition error, not the repository.
func (r *PartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.Party, error) {
	var p commands.Party
	err := r.db.QueryRow(ctx, `
		SELECT id, COALESCE(account_ref, ''), COALESCE(wallet_ref, ''), COALESCE(bank_account_ref, '')
		FROM parties
		WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.AccountRef, &p.WalletRef, &p.BankAccountRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("party not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find party", err)
	}
	return &p, nil
}
