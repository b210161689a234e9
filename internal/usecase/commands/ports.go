package commands

import (
	"context"
	"encoding/json"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"

	"github.com/google/uuid"
)

// GatewayStatus is the outcome the external payment gateway reports for
// a single call. FAILED always surfaces as a typed error to the caller.
type GatewayStatus string

const (
	GatewayStatusCreated   GatewayStatus = "CREATED"
	GatewayStatusSucceeded GatewayStatus = "SUCCEEDED"
	GatewayStatusFailed    GatewayStatus = "FAILED"
)

// GatewayTransaction is the gateway's view of one executed call. Raw
// holds the untouched response body for diagnostics.
type GatewayTransaction struct {
	ResourceID    string
	Status        GatewayStatus
	CreatedDate   time.Time
	ExecutionDate time.Time
	Raw           json.RawMessage
}

func (g GatewayTransaction) Failed() bool {
	return g.Status == GatewayStatusFailed
}

// PreauthorizationDetails is the gateway-side state of a hold, fetched
// for follow-up calls.
type PreauthorizationDetails struct {
	ResourceID string
	AccountRef string
	CardRef    string
	Status     GatewayStatus
}

// PaymentGateway is the external payment provider. All amounts cross
// this boundary as integer minor units (cents).
type PaymentGateway interface {
	CreatePreauthorization(ctx context.Context, accountRef string, amountMinor int64, currency string) (GatewayTransaction, error)
	FetchPreauthorization(ctx context.Context, resourceID string) (PreauthorizationDetails, error)
	// CancelPreauthorization is idempotent on the gateway side; callers
	// may ignore its errors.
	CancelPreauthorization(ctx context.Context, resourceID string) (GatewayTransaction, error)
	CapturePayin(ctx context.Context, preauthID, payerAccountRef string, amountMinor, feesMinor int64, destinationWalletRef string) (GatewayTransaction, error)
	// RefundPayin refunds fully when amountMinor and feesMinor are nil.
	RefundPayin(ctx context.Context, payinID, payerAccountRef string, amountMinor, feesMinor *int64) (GatewayTransaction, error)
	CreateTransfer(ctx context.Context, payerWalletRef, receiverWalletRef string, amountMinor, feesMinor int64) (GatewayTransaction, error)
	RefundTransfer(ctx context.Context, transferID, payerAccountRef string) (GatewayTransaction, error)
	CreatePayout(ctx context.Context, payerAccountRef, sourceWalletRef, bankAccountRef string, amountMinor int64) (GatewayTransaction, error)
}

// Party is a marketplace user's onboarding state at the gateway: a
// payment account, a custodial wallet and, for providers expecting
// payouts, a linked bank account.
type Party struct {
	ID             uuid.UUID
	AccountRef     string
	WalletRef      string
	BankAccountRef string
}

func (p Party) HasAccount() bool { return p.AccountRef != "" }
func (p Party) HasWallet() bool  { return p.WalletRef != "" }

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Create(ctx context.Context, bk *booking.Booking) error
	// Update applies the non-nil patch fields and fails with a distinct
	// not-found kind when the booking row no longer exists.
	Update(ctx context.Context, id uuid.UUID, patch booking.Patch) (*booking.Booking, error)
}

type TransactionRepository interface {
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]ledger.Transaction, error)
	Append(ctx context.Context, tx ledger.Transaction) (ledger.Transaction, error)
}

type PartyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)
}
