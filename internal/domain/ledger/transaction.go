package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Action is the gateway-side kind of a transaction record.
type Action string

const (
	ActionPreauthorization Action = "preauthorization"
	ActionPayin            Action = "payin"
	ActionTransfer         Action = "transfer"
	ActionPayout           Action = "payout"
	// Cancel and refund records never stand alone: they pair with an
	// earlier record through the shared resource id.
	ActionCancel Action = "cancel"
	ActionRefund Action = "refund"
)

// Label qualifies the intent of a record within an action.
type Label string

const (
	LabelDeposit      Label = "deposit"
	LabelDepositRenew Label = "deposit renew"
	LabelPayment      Label = "payment"
)

// Transaction is an append-only record of one gateway operation.
// Records are immutable once created; "cancelled" is represented by a
// paired cancel/refund record, never by mutation.
type Transaction struct {
	ID            uuid.UUID
	BookingID     uuid.UUID
	Action        Action
	Label         Label
	ResourceID    string
	Amount        decimal.Decimal
	Fees          decimal.Decimal
	CreatedDate   time.Time
	ExecutionDate time.Time
	// Cancelled is an explicit marker mirrored from the gateway, kept
	// alongside the derived paired-record detection.
	Cancelled bool
}

func (t Transaction) IsReversal() bool {
	return t.Action == ActionCancel || t.Action == ActionRefund
}

func (t Transaction) isDepositHold() bool {
	return t.Action == ActionPreauthorization &&
		(t.Label == LabelDeposit || t.Label == LabelDepositRenew)
}
