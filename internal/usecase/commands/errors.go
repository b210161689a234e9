package commands

import (
	"encoding/json"
	"fmt"

	"lendhub/internal/pkg/errs"

	"github.com/google/uuid"
)

// Precondition errors: raised before any gateway call, never retried
// automatically by the orchestrator itself.
var (
	ErrPartyNotOnboarded  = errs.New("party not onboarded at gateway")
	ErrMissingDeposit     = errs.New("booking has no deposit")
	ErrMissingBankAccount = errs.New("provider has no linked bank account")
	ErrMissingTransaction = errs.New("required transaction missing from ledger")
)

// Gateway failure errors: the gateway reported a FAILED status. Safe to
// retry the whole chain later thanks to marker idempotency.
var (
	ErrPreauthorizationFailed = errs.New("preauthorization failed")
	ErrPayinFailed            = errs.New("payin failed")
	ErrTransferFailed         = errs.New("transfer failed")
	ErrPayoutFailed           = errs.New("payout failed")
	ErrRefundFailed           = errs.New("refund failed")
)

var ErrBookingUpdateFailed = errs.New("booking update failed")

// PartyNotOnboardedError names the parties that block the operation.
type PartyNotOnboardedError struct {
	BookingID uuid.UUID
	PartyIDs  []uuid.UUID
}

func (e *PartyNotOnboardedError) Error() string {
	return fmt.Sprintf("booking %s: parties %v not onboarded at gateway", e.BookingID, e.PartyIDs)
}

func newPartyNotOnboarded(bookingID uuid.UUID, partyIDs ...uuid.UUID) error {
	return errs.Mark(&PartyNotOnboardedError{BookingID: bookingID, PartyIDs: partyIDs}, ErrPartyNotOnboarded)
}

// MissingDepositError is raised when a deposit operation runs against a
// booking whose snapshot holds no deposit.
type MissingDepositError struct {
	BookingID uuid.UUID
}

func (e *MissingDepositError) Error() string {
	return fmt.Sprintf("booking %s: pricing snapshot has no deposit", e.BookingID)
}

func newMissingDeposit(bookingID uuid.UUID) error {
	return errs.Mark(&MissingDepositError{BookingID: bookingID}, ErrMissingDeposit)
}

// MissingBankAccountError is raised when a payout targets a provider
// without a linked bank account.
type MissingBankAccountError struct {
	BookingID uuid.UUID
	PartyID   uuid.UUID
}

func (e *MissingBankAccountError) Error() string {
	return fmt.Sprintf("booking %s: party %s has no linked bank account", e.BookingID, e.PartyID)
}

func newMissingBankAccount(bookingID, partyID uuid.UUID) error {
	return errs.Mark(&MissingBankAccountError{BookingID: bookingID, PartyID: partyID}, ErrMissingBankAccount)
}

// MissingTransactionError identifies the ledger record an operation
// required but could not find.
type MissingTransactionError struct {
	BookingID uuid.UUID
	Wanted    string
}

func (e *MissingTransactionError) Error() string {
	return fmt.Sprintf("booking %s: no %s in ledger", e.BookingID, e.Wanted)
}

func newMissingTransaction(bookingID uuid.UUID, wanted string) error {
	return errs.Mark(&MissingTransactionError{BookingID: bookingID, Wanted: wanted}, ErrMissingTransaction)
}

// GatewayError carries the raw gateway response of a FAILED call so the
// caller can decide between poisoning the step and retrying later.
type GatewayError struct {
	BookingID uuid.UUID
	Operation string
	Raw       json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("booking %s: gateway %s reported failure", e.BookingID, e.Operation)
}

func newGatewayError(mark error, bookingID uuid.UUID, operation string, raw json.RawMessage) error {
	return errs.Mark(&GatewayError{BookingID: bookingID, Operation: operation, Raw: raw}, mark)
}
