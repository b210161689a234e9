//go:build unit

package commands_test

import (
	"context"
	"testing"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/commands"
	commandsmock "lendhub/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type workflowFixture struct {
	payments  *commandsmock.MockPaymentCommands
	bookings  *commandsmock.MockBookingRepository
	txs       *commandsmock.MockTransactionRepository
	parties   *commandsmock.MockPartyRepository
	workflows commands.PaymentWorkflows
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &workflowFixture{
		payments: commandsmock.NewMockPaymentCommands(ctrl),
		bookings: commandsmock.NewMockBookingRepository(ctrl),
		txs:      commandsmock.NewMockTransactionRepository(ctrl),
		parties:  commandsmock.NewMockPartyRepository(ctrl),
	}
	f.workflows = commands.NewPaymentWorkflows(f.payments, f.bookings, f.txs, f.parties)
	return f
}

// expectLoad wires the three reads every workflow starts with.
func (f *workflowFixture) expectLoad(bk *booking.Booking, payerParty, ownerParty commands.Party) {
	f.bookings.EXPECT().FindByID(ctx, bk.ID()).Return(bk, nil)
	f.txs.EXPECT().FindByBooking(ctx, bk.ID()).Return(nil, nil)
	f.parties.EXPECT().FindByID(ctx, bk.PayerID()).Return(&payerParty, nil)
	f.parties.EXPECT().FindByID(ctx, bk.OwnerID()).Return(&ownerParty, nil)
}

func TestAcceptBookingPayment_RunsPayinThenTransfer(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	p, o := payer(), owner()
	f.expectLoad(bk, p, o)

	gomock.InOrder(
		f.payments.EXPECT().
			PayinPayment(ctx, bk, gomock.Any(), p, nil).
			Return(bk, nil),
		f.payments.EXPECT().
			TransferPayment(ctx, bk, gomock.Any(), p, o, nil).
			Return(bk, nil),
	)

	got, err := f.workflows.AcceptBookingPayment(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, bk, got)
}

func TestAcceptBookingPayment_StopsWhenPayinFails(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	p, o := payer(), owner()
	f.expectLoad(bk, p, o)

	f.payments.EXPECT().
		PayinPayment(ctx, bk, gomock.Any(), p, nil).
		Return(nil, commands.ErrPayinFailed)

	_, err := f.workflows.AcceptBookingPayment(ctx, bk.ID())
	assert.ErrorIs(t, err, commands.ErrPayinFailed)
}

func TestCancelBookingPayment_ReleasesPaymentThenDeposit(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	f.expectLoad(bk, payer(), owner())

	gomock.InOrder(
		f.payments.EXPECT().
			CancelPreauthPayment(ctx, bk, gomock.Any()).
			Return(bk, nil),
		f.payments.EXPECT().
			CancelDeposit(ctx, bk, gomock.Any()).
			Return(bk, nil),
	)

	got, err := f.workflows.CancelBookingPayment(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, bk, got)
}

func TestCancelBookingDeposit_ReleasesDepositOnly(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	f.expectLoad(bk, payer(), owner())

	f.payments.EXPECT().
		CancelDeposit(ctx, bk, gomock.Any()).
		Return(bk, nil)

	got, err := f.workflows.CancelBookingDeposit(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, bk, got)
}

func TestSettleBookingPayment_RunsPayoutThenDepositRelease(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	p, o := payer(), owner()
	f.expectLoad(bk, p, o)

	gomock.InOrder(
		f.payments.EXPECT().
			PayoutPayment(ctx, bk, gomock.Any(), o, nil).
			Return(bk, nil),
		f.payments.EXPECT().
			CancelDeposit(ctx, bk, gomock.Any()).
			Return(bk, nil),
	)

	got, err := f.workflows.SettleBookingPayment(ctx, bk.ID())
	require.NoError(t, err)
	assert.Equal(t, bk, got)
}

func TestRenewBookingDeposit_DelegatesWithPayer(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	p, o := payer(), owner()
	f.expectLoad(bk, p, o)

	f.payments.EXPECT().
		RenewDeposit(ctx, bk, gomock.Any(), p).
		Return(&commands.RenewDepositResult{Booking: bk, Renewed: true, PreviousCancel: commands.BestEffortApplied}, nil)

	result, err := f.workflows.RenewBookingDeposit(ctx, bk.ID())
	require.NoError(t, err)
	assert.True(t, result.Renewed)
}

func TestWorkflows_BookingNotFound(t *testing.T) {
	f := newWorkflowFixture(t)
	id := uuid.New()

	f.bookings.EXPECT().
		FindByID(ctx, id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	_, err := f.workflows.AcceptBookingPayment(ctx, id)
	assert.ErrorIs(t, err, commands.ErrBookingNotFound)
}

func TestWorkflows_PartyNotFound(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)

	f.bookings.EXPECT().FindByID(ctx, bk.ID()).Return(bk, nil)
	f.txs.EXPECT().FindByBooking(ctx, bk.ID()).Return(nil, nil)
	f.parties.EXPECT().
		FindByID(ctx, bk.PayerID()).
		Return(nil, infra.WrapRepoErr("party not found", nil, infra.KindNotFound))

	_, err := f.workflows.SettleBookingPayment(ctx, bk.ID())
	assert.ErrorIs(t, err, commands.ErrPartyNotFound)
}

func TestWorkflows_PartyLoadDBFailureIsNotNotFound(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)

	f.bookings.EXPECT().FindByID(ctx, bk.ID()).Return(bk, nil)
	f.txs.EXPECT().FindByBooking(ctx, bk.ID()).Return(nil, nil)
	f.parties.EXPECT().
		FindByID(ctx, bk.PayerID()).
		Return(nil, infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure))

	_, err := f.workflows.SettleBookingPayment(ctx, bk.ID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrPartyNotFound)
}

func TestWorkflows_RebuildLedgerFromPersistedRecords(t *testing.T) {
	f := newWorkflowFixture(t)
	bk := newTestBooking(t)
	p, o := payer(), owner()
	records := []ledger.Transaction{preauthRecord(ledger.LabelPayment, "preauth_1", 120)}

	f.bookings.EXPECT().FindByID(ctx, bk.ID()).Return(bk, nil)
	f.txs.EXPECT().FindByBooking(ctx, bk.ID()).Return(records, nil)
	f.parties.EXPECT().FindByID(ctx, bk.PayerID()).Return(&p, nil)
	f.parties.EXPECT().FindByID(ctx, bk.OwnerID()).Return(&o, nil)

	f.payments.EXPECT().
		PayinPayment(ctx, bk, gomock.Any(), p, nil).
		DoAndReturn(func(_ context.Context, bk *booking.Booking, led *ledger.Ledger, _ commands.Party, _ *decimal.Decimal) (*booking.Booking, error) {
			require.NotNil(t, led.CurrentPreauthorization())
			return bk, nil
		})
	f.payments.EXPECT().
		TransferPayment(ctx, bk, gomock.Any(), p, o, nil).
		Return(bk, nil)

	_, err := f.workflows.AcceptBookingPayment(ctx, bk.ID())
	require.NoError(t, err)
}
