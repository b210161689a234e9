//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"lendhub/internal/domain/booking"
	"lendhub/internal/domain/ledger"
	"lendhub/internal/infra"
	"lendhub/internal/usecase/queries"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

var (
	now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx = context.Background()
)

func newQueries(t *testing.T) (queries.BookingQueries, *queriesmock.MockBookingReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	return queries.NewBookingQueries(store), store
}

func testBooking(t *testing.T) *booking.Booking {
	t.Helper()
	used := now.Add(time.Hour)
	return booking.ReconstructBooking(
		uuid.New(), uuid.New(), uuid.New(), uuid.New(),
		booking.PricingSnapshot{
			PayerPrice: decimal.NewFromInt(120),
			OwnerPrice: decimal.NewFromInt(102),
			Deposit:    decimal.NewFromInt(200),
			OwnerFees:  decimal.NewFromInt(6),
			TakerFees:  decimal.NewFromInt(18),
		},
		&used, nil, nil,
		nil, nil,
		false, false, false,
		now, used,
	)
}

func TestGetPaymentState_AssemblesView(t *testing.T) {
	q, store := newQueries(t)
	bk := testBooking(t)

	payin := ledger.Transaction{
		ID: uuid.New(), BookingID: bk.ID(),
		Action: ledger.ActionPayin, Label: ledger.LabelPayment,
		ResourceID: "pi_1", Amount: decimal.NewFromInt(120),
		CreatedDate: now,
	}
	refund := ledger.Transaction{
		ID: uuid.New(), BookingID: bk.ID(),
		Action: ledger.ActionRefund, Label: ledger.LabelPayment,
		ResourceID: "pi_1", Amount: decimal.NewFromInt(120),
		CreatedDate: now.Add(time.Hour), ExecutionDate: now.Add(2 * time.Hour),
	}

	store.EXPECT().FindBooking(ctx, bk.ID()).Return(bk, nil)
	store.EXPECT().FindTransactions(ctx, bk.ID()).Return([]ledger.Transaction{payin, refund}, nil)

	view, err := q.GetPaymentState(ctx, bk.ID())
	require.NoError(t, err)

	assert.Equal(t, bk.ID(), view.ID)
	assert.True(t, view.PayerPrice.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, string(booking.PaymentTrackCaptured), view.PaymentTrack)
	assert.Equal(t, string(booking.DepositTrackHeld), view.DepositTrack)
	require.NotNil(t, view.PaymentUsedDate)

	executed := refund.ExecutionDate
	expected := []queries.TransactionView{
		{
			ID: payin.ID, Action: "payin", Label: "payment",
			ResourceID: "pi_1", Amount: payin.Amount,
			Cancelled: true, CreatedDate: payin.CreatedDate,
		},
		{
			ID: refund.ID, Action: "refund", Label: "payment",
			ResourceID: "pi_1", Amount: refund.Amount,
			Cancelled: false, CreatedDate: refund.CreatedDate, ExecutionDate: &executed,
		},
	}
	if diff := cmp.Diff(expected, view.Transactions, cmpOpts...); diff != "" {
		t.Errorf("Transactions mismatch (-want +got):\n%s", diff)
	}
}

func TestListTransactions_DerivesCancellation(t *testing.T) {
	q, store := newQueries(t)
	bk := testBooking(t)

	hold := ledger.Transaction{
		ID: uuid.New(), BookingID: bk.ID(),
		Action: ledger.ActionPreauthorization, Label: ledger.LabelDeposit,
		ResourceID: "pa_dep", Amount: decimal.NewFromInt(49),
		CreatedDate: now,
	}
	cancel := ledger.Transaction{
		ID: uuid.New(), BookingID: bk.ID(),
		Action: ledger.ActionCancel, Label: ledger.LabelDeposit,
		ResourceID: "pa_dep", Amount: decimal.NewFromInt(49),
		CreatedDate: now.Add(time.Hour),
	}

	store.EXPECT().FindBooking(ctx, bk.ID()).Return(bk, nil)
	store.EXPECT().FindTransactions(ctx, bk.ID()).Return([]ledger.Transaction{hold, cancel}, nil)

	views, err := q.ListTransactions(ctx, bk.ID())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, views[0].Cancelled)
	assert.False(t, views[1].Cancelled)
}

func TestGetPaymentState_NotFound(t *testing.T) {
	q, store := newQueries(t)
	id := uuid.New()

	store.EXPECT().
		FindBooking(ctx, id).
		Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

	_, err := q.GetPaymentState(ctx, id)
	assert.ErrorIs(t, err, queries.ErrBookingNotFound)
}
