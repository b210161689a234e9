//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lendhub/internal/domain/pricing"
	"lendhub/internal/handler/api"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/builder"
	"lendhub/tests/common/httptest"
	"lendhub/tests/common/testutil"
	commandsmock "lendhub/tests/mock/commands"
	queriesmock "lendhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.GetPaymentState)
	s.router.GET("/bookings/:id/ledger", s.handler.GetLedger)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	bk, err := b.BuildDomain()
	s.Require().NoError(err)
	expectedResult := &commands.CreateBookingResult{
		Booking: bk,
		Quote: pricing.Quote{
			PriceAfterRebate: decimal.NewFromInt(102),
			NetOwnerIncome:   decimal.NewFromInt(96),
			PayerPrice:       decimal.NewFromInt(120),
			OwnerFees:        decimal.NewFromInt(6),
			TakerFees:        decimal.NewFromInt(18),
		},
	}

	s.Run("success: returns 201 Created with booking and quote", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(bk.ID().String(), body.Booking.ID.String())
		s.True(body.Quote.PayerPrice.Equal(decimal.NewFromInt(120)))
		s.True(body.Quote.NetOwnerIncome.Equal(decimal.NewFromInt(96)))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: listing_id", mutate: testutil.Field("listing_id", nil)},
			{name: "missing field: owner_id", mutate: testutil.Field("owner_id", nil)},
			{name: "missing field: payer_id", mutate: testutil.Field("payer_id", nil)},
			{name: "missing field: owner_price", mutate: testutil.Field("owner_price", nil)},
		}
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request when pricing is rejected", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidPricing).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Create booking failed")
	})
}

// ================================================================================
// TestGetPaymentState
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetPaymentState() {
	bookingID := uuid.New()

	s.Run("success: returns 200 OK with payment view", func() {
		view := &queries.BookingPaymentView{
			ID:           bookingID,
			PayerPrice:   decimal.NewFromInt(120),
			PaymentTrack: "captured",
			DepositTrack: "held",
		}
		s.mockQueries.EXPECT().GetPaymentState(gomock.Any(), bookingID).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil)

		var body queries.BookingPaymentView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.ID)
		s.Equal("captured", body.PaymentTrack)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetPaymentState(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestGetLedger
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetLedger() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/ledger"

	s.Run("success: returns 200 OK with transactions", func() {
		views := []queries.TransactionView{
			{ID: uuid.New(), Action: "payin", Label: "payment", ResourceID: "pi_1"},
		}
		s.mockQueries.EXPECT().ListTransactions(gomock.Any(), bookingID).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body struct {
			Transactions []queries.TransactionView `json:"transactions"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Transactions, 1)
		s.Equal("pi_1", body.Transactions[0].ResourceID)
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().ListTransactions(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
