package api

import (
	"context"
	"errors"
	"net/http"

	"lendhub/internal/domain/booking"
	resdto "lendhub/internal/handler/dto/response"
	"lendhub/internal/handler/httperr"
	"lendhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler exposes the booking lifecycle transitions. Every
// endpoint is safe to retry: completed steps short-circuit on their
// persisted markers instead of hitting the gateway twice.
type PaymentHandler struct {
	workflows commands.PaymentWorkflows
}

func NewPaymentHandler(workflows commands.PaymentWorkflows) *PaymentHandler {
	return &PaymentHandler{workflows: workflows}
}

func (h *PaymentHandler) Accept(c *gin.Context) {
	h.run(c, h.workflows.AcceptBookingPayment)
}

func (h *PaymentHandler) Cancel(c *gin.Context) {
	h.run(c, h.workflows.CancelBookingPayment)
}

func (h *PaymentHandler) Settle(c *gin.Context) {
	h.run(c, h.workflows.SettleBookingPayment)
}

func (h *PaymentHandler) CancelDeposit(c *gin.Context) {
	h.run(c, h.workflows.CancelBookingDeposit)
}

func (h *PaymentHandler) RenewDeposit(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	result, err := h.workflows.RenewBookingDeposit(c.Request.Context(), id)
	if err != nil {
		abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRenewDepositResult(result))
}

func (h *PaymentHandler) run(c *gin.Context, op func(context.Context, uuid.UUID) (*booking.Booking, error)) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	bk, err := op(c.Request.Context(), id)
	if err != nil {
		abortPaymentError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(bk))
}

func bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// abortPaymentError maps orchestrator failures onto HTTP statuses:
// missing entities to 404, broken preconditions to 422, gateway
// rejections to 502, everything else to 500.
func abortPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound),
		errors.Is(err, commands.ErrPartyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, commands.ErrPartyNotOnboarded),
		errors.Is(err, commands.ErrMissingDeposit),
		errors.Is(err, commands.ErrMissingBankAccount),
		errors.Is(err, commands.ErrMissingTransaction):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment precondition failed", paymentErrorDetail(err))
	case errors.Is(err, commands.ErrPreauthorizationFailed),
		errors.Is(err, commands.ErrPayinFailed),
		errors.Is(err, commands.ErrTransferFailed),
		errors.Is(err, commands.ErrPayoutFailed),
		errors.Is(err, commands.ErrRefundFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway rejected the operation", paymentErrorDetail(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment operation failed", nil)
	}
}

func paymentErrorDetail(err error) any {
	var gatewayErr *commands.GatewayError
	if errors.As(err, &gatewayErr) {
		return gin.H{"operation": gatewayErr.Operation}
	}
	var notOnboarded *commands.PartyNotOnboardedError
	if errors.As(err, &notOnboarded) {
		return gin.H{"party_ids": notOnboarded.PartyIDs}
	}
	var missingTx *commands.MissingTransactionError
	if errors.As(err, &missingTx) {
		return gin.H{"wanted": missingTx.Wanted}
	}
	return nil
}
