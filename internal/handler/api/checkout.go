package api

import (
	"context"
	"log/slog"
	"net/http"

	"travel-checkout/internal/domain/booking"
	reqdto "travel-checkout/internal/handler/dto/request"
	resdto "travel-checkout/internal/handler/dto/response"
	"travel-checkout/internal/handler/httperr"
	"travel-checkout/internal/handler/middleware"
	"travel-checkout/internal/handler/validation"
	"travel-checkout/internal/infra/guard"
	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/pkg/errs"
	"travel-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const contactSupportSuffix = ", please contact support"

type CheckoutHandler struct {
	checkout             commands.CheckoutCommands
	reconciliations      commands.ReconciliationCommands
	sessionGuard         guard.SessionGuard
	defaultPaymentMethod string
}

func NewCheckoutHandler(
	checkout commands.CheckoutCommands,
	reconciliations commands.ReconciliationCommands,
	sessionGuard guard.SessionGuard,
	cfg config.CheckoutConfig,
) *CheckoutHandler {
	validation.Register()
	return &CheckoutHandler{
		checkout:             checkout,
		reconciliations:      reconciliations,
		sessionGuard:         sessionGuard,
		defaultPaymentMethod: cfg.DefaultPaymentMethod,
	}
}

// @Summary Submit checkout
// @Description Create, pay and confirm a hotel, flight or package booking
// @Tags checkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param X-Checkout-Session header string false "Checkout session key, defaults to the user"
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response{detail=resdto.CheckoutFailureDetail}
// @Router /checkouts [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.FieldErrors(err))
		return
	}

	sessionKey, ok := middleware.CheckoutSessionKey(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid checkout session", nil)
		return
	}

	requester := booking.Requester{UserID: userID, Token: middleware.GetAccessToken(c)}
	intent, err := req.ToDomain(requester, h.defaultPaymentMethod)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	// The saga must reach a terminal state even if the client goes away.
	ctx := context.WithoutCancel(c.Request.Context())

	release, err := h.sessionGuard.Acquire(ctx, sessionKey)
	if err != nil {
		if errs.Is(err, guard.ErrCheckoutInFlight) {
			httperr.AbortWithError(c, http.StatusConflict, err, "A checkout is already in progress", nil)
			return
		}
		slog.Error("Failed to acquire checkout session", "error", err, "user_id", userID)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Checkout temporarily unavailable", nil)
		return
	}
	defer release()

	result, err := h.checkout.SubmitBooking(ctx, intent)
	if err != nil {
		h.abortWithCheckoutError(ctx, c, userID, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubmitBookingResult(result))
}

func (h *CheckoutHandler) abortWithCheckoutError(ctx context.Context, c *gin.Context, userID string, err error) {
	switch {
	case errs.Is(err, commands.ErrAuthenticationRequired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Please sign in to complete your booking", nil)
		return
	case errs.Is(err, commands.ErrInvalidBookingRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", gin.H{"reason": err.Error()})
		return
	}

	checkoutErr, ok := commands.AsCheckoutError(err)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	detail := resdto.FromCheckoutError(checkoutErr)
	if checkoutErr.NeedsReview() {
		id, recErr := h.reconciliations.Record(ctx, userID, checkoutErr)
		if recErr != nil {
			slog.Error("Failed to record checkout for reconciliation",
				"error", recErr,
				"checkout_id", checkoutErr.CheckoutID,
				"booking_id", checkoutErr.BookingID,
				"payment_id", checkoutErr.PaymentID,
			)
		} else {
			detail.ReconciliationID = id.String()
		}
	}

	httperr.AbortWithError(c, http.StatusBadGateway, err, checkoutFailureMessage(checkoutErr), detail)
}

func checkoutFailureMessage(checkoutErr *commands.CheckoutError) string {
	var msg string
	switch {
	case errs.Is(checkoutErr.Kind, commands.ErrBookingCreationFailed):
		msg = "We could not create your booking"
	case errs.Is(checkoutErr.Kind, commands.ErrPaymentFailed):
		msg = "Your payment could not be processed"
	case errs.Is(checkoutErr.Kind, commands.ErrItineraryCreationFailed):
		msg = "We could not create your itinerary"
	case errs.Is(checkoutErr.Kind, commands.ErrConfirmationUpdateFailed):
		msg = "Your payment went through but the booking could not be confirmed"
	default:
		msg = "Checkout failed"
	}

	if checkoutErr.CompensationErr != nil || errs.Is(checkoutErr.Kind, commands.ErrConfirmationUpdateFailed) {
		msg += contactSupportSuffix
	}
	return msg
}
