package handlers

import (
	"errors"
	"net/http"

	"veranda/services/booking"
	"veranda/services/quote"
	"veranda/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes order initiation and payment verification.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// InitiateOrderHandler handles POST /api/bookings/order. It consumes a live
// quote plus guest details and returns the gateway order for the checkout
// widget.
func (h *BookingHandler) InitiateOrderHandler(c *gin.Context) {
	var req booking.InitiateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.InitiateOrder(c.Request.Context(), req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerifyPaymentHandler handles POST /api/bookings/verify. Signature
// mismatches are reported generically and leave the booking untouched.
func (h *BookingHandler) VerifyPaymentHandler(c *gin.Context) {
	var req booking.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	b, err := h.Service.VerifyPayment(c.Request.Context(), req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var upstreamErr *booking.UpstreamError
	switch {
	case errors.Is(err, booking.ErrInvalidSignature):
		utils.JSONError(c, http.StatusBadRequest, "invalid payment signature", "")
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, quote.ErrQuoteNotFound):
		utils.JSONError(c, http.StatusNotFound, "quote not found or expired", "")
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validationErr.Error())
	case errors.As(err, &upstreamErr):
		h.Logger.Error("payment gateway failure", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment gateway unavailable", "")
	default:
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", "")
	}
}
