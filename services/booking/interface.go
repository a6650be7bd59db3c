package booking

import (
	"context"
	"time"

	"veranda/models"
	"veranda/services/payment"
)

// InitiateOrderRequest creates a booking from a live quote plus guest details.
type InitiateOrderRequest struct {
	QuoteID  string         `json:"quoteId"`
	Guests   []models.Guest `json:"guests"`
	CheckIn  time.Time      `json:"checkIn"`
	CheckOut time.Time      `json:"checkOut"`
	PlanName string         `json:"planName"`
}

// InitiateOrderResponse returns the persisted booking and the gateway order
// the checkout widget needs.
type InitiateOrderResponse struct {
	Booking *models.Booking `json:"booking"`
	Order   *payment.Order  `json:"order"`
}

// VerifyPaymentRequest carries the checkout widget's success callback fields.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// BookingService owns the booking lifecycle: order initiation and payment
// verification.
type BookingService interface {
	InitiateOrder(ctx context.Context, req InitiateOrderRequest) (*InitiateOrderResponse, error)
	VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (*models.Booking, error)
}
