package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "veranda/database/repository/booking"
	"veranda/models"
	"veranda/services/payment"
	"veranda/services/pricing"
	"veranda/services/quote"
	"veranda/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Quotes     quote.QuoteService
	Repo       bookingRepo.BookingRepository
	Gateway    payment.Gateway
	Dispatcher tasks.Dispatcher
	Logger     *zap.Logger

	HotelName       string
	Currency        string
	SignatureSecret string
}

// InitiateOrder turns a live quote plus guest details into a gateway order
// and a persisted booking. The booking starts paymentStatus=pending with
// bookingStatus=confirmed: confirmed means "slot reserved", not "paid".
func (s *DefaultBookingService) InitiateOrder(ctx context.Context, req InitiateOrderRequest) (*InitiateOrderResponse, error) {
	if req.QuoteID == "" {
		return nil, &ValidationError{Field: "quoteId"}
	}
	if len(req.Guests) == 0 {
		return nil, &ValidationError{Field: "guests"}
	}
	lead := req.Guests[0]
	if lead.FirstName == "" || lead.Email == "" {
		return nil, &ValidationError{Field: "guests"}
	}
	nights := nightsBetween(req.CheckIn, req.CheckOut)
	if nights < 1 {
		return nil, &ValidationError{Field: "checkOut"}
	}

	q, err := s.Quotes.GetQuote(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}

	// The quote froze the nightly rate; scale it to the stay length. Quotes
	// are priced at the base rate, so this stays date-blind as well.
	sel := q.Selection
	breakdown := pricing.ComputeBreakdown(sel.Adults, sel.ChildAges, sel.MealPlan, q.Breakdown.BasePrice, nights)

	bookingID := newBookingReference()
	order, err := s.Gateway.CreateOrder(ctx, breakdown.Total, s.Currency, bookingID, map[string]interface{}{
		"bookingId": bookingID,
		"roomName":  q.RoomName,
	})
	if err != nil {
		return nil, &UpstreamError{Op: "order creation", Err: err}
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		BookingID:     bookingID,
		HotelName:     s.HotelName,
		RoomID:        q.RoomID,
		RoomName:      q.RoomName,
		PlanName:      req.PlanName,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        nights,
		Guests:        req.Guests,
		RoomPrice:     breakdown.SubTotal,
		Taxes:         breakdown.Tax,
		Amount:        breakdown.Total,
		Currency:      s.Currency,
		OrderID:       order.ID,
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingConfirmed,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.Logger.Info("order initiated",
		zap.String("bookingId", bookingID),
		zap.String("orderId", order.ID),
		zap.Float64("amount", breakdown.Total),
		zap.Int("nights", nights))
	return &InitiateOrderResponse{Booking: b, Order: order}, nil
}

// VerifyPayment validates the gateway signature and flips the booking's
// payment status. A signature mismatch leaves the booking untouched. The
// confirmation email is queued best-effort: a dispatch failure is logged and
// never rolls back the committed transition.
func (s *DefaultBookingService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (*models.Booking, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, &ValidationError{Field: "orderId/paymentId/signature"}
	}

	if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.SignatureSecret) {
		s.Logger.Warn("payment signature mismatch", zap.String("orderId", req.OrderID))
		return nil, ErrInvalidSignature
	}

	b, err := s.Repo.GetByOrderID(req.OrderID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to locate booking for order %s: %w", req.OrderID, err)
	}

	b.PaymentID = req.PaymentID
	b.Signature = req.Signature
	b.PaymentStatus = models.PaymentCompleted
	b.BookingStatus = models.BookingConfirmed
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", b.ID, err)
	}

	s.Logger.Info("payment verified",
		zap.String("bookingId", b.BookingID),
		zap.String("orderId", b.OrderID),
		zap.String("paymentId", b.PaymentID))

	s.queueConfirmation(b)
	return b, nil
}

// GetBooking retrieves a booking by its internal id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking is the administrative cancellation path. Payment status is
// left as-is; only the reservation is released.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	b.BookingStatus = models.BookingCancelled
	if err := s.Repo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}

	s.Logger.Info("booking cancelled", zap.String("bookingId", b.BookingID))
	return b, nil
}

func (s *DefaultBookingService) queueConfirmation(b *models.Booking) {
	if s.Dispatcher == nil || len(b.Guests) == 0 {
		return
	}
	lead := b.Guests[0]
	email := models.ConfirmationEmail{
		GuestName: strings.TrimSpace(lead.FirstName + " " + lead.LastName),
		Email:     lead.Email,
		BookingID: b.BookingID,
		HotelName: b.HotelName,
		RoomName:  b.RoomName,
		CheckIn:   b.CheckIn.Format("2006-01-02"),
		CheckOut:  b.CheckOut.Format("2006-01-02"),
		Nights:    b.Nights,
		Amount:    b.Amount,
		Currency:  b.Currency,
	}
	if err := s.Dispatcher.EnqueueConfirmation(email); err != nil {
		s.Logger.Error("failed to queue confirmation email",
			zap.String("bookingId", b.BookingID),
			zap.Error(err))
	}
}

// nightsBetween counts calendar nights between two dates.
func nightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, checkIn.Location())
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, checkOut.Location())
	return int(out.Sub(in).Hours() / 24)
}

// newBookingReference generates a short human-readable booking id.
func newBookingReference() string {
	id := uuid.New().String()
	return "VRD-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}
