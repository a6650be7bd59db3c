package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "veranda/database/repository/booking"
	"veranda/models"
	"veranda/services/payment"
	"veranda/services/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockQuoteService struct {
	mock.Mock
}

func (m *mockQuoteService) CreateQuote(ctx context.Context, req quote.CreateQuoteRequest) (*models.Quote, error) {
	args := m.Called(ctx, req)
	if q := args.Get(0); q != nil {
		return q.(*models.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuoteService) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	args := m.Called(ctx, id)
	if q := args.Get(0); q != nil {
		return q.(*models.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(b *models.Booking) error { return m.Called(b).Error(0) }
func (m *mockBookingRepo) Update(b *models.Booking) error { return m.Called(b).Error(0) }

func (m *mockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) GetByOrderID(orderID string) (*models.Booking, error) {
	args := m.Called(orderID)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]interface{}) (*payment.Order, error) {
	args := m.Called(ctx, amount, currency, receipt, notes)
	if o := args.Get(0); o != nil {
		return o.(*payment.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) EnqueueConfirmation(email models.ConfirmationEmail) error {
	return m.Called(email).Error(0)
}

func newTestService() (*DefaultBookingService, *mockQuoteService, *mockBookingRepo, *mockGateway, *mockDispatcher) {
	quotes := new(mockQuoteService)
	repo := new(mockBookingRepo)
	gateway := new(mockGateway)
	dispatcher := new(mockDispatcher)
	svc := &DefaultBookingService{
		Quotes:          quotes,
		Repo:            repo,
		Gateway:         gateway,
		Dispatcher:      dispatcher,
		Logger:          zap.NewNop(),
		HotelName:       "Veranda Resort",
		Currency:        "INR",
		SignatureSecret: "s",
	}
	return svc, quotes, repo, gateway, dispatcher
}

func liveQuote() *models.Quote {
	return &models.Quote{
		ID:            "quote-1",
		RoomID:        "room-1",
		RoomName:      "Seaside Deluxe",
		NumberOfRooms: 1,
		Selection: models.GuestSelection{
			Adults:   2,
			MealPlan: models.MealPlanEP,
		},
		Breakdown: models.PriceBreakdown{BasePrice: 2000, NightlyTotal: 2000},
		CreatedAt: time.Now(),
	}
}

func leadGuest() []models.Guest {
	return []models.Guest{{
		Title:     "Mr",
		FirstName: "Arjun",
		LastName:  "Mehta",
		Email:     "arjun@example.com",
		Phone:     "+91-9000000000",
	}}
}

func TestInitiateOrderCreatesOptimisticBooking(t *testing.T) {
	svc, quotes, repo, gateway, _ := newTestService()
	quotes.On("GetQuote", mock.Anything, "quote-1").Return(liveQuote(), nil)

	// Two nights at 2000 plus 5% tax.
	gateway.On("CreateOrder", mock.Anything, 4200.0, "INR", mock.Anything, mock.Anything).
		Return(&payment.Order{ID: "order_1", Amount: 420000, Currency: "INR"}, nil)

	var persisted *models.Booking
	repo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		persisted = args.Get(0).(*models.Booking)
	}).Return(nil)

	resp, err := svc.InitiateOrder(context.Background(), InitiateOrderRequest{
		QuoteID:  "quote-1",
		Guests:   leadGuest(),
		CheckIn:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, persisted.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, persisted.BookingStatus)
	assert.Equal(t, "order_1", persisted.OrderID)
	assert.Equal(t, 2, persisted.Nights)
	assert.Equal(t, 4200.0, persisted.Amount)
	assert.Equal(t, "Seaside Deluxe", persisted.RoomName)
	assert.Contains(t, persisted.BookingID, "VRD-")
	assert.Equal(t, "order_1", resp.Order.ID)
}

func TestInitiateOrderExpiredQuote(t *testing.T) {
	svc, quotes, _, _, _ := newTestService()
	quotes.On("GetQuote", mock.Anything, "gone").Return(nil, quote.ErrQuoteNotFound)

	_, err := svc.InitiateOrder(context.Background(), InitiateOrderRequest{
		QuoteID:  "gone",
		Guests:   leadGuest(),
		CheckIn:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, quote.ErrQuoteNotFound)
}

func TestInitiateOrderGatewayFailure(t *testing.T) {
	svc, quotes, repo, gateway, _ := newTestService()
	quotes.On("GetQuote", mock.Anything, "quote-1").Return(liveQuote(), nil)
	gateway.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("gateway timeout"))

	_, err := svc.InitiateOrder(context.Background(), InitiateOrderRequest{
		QuoteID:  "quote-1",
		Guests:   leadGuest(),
		CheckIn:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
	})

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestInitiateOrderValidation(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	checkIn := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	cases := []InitiateOrderRequest{
		{Guests: leadGuest(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2)},         // no quote
		{QuoteID: "q", CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 2)},               // no guests
		{QuoteID: "q", Guests: leadGuest(), CheckIn: checkIn, CheckOut: checkIn},           // zero nights
		{QuoteID: "q", Guests: leadGuest(), CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, -1)}, // negative
	}
	for i, req := range cases {
		_, err := svc.InitiateOrder(context.Background(), req)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "case %d", i)
	}
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            "b-1",
		BookingID:     "VRD-12345678",
		HotelName:     "Veranda Resort",
		RoomName:      "Seaside Deluxe",
		Guests:        leadGuest(),
		Amount:        4200,
		Currency:      "INR",
		OrderID:       "order_1",
		PaymentStatus: models.PaymentPending,
		BookingStatus: models.BookingConfirmed,
	}
}

func TestVerifyPaymentCompletesBooking(t *testing.T) {
	svc, _, repo, _, dispatcher := newTestService()
	repo.On("GetByOrderID", "order_1").Return(pendingBooking(), nil)
	repo.On("Update", mock.Anything).Return(nil)
	dispatcher.On("EnqueueConfirmation", mock.Anything).Return(nil)

	sig := signedWith("order_1", "pay_1", "s")
	b, err := svc.VerifyPayment(context.Background(), VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sig,
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentCompleted, b.PaymentStatus)
	assert.Equal(t, models.BookingConfirmed, b.BookingStatus)
	assert.Equal(t, "pay_1", b.PaymentID)
	dispatcher.AssertCalled(t, "EnqueueConfirmation", mock.Anything)
}

func TestVerifyPaymentBadSignatureLeavesBookingUntouched(t *testing.T) {
	svc, _, repo, _, _ := newTestService()

	_, err := svc.VerifyPayment(context.Background(), VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "forged",
	})

	assert.ErrorIs(t, err, ErrInvalidSignature)
	repo.AssertNotCalled(t, "GetByOrderID", mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	svc, _, repo, _, _ := newTestService()
	repo.On("GetByOrderID", "order_x").Return(nil, bookingRepo.ErrNotFound)

	sig := signedWith("order_x", "pay_1", "s")
	_, err := svc.VerifyPayment(context.Background(), VerifyPaymentRequest{
		OrderID:   "order_x",
		PaymentID: "pay_1",
		Signature: sig,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestVerifyPaymentNotificationFailureIsSwallowed(t *testing.T) {
	svc, _, repo, _, dispatcher := newTestService()
	repo.On("GetByOrderID", "order_1").Return(pendingBooking(), nil)
	repo.On("Update", mock.Anything).Return(nil)
	dispatcher.On("EnqueueConfirmation", mock.Anything).Return(errors.New("queue down"))

	sig := signedWith("order_1", "pay_1", "s")
	b, err := svc.VerifyPayment(context.Background(), VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sig,
	})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, b.PaymentStatus)
}

func TestCancelBooking(t *testing.T) {
	svc, _, repo, _, _ := newTestService()
	repo.On("GetByID", "b-1").Return(pendingBooking(), nil)
	repo.On("Update", mock.Anything).Return(nil)

	b, err := svc.CancelBooking(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, models.BookingCancelled, b.BookingStatus)
	assert.Equal(t, models.PaymentPending, b.PaymentStatus)
}
