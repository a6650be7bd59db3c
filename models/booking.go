package models

import "time"

// Payment status values. Starts pending, moves to exactly one terminal value.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Booking status values. Tracked independently of payment status: a booking is
// confirmed optimistically at order creation, before any money has moved.
// Only PaymentCompleted means payment was received.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Guest is one occupant recorded on a booking.
type Guest struct {
	Title     string `bson:"title" json:"title"`
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone" json:"phone"`
}

// Booking is the durable record of a reservation attempt. It snapshots room
// and plan names at creation so later room edits or deletion never corrupt it.
type Booking struct {
	ID        string `bson:"id" json:"id"`
	BookingID string `bson:"bookingId" json:"bookingId"` // human-readable reference, e.g. VRD-1A2B3C4D
	HotelName string `bson:"hotelName" json:"hotelName"`
	RoomID    string `bson:"roomId" json:"roomId"`
	RoomName  string `bson:"roomName" json:"roomName"`
	PlanName  string `bson:"planName,omitempty" json:"planName,omitempty"`

	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`
	Nights   int       `bson:"nights" json:"nights"`

	Guests []Guest `bson:"guests" json:"guests"`

	RoomPrice float64 `bson:"roomPrice" json:"roomPrice"`
	Taxes     float64 `bson:"taxes" json:"taxes"`
	Amount    float64 `bson:"amount" json:"amount"`
	Currency  string  `bson:"currency" json:"currency"`

	OrderID   string `bson:"orderId" json:"orderId"` // payment-gateway order id
	PaymentID string `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Signature string `bson:"signature,omitempty" json:"-"`

	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`
	BookingStatus string `bson:"bookingStatus" json:"bookingStatus"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ConfirmationEmail is the payload handed to the notification pipeline after a
// successful payment verification.
type ConfirmationEmail struct {
	GuestName string  `json:"guestName"`
	Email     string  `json:"email"`
	BookingID string  `json:"bookingId"`
	HotelName string  `json:"hotelName"`
	RoomName  string  `json:"roomName"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  string  `json:"checkOut"`
	Nights    int     `json:"nights"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}
