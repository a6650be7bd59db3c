package bookingRepo

import "veranda/models"

// BookingRepository defines persistence operations for booking records.
// Bookings are never deleted through normal flow.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByOrderID(orderID string) (*models.Booking, error)
}
