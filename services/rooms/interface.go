package rooms

import (
	"time"

	"veranda/models"
	"veranda/services/pricing"
)

// RoomService is the administrative surface for the room catalog and its
// rate table.
type RoomService interface {
	CreateRoom(room *models.Room) (*models.Room, error)
	UpdateRoom(room *models.Room) (*models.Room, error)
	DeleteRoom(id string) error
	GetRoomByID(id string) (*models.Room, error)
	GetRoomBySlug(slug string) (*models.Room, error)
	ListRooms() ([]models.Room, error)

	AddPricingRule(roomID string, rule models.PricingRule) (*models.PricingRule, error)
	UpdatePricingRule(roomID string, rule models.PricingRule) error
	RemovePricingRule(roomID, ruleID string) error

	// RateForStay resolves the effective nightly price and inventory for a
	// room and an optional stay interval. This is the date-aware display
	// path; quote creation intentionally prices at the base rate.
	RateForStay(roomID string, checkIn, checkOut *time.Time) (*pricing.EffectiveRate, error)
}
