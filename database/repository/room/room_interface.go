package roomRepo

import "veranda/models"

// RoomRepository defines persistence operations for rooms and their embedded
// pricing rules.
type RoomRepository interface {
	Create(room *models.Room) error
	Update(room *models.Room) error
	Delete(id string) error
	GetByID(id string) (*models.Room, error)
	GetBySlug(slug string) (*models.Room, error)
	GetAll() ([]models.Room, error)

	AddPricingRule(roomID string, rule models.PricingRule) error
	UpdatePricingRule(roomID string, rule models.PricingRule) error
	RemovePricingRule(roomID, ruleID string) error
}
