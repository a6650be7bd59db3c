package rooms

import (
	"time"

	roomRepo "veranda/database/repository/room"
	"veranda/models"
	"veranda/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRoomService is the production implementation of RoomService.
type DefaultRoomService struct {
	Repo   roomRepo.RoomRepository
	Logger *zap.Logger
}

// CreateRoom validates and persists a new room. Rooms referenced by quotes
// and bookings are snapshotted there, so later edits never reach them.
func (s *DefaultRoomService) CreateRoom(room *models.Room) (*models.Room, error) {
	if room.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if room.Slug == "" {
		return nil, &ValidationError{Field: "slug"}
	}
	if len(room.Photos) == 0 {
		return nil, &ValidationError{Field: "photos"}
	}
	if room.BasePrice < 0 {
		return nil, &ValidationError{Field: "basePrice"}
	}
	if room.Inventory < 0 {
		return nil, &ValidationError{Field: "inventory"}
	}

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	for i := range room.PricingRules {
		if room.PricingRules[i].ID == "" {
			room.PricingRules[i].ID = uuid.New().String()
		}
	}
	if err := validateRules(room.PricingRules); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(room); err != nil {
		return nil, err
	}
	s.Logger.Info("room created", zap.String("id", room.ID), zap.String("slug", room.Slug))
	return room, nil
}

// UpdateRoom validates and persists changes to an existing room.
func (s *DefaultRoomService) UpdateRoom(room *models.Room) (*models.Room, error) {
	if room.ID == "" {
		return nil, &ValidationError{Field: "id"}
	}
	if room.BasePrice < 0 {
		return nil, &ValidationError{Field: "basePrice"}
	}
	if room.Inventory < 0 {
		return nil, &ValidationError{Field: "inventory"}
	}
	if err := validateRules(room.PricingRules); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room and its embedded rules and plans.
func (s *DefaultRoomService) DeleteRoom(id string) error {
	return s.Repo.Delete(id)
}

// GetRoomByID retrieves a room by its internal id.
func (s *DefaultRoomService) GetRoomByID(id string) (*models.Room, error) {
	return s.Repo.GetByID(id)
}

// GetRoomBySlug retrieves a room by its human-readable slug.
func (s *DefaultRoomService) GetRoomBySlug(slug string) (*models.Room, error) {
	return s.Repo.GetBySlug(slug)
}

// ListRooms returns the full catalog.
func (s *DefaultRoomService) ListRooms() ([]models.Room, error) {
	return s.Repo.GetAll()
}

// AddPricingRule validates a rule against the room's existing enabled rules
// and appends it. Non-overlap is enforced here, at the mutation boundary;
// the resolver stays first-match and does not re-validate.
func (s *DefaultRoomService) AddPricingRule(roomID string, rule models.PricingRule) (*models.PricingRule, error) {
	room, err := s.Repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if err := validateRuleAgainst(rule, room.PricingRules); err != nil {
		return nil, err
	}

	if err := s.Repo.AddPricingRule(roomID, rule); err != nil {
		return nil, err
	}
	s.Logger.Info("pricing rule added",
		zap.String("roomId", roomID),
		zap.String("ruleId", rule.ID),
		zap.Time("start", rule.StartDate),
		zap.Time("end", rule.EndDate))
	return &rule, nil
}

// UpdatePricingRule validates the changed rule against its siblings and
// replaces it in place.
func (s *DefaultRoomService) UpdatePricingRule(roomID string, rule models.PricingRule) error {
	room, err := s.Repo.GetByID(roomID)
	if err != nil {
		return err
	}

	others := make([]models.PricingRule, 0, len(room.PricingRules))
	for _, existing := range room.PricingRules {
		if existing.ID != rule.ID {
			others = append(others, existing)
		}
	}
	if err := validateRuleAgainst(rule, others); err != nil {
		return err
	}

	return s.Repo.UpdatePricingRule(roomID, rule)
}

// RemovePricingRule deletes a rule from a room.
func (s *DefaultRoomService) RemovePricingRule(roomID, ruleID string) error {
	return s.Repo.RemovePricingRule(roomID, ruleID)
}

// RateForStay resolves the effective rate for a room and optional stay dates.
func (s *DefaultRoomService) RateForStay(roomID string, checkIn, checkOut *time.Time) (*pricing.EffectiveRate, error) {
	room, err := s.Repo.GetByID(roomID)
	if err != nil {
		return nil, err
	}
	rate := pricing.ResolveRate(room, checkIn, checkOut)
	return &rate, nil
}

// validateRules checks a full rule set for range validity and pairwise
// non-overlap among enabled rules.
func validateRules(rules []models.PricingRule) error {
	for i, rule := range rules {
		if !rule.StartDate.Before(rule.EndDate) {
			return ErrInvalidRuleRange
		}
		if !rule.Enabled {
			continue
		}
		for _, other := range rules[i+1:] {
			if other.Enabled && overlaps(rule, other) {
				return ErrRuleOverlap
			}
		}
	}
	return nil
}

// validateRuleAgainst checks one rule's range and, when enabled, its overlap
// with the given siblings.
func validateRuleAgainst(rule models.PricingRule, siblings []models.PricingRule) error {
	if !rule.StartDate.Before(rule.EndDate) {
		return ErrInvalidRuleRange
	}
	if !rule.Enabled {
		return nil
	}
	for _, other := range siblings {
		if other.Enabled && overlaps(rule, other) {
			return ErrRuleOverlap
		}
	}
	return nil
}

func overlaps(a, b models.PricingRule) bool {
	return a.StartDate.Before(b.EndDate) && b.StartDate.Before(a.EndDate)
}
