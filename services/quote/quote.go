package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	roomRepo "veranda/database/repository/room"
	"veranda/models"
	"veranda/services/pricing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteTTL is the hard wall-clock lifetime of a quote, enforced by redis key
// expiry rather than application-level date comparison.
const QuoteTTL = 15 * time.Minute

const quoteKeyPrefix = "quote:"

// DefaultQuoteService is the production implementation of QuoteService.
type DefaultQuoteService struct {
	Rooms  roomRepo.RoomRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// CreateQuote prices a room selection and persists an immutable quote with a
// 15-minute TTL. The availability guard runs against the room's base
// inventory; it is advisory only, concurrent creations are not serialized.
//
// Quote creation prices at the room's base rate. Date-ranged pricing rules
// apply only on the availability display path.
func (s *DefaultQuoteService) CreateQuote(ctx context.Context, req CreateQuoteRequest) (*models.Quote, error) {
	if req.RoomID == "" {
		return nil, &ValidationError{Field: "roomId"}
	}
	if req.Adults < 1 {
		return nil, &ValidationError{Field: "adults"}
	}
	if !req.MealPlan.Valid() {
		return nil, &ValidationError{Field: "mealPlan"}
	}
	if req.NumberOfRooms < 1 {
		return nil, &ValidationError{Field: "numberOfRooms"}
	}
	for _, age := range req.ChildAges {
		if age < 0 || age > 17 {
			return nil, &ValidationError{Field: "childAges"}
		}
	}

	room, err := s.Rooms.GetByID(req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to resolve room %s: %w", req.RoomID, err)
	}

	rate := pricing.ResolveRate(room, nil, nil)
	if err := pricing.CheckAvailability(req.NumberOfRooms, rate.Inventory); err != nil {
		return nil, err
	}

	breakdown := pricing.ComputeBreakdown(req.Adults, req.ChildAges, req.MealPlan, rate.Price, 1)

	q := &models.Quote{
		ID:            uuid.New().String(),
		RoomID:        room.ID,
		RoomName:      room.Name,
		NumberOfRooms: req.NumberOfRooms,
		Selection: models.GuestSelection{
			Adults:    req.Adults,
			ChildAges: req.ChildAges,
			MealPlan:  req.MealPlan,
		},
		Breakdown: breakdown,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quote: %w", err)
	}
	if err := s.Cache.Set(ctx, quoteKeyPrefix+q.ID, data, QuoteTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store quote: %w", err)
	}

	s.Logger.Info("quote created",
		zap.String("quoteId", q.ID),
		zap.String("roomId", room.ID),
		zap.Int("rooms", req.NumberOfRooms),
		zap.Float64("total", breakdown.Total))
	return q, nil
}

// GetQuote reads a quote by id. A quote past its TTL has been evicted and is
// indistinguishable from one that never existed.
func (s *DefaultQuoteService) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	data, err := s.Cache.Get(ctx, quoteKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to read quote %s: %w", id, err)
	}

	var q models.Quote
	if err := json.Unmarshal([]byte(data), &q); err != nil {
		return nil, fmt.Errorf("failed to decode quote %s: %w", id, err)
	}
	return &q, nil
}
