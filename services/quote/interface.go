package quote

import (
	"context"

	"veranda/models"
)

// CreateQuoteRequest carries a room selection to be priced and held.
type CreateQuoteRequest struct {
	RoomID        string          `json:"roomId"`
	Adults        int             `json:"adults"`
	ChildAges     []int           `json:"childAges"`
	MealPlan      models.MealPlan `json:"mealPlan"`
	NumberOfRooms int             `json:"numberOfRooms"`
}

// QuoteService creates and reads time-boxed price quotes.
type QuoteService interface {
	CreateQuote(ctx context.Context, req CreateQuoteRequest) (*models.Quote, error)
	GetQuote(ctx context.Context, id string) (*models.Quote, error)
}
