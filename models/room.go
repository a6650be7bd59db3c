package models

import "time"

// Room is a bookable room category. BasePrice is the nightly rate for exactly
// two adults; occupancy beyond that is charged by the pricing engine.
type Room struct {
	ID        string  `bson:"id" json:"id"`
	Slug      string  `bson:"slug" json:"slug"`
	Name      string  `bson:"name" json:"name"`
	BasePrice float64 `bson:"basePrice" json:"basePrice"`
	Inventory int     `bson:"inventory" json:"inventory"`

	// Static descriptive attributes.
	SizeSqFt  int      `bson:"sizeSqFt,omitempty" json:"sizeSqFt,omitempty"`
	View      string   `bson:"view,omitempty" json:"view,omitempty"`
	BedType   string   `bson:"bedType,omitempty" json:"bedType,omitempty"`
	Bathrooms int      `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Amenities []string `bson:"amenities,omitempty" json:"amenities,omitempty"`
	Photos    []string `bson:"photos" json:"photos"`

	// PricingRules and RatePlans are owned by the room and deleted with it.
	PricingRules []PricingRule `bson:"pricingRules,omitempty" json:"pricingRules,omitempty"`
	RatePlans    []RatePlan    `bson:"ratePlans,omitempty" json:"ratePlans,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PricingRule overrides a room's price and inventory for a contiguous date
// interval. Enabled rules on the same room must not overlap; the admin write
// path enforces that, the resolver assumes it and returns the first match.
type PricingRule struct {
	ID        string    `bson:"id" json:"id"`
	StartDate time.Time `bson:"startDate" json:"startDate"`
	EndDate   time.Time `bson:"endDate" json:"endDate"`
	Price     float64   `bson:"price" json:"price"`
	Inventory int       `bson:"inventory" json:"inventory"`
	Enabled   bool      `bson:"enabled" json:"enabled"`
}

// RatePlan is a named pricing tier on a room, e.g. room-only vs breakfast-included.
type RatePlan struct {
	Name       string   `bson:"name" json:"name"`
	Price      float64  `bson:"price" json:"price"`
	Refundable bool     `bson:"refundable" json:"refundable"`
	Inclusions []string `bson:"inclusions,omitempty" json:"inclusions,omitempty"`
}
