package models

import "time"

// MealPlan selects which meals are bundled into the nightly rate.
type MealPlan string

const (
	MealPlanEP MealPlan = "EP" // room only
	MealPlanCP MealPlan = "CP" // room + breakfast
	MealPlanAP MealPlan = "AP" // room + breakfast + dinner
)

// Valid reports whether p is one of the known meal plans.
func (p MealPlan) Valid() bool {
	switch p {
	case MealPlanEP, MealPlanCP, MealPlanAP:
		return true
	}
	return false
}

// GuestSelection is the occupancy a quote was priced for.
type GuestSelection struct {
	Adults    int      `json:"adults"`
	ChildAges []int    `json:"childAges"`
	MealPlan  MealPlan `json:"mealPlan"`
}

// PriceBreakdown is the frozen result of the occupancy pricer. Every
// intermediate line item is exposed; the checkout and admin surfaces render
// them individually.
type PriceBreakdown struct {
	NumberOfRooms int     `json:"numberOfRooms"`
	BasePrice     float64 `json:"basePrice"`
	TotalBase     float64 `json:"totalBasePrice"`

	ExtraAdults     int     `json:"extraAdults"`
	ExtraAdultsCost float64 `json:"extraAdultsCost"`

	ChargeableChildren    int     `json:"chargeableChildren"`
	ExtraChildrenStayCost float64 `json:"extraChildrenStayCost"`
	ChargeableForMeals    int     `json:"chargeableForMeals"`
	BreakfastCost         float64 `json:"breakfastCost"`
	DinnerCost            float64 `json:"dinnerCost"`

	NightlyTotal float64 `json:"nightlyTotal"`
	Nights       int     `json:"nights"`
	SubTotal     float64 `json:"subTotal"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
}

// Quote is an ephemeral, immutable price commitment. It lives in the quote
// store under a 15-minute TTL and is never mutated after creation; expiry is
// storage-level eviction, indistinguishable from never having existed.
type Quote struct {
	ID            string         `json:"id"`
	RoomID        string         `json:"roomId"`
	RoomName      string         `json:"roomName"`
	NumberOfRooms int            `json:"numberOfRooms"`
	Selection     GuestSelection `json:"selection"`
	Breakdown     PriceBreakdown `json:"breakdown"`
	CreatedAt     time.Time      `json:"createdAt"`
}
