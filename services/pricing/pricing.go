package pricing

import (
	"math"

	"veranda/models"
)

// Occupancy pricing constants, in rupees per night.
const (
	ExtraAdultCharge = 300
	BreakfastCP      = 150
	BreakfastAP      = 150
	DinnerAP         = 400
	MaxGuestsPerRoom = 4
	TaxRate          = 0.05
)

// ChildAdultAge is the age from which a child is charged as an extra adult.
const ChildAdultAge = 10

// ComputeBreakdown calculates the full price breakdown for an occupancy
// selection. It is pure: no I/O, deterministic for the same inputs.
//
// The base price covers two adults per room. Beyond that, every group of four
// additional adults contributes two chargeable extra-adult units (a second
// room absorbs two of the four for free), and a partial remainder contributes
// at most two. Children aged 10 and over are charged as extra adults for the
// stay; meal charges apply to adults plus children aged 10-17.
//
// Callers must clamp adults >= 1 and nights >= 1 before calling; negative
// inputs are a contract violation, not a checked error.
func ComputeBreakdown(adults int, childAges []int, plan models.MealPlan, basePrice float64, nights int) models.PriceBreakdown {
	numberOfRooms := int(math.Ceil(float64(adults) / MaxGuestsPerRoom))
	totalBase := float64(numberOfRooms) * basePrice

	extraAdults := 0
	if adults > 2 {
		extra := adults - 2
		fullGroups := extra / 4
		remainder := extra % 4
		extraAdults = fullGroups * 2
		if remainder < 2 {
			extraAdults += remainder
		} else {
			extraAdults += 2
		}
	}
	extraAdultsCost := float64(extraAdults) * ExtraAdultCharge

	chargeableChildren := 0
	chargeableForMeals := adults
	for _, age := range childAges {
		if age >= ChildAdultAge {
			chargeableChildren++
		}
		if age >= ChildAdultAge && age <= 17 {
			chargeableForMeals++
		}
	}
	extraChildrenStayCost := float64(chargeableChildren) * ExtraAdultCharge

	var breakfastCost, dinnerCost float64
	switch plan {
	case models.MealPlanCP:
		breakfastCost = float64(chargeableForMeals) * BreakfastCP
	case models.MealPlanAP:
		breakfastCost = float64(chargeableForMeals) * BreakfastAP
		dinnerCost = float64(chargeableForMeals) * DinnerAP
	}

	nightly := totalBase + extraAdultsCost + extraChildrenStayCost + breakfastCost + dinnerCost
	subTotal := float64(nights) * nightly
	tax := subTotal * TaxRate

	return models.PriceBreakdown{
		NumberOfRooms:         numberOfRooms,
		BasePrice:             basePrice,
		TotalBase:             totalBase,
		ExtraAdults:           extraAdults,
		ExtraAdultsCost:       extraAdultsCost,
		ChargeableChildren:    chargeableChildren,
		ExtraChildrenStayCost: extraChildrenStayCost,
		ChargeableForMeals:    chargeableForMeals,
		BreakfastCost:         breakfastCost,
		DinnerCost:            dinnerCost,
		NightlyTotal:          nightly,
		Nights:                nights,
		SubTotal:              subTotal,
		Tax:                   tax,
		Total:                 subTotal + tax,
	}
}

// RoomsNeeded returns how many rooms an adult count requires.
func RoomsNeeded(adults int) int {
	return int(math.Ceil(float64(adults) / MaxGuestsPerRoom))
}
