package pricing

import (
	"time"

	"veranda/models"
)

// EffectiveRate is the nightly price and inventory that apply to a stay.
type EffectiveRate struct {
	Price      float64 `json:"price"`
	Inventory  int     `json:"inventory"`
	IsOverride bool    `json:"isOverride"`
}

// ResolveRate returns the effective nightly price and inventory for a room,
// optionally for a stay interval. With no dates it returns the base rate.
//
// A rule applies only when the entire requested interval falls inside the
// rule's interval; a stay that partially overlaps a rule does not qualify.
// Enabled rules are assumed non-overlapping (the admin write path enforces
// that), so the first match wins. Absence of a match is normal fallback, not
// an error.
func ResolveRate(room *models.Room, checkIn, checkOut *time.Time) EffectiveRate {
	base := EffectiveRate{Price: room.BasePrice, Inventory: room.Inventory}
	if checkIn == nil || checkOut == nil {
		return base
	}

	in := startOfDay(*checkIn)
	out := endOfDay(*checkOut)
	for _, rule := range room.PricingRules {
		if !rule.Enabled {
			continue
		}
		ruleStart := startOfDay(rule.StartDate)
		ruleEnd := endOfDay(rule.EndDate)
		if !in.Before(ruleStart) && !out.After(ruleEnd) {
			return EffectiveRate{Price: rule.Price, Inventory: rule.Inventory, IsOverride: true}
		}
	}
	return base
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
