// File: database/repository/room/rules_mongo.go
package roomRepo

import (
	"fmt"
	"time"

	"veranda/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AddPricingRule appends a pricing rule to a room's embedded rule list.
func (r *MongoRoomRepo) AddPricingRule(roomID string, rule models.PricingRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": roomID}
	update := bson.M{
		"$push": bson.M{"pricingRules": rule},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add pricing rule to room %s: %w", roomID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePricingRule replaces the rule with the matching id on the given room.
func (r *MongoRoomRepo) UpdatePricingRule(roomID string, rule models.PricingRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": roomID, "pricingRules.id": rule.ID}
	update := bson.M{
		"$set": bson.M{
			"pricingRules.$": rule,
			"updatedAt":      time.Now(),
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update pricing rule %s on room %s: %w", rule.ID, roomID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemovePricingRule deletes the rule with the matching id from the given room.
func (r *MongoRoomRepo) RemovePricingRule(roomID, ruleID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": roomID}
	update := bson.M{
		"$pull": bson.M{"pricingRules": bson.M{"id": ruleID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove pricing rule %s from room %s: %w", ruleID, roomID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
