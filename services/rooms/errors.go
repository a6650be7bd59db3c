package rooms

import (
	"errors"
	"fmt"
)

// ErrRuleOverlap signals that an enabled pricing rule's date interval collides
// with another enabled rule on the same room.
var ErrRuleOverlap = errors.New("pricing rule dates overlap an existing enabled rule")

// ErrInvalidRuleRange signals a rule whose start date is not before its end date.
var ErrInvalidRuleRange = errors.New("pricing rule start date must be before end date")

// ValidationError reports a missing or malformed field on a creation request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}
