package quote

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound signals that the referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrQuoteNotFound signals a missing quote. An expired quote is evicted by
// the store and surfaces identically to one that never existed.
var ErrQuoteNotFound = errors.New("quote not found or expired")

// ValidationError reports a missing or malformed field on a quote request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}
