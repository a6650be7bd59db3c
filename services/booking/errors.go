package booking

import (
	"errors"
	"fmt"
)

// ErrInvalidSignature signals a payment signature mismatch. The message is
// deliberately generic; the expected value is never surfaced.
var ErrInvalidSignature = errors.New("invalid payment signature")

// ErrBookingNotFound signals that no booking matched the gateway order id.
var ErrBookingNotFound = errors.New("booking not found")

// ValidationError reports a missing or malformed field on an order request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing field: %s", e.Field)
}

// UpstreamError wraps a payment-gateway failure. Gateway failures abort the
// operation; notification failures never become one of these.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
