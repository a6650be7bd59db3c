package notification

import (
	"context"

	"veranda/models"
)

// NotificationService sends guest-facing notifications. Dispatch is
// best-effort: callers must never let a send failure roll back committed
// state.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, email models.ConfirmationEmail) error
}
