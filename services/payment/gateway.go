package payment

import "context"

// Order is the gateway's view of a created payment order. Amount is in minor
// units (paise); everything above this boundary works in rupees.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Gateway creates payment orders with the external payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency, receipt string, notes map[string]interface{}) (*Order, error)
}
