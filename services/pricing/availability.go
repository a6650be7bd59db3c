package pricing

import "fmt"

// InsufficientInventoryError reports an availability guard failure, naming how
// many rooms remain so the caller can act on it.
type InsufficientInventoryError struct {
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory: requested %d room(s), %d available", e.Requested, e.Available)
}

// CheckAvailability rejects a request when the resolved inventory cannot
// satisfy the requested room count. This is an advisory point-in-time check,
// not a reservation: concurrent requests against marginal inventory are not
// serialized against each other. An atomic decrement can be slotted in behind
// this call site if overbooking tolerance turns out to be unintended.
func CheckAvailability(numberOfRooms, effectiveInventory int) error {
	if numberOfRooms > effectiveInventory {
		return &InsufficientInventoryError{Requested: numberOfRooms, Available: effectiveInventory}
	}
	return nil
}
