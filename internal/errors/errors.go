package errors

import (
	"errors"
	"fmt"
)

var ErrUnknownRegion = errors.New("unknown shipping region")

// MalformedOrderError marks an order that carries neither a valid
// creation nor approval timestamp and therefore cannot be classified.
// Callers decide whether to drop the order or surface the error.
type MalformedOrderError struct {
	OrderID string
}

func (e *MalformedOrderError) Error() string {
	return fmt.Sprintf("order %s has neither a valid creation nor approval timestamp", e.OrderID)
}
