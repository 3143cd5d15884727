package ports

import (
	"errors"
	"fmt"
)

// ErrConcurrentModification is the sentinel behind ConcurrentModificationError.
var ErrConcurrentModification = errors.New("concurrent modification")

// Aggregate names carried by ConcurrentModificationError.
const (
	AggregateOrder  = "order"
	AggregateDriver = "driver"
)

// ConcurrentModificationError reports that an aggregate changed in storage
// after it was loaded. Callers reload and decide whether to retry.
type ConcurrentModificationError struct {
	Aggregate string
	ID        string
	Expected  int
}

func NewConcurrentModificationError(aggregate, id string, expected int) *ConcurrentModificationError {
	return &ConcurrentModificationError{Aggregate: aggregate, ID: id, Expected: expected}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer at version %d", ErrConcurrentModification, e.Aggregate, e.ID, e.Expected)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
