package car

import (
	"errors"
	"fmt"
)

// ErrUnknownTransmission is returned when text does not name a known transmission.
var ErrUnknownTransmission = errors.New("unknown transmission")

// InvariantError describes a quality-control check a freshly built car failed.
type InvariantError struct {
	Field    string
	Expected any
	Actual   any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("car invariant violated: %s = %v, want %v", e.Field, e.Actual, e.Expected)
}

// IsInvariant helps callers recover the failed check from a panic value or wrapped error.
func IsInvariant(err error) bool {
	var inv *InvariantError
	return errors.As(err, &inv)
}
