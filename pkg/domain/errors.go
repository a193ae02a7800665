package domain

import (
	"errors"
	"fmt"
)

// ErrRange matches every RangeError via errors.Is.
var ErrRange = errors.New("invalid range")

// ErrSchemaNotFound is returned when a schema name cannot be found in a store.
var ErrSchemaNotFound = errors.New("schema not found")

// RangeError reports constraints that describe an empty or inverted range,
// such as a date window whose end is not after its start.
type RangeError struct {
	Type   TypeTag // Type being generated
	Reason string  // Human-readable description of the bad range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason)
}

// Is makes errors.Is(err, ErrRange) hold for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// NewRangeError builds a RangeError with a formatted reason.
func NewRangeError(typ TypeTag, format string, args ...any) *RangeError {
	return &RangeError{Type: typ, Reason: fmt.Sprintf(format, args...)}
}
