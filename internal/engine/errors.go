package engine

import (
	"errors"
	"fmt"
)

// Domain errors returned by forward operations whose precondition fails.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidPower   = errors.New("power outside real domain")
	ErrInvalidLog     = errors.New("logarithm of non-positive value")
)

// DomainError reports a forward operation rejected because an operand
// violates the numeric domain of the operation. No Value is produced.
type DomainError struct {
	Op       Op      // Operation that was rejected
	Operand  float64 // Offending operand data (divisor, base or log argument)
	Exponent float64 // Exponent for OpPow, zero otherwise
	Err      error   // One of the Err* sentinels
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Op == OpPow {
		return fmt.Sprintf("%s: %s: base %v, exponent %v", e.Op, e.Err, e.Operand, e.Exponent)
	}
	return fmt.Sprintf("%s: %s: operand %v", e.Op, e.Err, e.Operand)
}

// Unwrap returns the sentinel so errors.Is matches ErrDivisionByZero and friends.
func (e *DomainError) Unwrap() error {
	return e.Err
}
