package greedy

import (
	"errors"
	"fmt"
)

// Common solver errors
var (
	// ErrInvalidInput indicates malformed dense input: an out-of-range
	// element id, an empty set family, or a zero universe with non-empty
	// sets. This is a caller bug and is never retried.
	ErrInvalidInput = errors.New("invalid set cover input")

	// ErrInfeasible indicates the union of all candidate sets does not
	// reach the full universe, so no selection can cover it.
	ErrInfeasible = errors.New("no feasible cover")

	// ErrInvalidConfig indicates an invalid solver configuration.
	ErrInvalidConfig = errors.New("invalid solver configuration")
)

// InputError describes why the dense input was rejected.
type InputError struct {
	// SetIndex is the index of the offending set, or -1 when the problem
	// is with the family as a whole.
	SetIndex int

	// Element is the offending element id, meaningful only when SetIndex
	// is not -1.
	Element int

	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.SetIndex >= 0 {
		return fmt.Sprintf("setcover: invalid input in set %d (element %d): %s", e.SetIndex, e.Element, e.Message)
	}
	return "setcover: invalid input: " + e.Message
}

// Unwrap returns ErrInvalidInput so callers can match with errors.Is.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// InfeasibleError reports the universe elements no candidate set contains.
type InfeasibleError struct {
	// Uncoverable holds the element ids outside the union of all sets,
	// sorted ascending.
	Uncoverable []int
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("setcover: no feasible cover: %d uncoverable element(s), first %v",
		len(e.Uncoverable), e.Uncoverable[0])
}

// Unwrap returns ErrInfeasible so callers can match with errors.Is.
func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasible
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "setcover: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig so callers can match with errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
