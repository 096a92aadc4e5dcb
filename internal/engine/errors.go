package engine

import (
	"errors"
	"fmt"
)

// InputErrorCode categorizes a rejected ResolveNamed call.
type InputErrorCode string

const (
	// ErrCodeUnknownBase indicates the base state name is not a preset.
	ErrCodeUnknownBase InputErrorCode = "UNKNOWN_BASE_STATE"

	// ErrCodeUnknownOutcome indicates the outcome name is not in the catalog.
	ErrCodeUnknownOutcome InputErrorCode = "UNKNOWN_OUTCOME"

	// ErrCodeOutsOutOfRange indicates outs before the play is not 0, 1 or 2.
	ErrCodeOutsOutOfRange InputErrorCode = "OUTS_OUT_OF_RANGE"
)

// InputError reports a query the engine cannot interpret.
//
// It is distinct from modeled illegality: an InputError means the caller
// named something that does not exist, not that the play is impossible.
type InputError struct {
	Code    InputErrorCode
	Message string
	Value   string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInputError returns true if err wraps an *InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

func newInputError(code InputErrorCode, message, value string) *InputError {
	return &InputError{Code: code, Message: message, Value: value}
}
