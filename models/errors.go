package models

import (
	"errors"
	"fmt"
)

// Base errors per failure class. Specific errors wrap one of these so callers
// can branch with errors.Is while still seeing the concrete reason.
var ErrValidation = errors.New("")            // Base error for invalid input
var ErrNotFound = errors.New("")              // Base error for missing records
var ErrTerminalState = errors.New("")         // Base error for mutations on finished dockets
var ErrUnauthorizedTransition = errors.New("") // Base error for role/identity violations
var ErrPrecondition = errors.New("")          // Base error for state preconditions
var ErrInvalidSignature = errors.New("")      // Base error for proof signature payloads
var ErrConflict = errors.New("")              // Base error for concurrent write conflicts
var ErrResolverUnavailable = errors.New("")   // Base error for region resolver outages

var ErrDocketNotFound = fmt.Errorf("docket not found%w", ErrNotFound)
var ErrGoodsTypeNotFound = fmt.Errorf("goods type not found%w", ErrNotFound)
var ErrUserNotFound = fmt.Errorf("user not found%w", ErrNotFound)
var ErrDocketVersionConflict = fmt.Errorf("docket was modified concurrently%w", ErrConflict)

// ValidationError builds a field-specific validation failure.
func ValidationError(field, reason string) error {
	return fmt.Errorf("%s: %s%w", field, reason, ErrValidation)
}

// TerminalStateError reports a mutation attempt on a finished docket.
func TerminalStateError(status DocketStatus) error {
	return fmt.Errorf("docket is %s and can no longer change%w", status, ErrTerminalState)
}

// UnauthorizedTransitionError reports a transition the actor may not perform.
func UnauthorizedTransitionError(reason string) error {
	return fmt.Errorf("%s%w", reason, ErrUnauthorizedTransition)
}

// PreconditionError reports an operation attempted from the wrong state.
func PreconditionError(reason string) error {
	return fmt.Errorf("%s%w", reason, ErrPrecondition)
}

// InvalidSignatureError reports a missing or malformed signature payload.
func InvalidSignatureError(reason string) error {
	return fmt.Errorf("%s%w", reason, ErrInvalidSignature)
}

// ResolverUnavailableError wraps an infrastructure failure of the region
// resolver so callers can tell "try again" from "fix your input".
func ResolverUnavailableError(err error) error {
	return fmt.Errorf("region resolver: %v%w", err, ErrResolverUnavailable)
}
