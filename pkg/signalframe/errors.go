package signalframe

import (
	"errors"
	"fmt"
)

// InfrastructureError represents a runtime-level failure outside view
// handling, such as a bad config file or a missing input device. These errors
// are typically fatal for the simulator.
//
// Handler failures are not infrastructure errors; they surface as
// *router.HandlerError.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_input")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signalframe: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("signalframe: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
