package landmarks

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned by screens shown before Init succeeded.
var ErrNotInitialized = errors.New("landmarks: Init has not been called")

// InfrastructureError represents a failure of the UI layer itself (SDL
// could not start, a font is missing, the theme file is broken). The app
// cannot recover from these at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_theme")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("landmarks: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("landmarks: %s", e.Op)
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
