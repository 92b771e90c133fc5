package route

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRootRoute indicates a table was built without a "/" entry.
	ErrNoRootRoute = errors.New("route table has no \"/\" entry")

	// ErrDuplicateRoute indicates two entries share a pathname.
	ErrDuplicateRoute = errors.New("duplicate route pathname")

	// ErrNoFocusTarget indicates the view wrapper rendered without filling the focus slot.
	ErrNoFocusTarget = errors.New("view wrapper registered no focus target")
)

// ConfigurationError reports a broken integration between the navigation
// engine and the application, such as a view wrapper that renders no
// focusable heading. It is not recoverable at runtime.
type ConfigurationError struct {
	Op       string // Operation that failed (e.g., "focus", "table")
	Pathname string // Pathname being handled, if any
	Err      error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Pathname != "" {
		return fmt.Sprintf("waypoint: %s %s: %v", e.Op, e.Pathname, e.Err)
	}
	return fmt.Sprintf("waypoint: %s: %v", e.Op, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op, pathname string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Pathname: pathname, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
