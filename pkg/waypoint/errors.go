package waypoint

import (
	"errors"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/route"
)

// ConfigurationError reports a broken integration, such as a view wrapper
// that renders no focusable heading.
type ConfigurationError = route.ConfigurationError

// Sentinel errors for configuration problems.
var (
	ErrNoRootRoute    = route.ErrNoRootRoute
	ErrDuplicateRoute = route.ErrDuplicateRoute
	ErrNoFocusTarget  = route.ErrNoFocusTarget

	// ErrNoChrome indicates Options set neither a Wrapper nor a Chrome.
	ErrNoChrome = errors.New("options set no wrapper and no chrome")

	// ErrNoMount indicates Options set neither a Wrapper nor a Mount function.
	ErrNoMount = errors.New("options set no wrapper and no mount function")
)

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return route.IsConfigurationError(err)
}
