// Package history models the session-history stack and the controller
// that performs programmatic navigation on it.
//
// # Markers
//
// Every Entry carries a Marker pointer. A nil marker means the entry came
// from a page load the host performed on its own. A non-nil marker means the
// entry was written by Controller.Navigate. Consumers classify a navigation
// signal by looking at the marker of the current entry, never at where the
// signal came from.
//
// # Basic Usage
//
//	bus := signal.New()
//	stack := history.NewStack("/")
//	nav := history.NewController(stack, bus)
//
//	nav.Navigate("/about") // push, broadcast
//	nav.Navigate("/about") // replace, broadcast
//	nav.Back()             // cursor moves to "/", broadcast
package history
