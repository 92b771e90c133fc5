package route

// FocusTarget is the heading of a mounted view.
type FocusTarget interface {
	Focus()
}

// Slot holds the FocusTarget of the currently mounted view. The view
// wrapper fills it while rendering; the Resolver empties it before every
// render so a stale heading is never focused.
type Slot struct {
	target FocusTarget
}

// Set registers target as the focus target.
func (s *Slot) Set(target FocusTarget) {
	s.target = target
}

// Get returns the registered target, or nil.
func (s *Slot) Get() FocusTarget {
	return s.target
}

// Clear removes the registered target.
func (s *Slot) Clear() {
	s.target = nil
}
