package history

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// Broadcaster is the signal fired after every history change.
type Broadcaster interface {
	Broadcast()
}

// Controller performs programmatic navigation on a Stack and announces it.
type Controller struct {
	stack  *Stack
	signal Broadcaster
	log    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for navigation events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// NewController creates a Controller that mutates stack and fires signal.
func NewController(stack *Stack, signal Broadcaster, opts ...Option) *Controller {
	c := &Controller{
		stack:  stack,
		signal: signal,
		log:    internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Navigate makes target the current pathname and broadcasts.
// If target already is the live pathname the current entry is replaced,
// so a repeated click never leaves two identical entries to back out of.
// Returns the resulting stack depth.
func (c *Controller) Navigate(target string) int {
	entry := Entry{Pathname: target, Marker: &Marker{}}

	var depth int
	if c.stack.Current().Pathname == target {
		depth = c.stack.Replace(entry)
		c.log.Debug("history entry replaced", "pathname", target, "depth", depth)
	} else {
		depth = c.stack.Push(entry)
		c.log.Debug("history entry pushed", "pathname", target, "depth", depth)
	}

	c.signal.Broadcast()
	return depth
}

// Back moves one entry back and broadcasts. Returns false at the oldest entry.
func (c *Controller) Back() bool {
	return c.Go(-1)
}

// Forward moves one entry forward and broadcasts. Returns false at the newest entry.
func (c *Controller) Forward() bool {
	return c.Go(1)
}

// Go traverses delta entries and broadcasts, like the host's back and
// forward buttons. Markers are left as they are. Nothing is broadcast
// if the traversal is out of range.
func (c *Controller) Go(delta int) bool {
	if !c.stack.Go(delta) {
		return false
	}

	c.log.Debug("history traversed", "delta", delta, "pathname", c.stack.Current().Pathname)
	c.signal.Broadcast()
	return true
}

// Pathname returns the live current pathname.
func (c *Controller) Pathname() string {
	return c.stack.Current().Pathname
}

// Current returns the live current entry.
func (c *Controller) Current() Entry {
	return c.stack.Current()
}

// Stack returns the underlying session history.
func (c *Controller) Stack() *Stack {
	return c.stack
}
