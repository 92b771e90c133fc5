package route

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/history"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/signal"
)

// Location reads the live session history.
type Location interface {
	Pathname() string
	Current() history.Entry
}

// Subscriber is the navigation signal.
type Subscriber interface {
	Subscribe(handler signal.Handler) (unsubscribe func())
}

// Props is what the Resolver hands to the view wrapper.
type Props struct {
	Pathname string // Pathname of the resolved route, "/" for fallbacks
	Title    string
	View     View
	Slot     *Slot // Must hold the view's heading when Render returns
}

// Wrapper is the view-wrapper collaborator.
type Wrapper interface {
	Render(props Props)
}

// WrapperFunc adapts a function to Wrapper.
type WrapperFunc func(props Props)

func (f WrapperFunc) Render(props Props) {
	f(props)
}

// FailureHandler receives configuration errors raised while handling a signal.
type FailureHandler func(err *ConfigurationError)

// Resolver keeps the rendered view in step with the session history.
type Resolver struct {
	table    *Table
	location Location
	wrapper  Wrapper
	slot     *Slot

	pathname string
	fail     FailureHandler
	log      *slog.Logger

	unsubscribe func()
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for resolution events.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithFailureHandler replaces the default failure handler, which panics.
func WithFailureHandler(fn FailureHandler) Option {
	return func(r *Resolver) {
		r.fail = fn
	}
}

// NewResolver renders the view for the live pathname and subscribes to sig.
// The first render never moves focus.
func NewResolver(table *Table, location Location, sig Subscriber, wrapper Wrapper, opts ...Option) *Resolver {
	r := &Resolver{
		table:    table,
		location: location,
		wrapper:  wrapper,
		slot:     &Slot{},
		pathname: location.Pathname(),
		fail:     panicOnFailure,
		log:      internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.render()
	r.unsubscribe = sig.Subscribe(r.handle)
	return r
}

func panicOnFailure(err *ConfigurationError) {
	panic(err)
}

func (r *Resolver) handle() {
	if !r.location.Current().Programmatic() {
		// Page-load entry: leave the view and focus where the host put them.
		r.log.Debug("ignoring signal for unmarked entry", "pathname", r.location.Pathname())
		return
	}

	// Pathnames resolving to the mounted entry keep the mounted view.
	next := r.location.Pathname()
	previous := r.Route().Pathname
	r.pathname = next
	if r.Route().Pathname != previous {
		r.render()
	}

	target := r.slot.Get()
	if target == nil {
		err := NewConfigurationError("focus", r.pathname, ErrNoFocusTarget)
		r.log.Error("navigation could not move focus", "error", err)
		r.fail(err)
		return
	}

	target.Focus()
}

func (r *Resolver) render() {
	entry := r.Route()
	r.slot.Clear()

	r.log.Debug("rendering route", "pathname", r.pathname, "route", entry.Pathname)
	r.wrapper.Render(Props{
		Pathname: entry.Pathname,
		Title:    entry.Title,
		View:     entry.View,
		Slot:     r.slot,
	})
}

// Pathname returns the pathname the Resolver last accepted.
func (r *Resolver) Pathname() string {
	return r.pathname
}

// Route returns the entry the current pathname resolves to.
func (r *Resolver) Route() Entry {
	return r.table.Resolve(r.pathname)
}

// Slot returns the focus slot shared with the view wrapper.
func (r *Resolver) Slot() *Slot {
	return r.slot
}

// Dispose stops listening for signals. Safe to call more than once.
func (r *Resolver) Dispose() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
