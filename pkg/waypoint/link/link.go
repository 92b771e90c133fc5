// Package link tracks whether a link points at the current page and turns
// link activation into programmatic navigation.
package link

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/signal"
)

// AriaCurrentPage is the indicator value for a link to the current page.
const AriaCurrentPage = "page"

// Navigator reads the live pathname and performs navigation.
type Navigator interface {
	Pathname() string
	Navigate(target string) int
}

// Subscriber is the navigation signal.
type Subscriber interface {
	Subscribe(handler signal.Handler) (unsubscribe func())
}

// Event is the activation event of the underlying link element.
type Event interface {
	PreventDefault()
}

// Tracker is the state behind one rendered link.
type Tracker struct {
	target  string
	nav     Navigator
	current bool

	onChange  func(current bool)
	onDispose func(*Tracker)
	log       *slog.Logger

	unsubscribe func()
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithOnChange registers fn to run whenever IsCurrent flips.
func WithOnChange(fn func(current bool)) Option {
	return func(t *Tracker) {
		t.onChange = fn
	}
}

// WithOnDispose registers fn to run once when the Tracker is disposed.
func WithOnDispose(fn func(*Tracker)) Option {
	return func(t *Tracker) {
		t.onDispose = fn
	}
}

// WithLogger sets the logger used for activation events.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// New creates a Tracker for target and subscribes it to sig until Dispose.
func New(target string, nav Navigator, sig Subscriber, opts ...Option) *Tracker {
	t := &Tracker{
		target: target,
		nav:    nav,
		log:    internal.GetInternalLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.current = nav.Pathname() == target
	t.unsubscribe = sig.Subscribe(t.refresh)
	return t
}

func (t *Tracker) refresh() {
	current := t.nav.Pathname() == t.target
	if current == t.current {
		return
	}

	t.current = current
	if t.onChange != nil {
		t.onChange(current)
	}
}

// Activate handles a click on the link: it suppresses the element's own
// navigation and navigates to the target, even if it is already current.
// Does nothing once the Tracker is disposed.
func (t *Tracker) Activate(ev Event) {
	if t.unsubscribe == nil {
		return
	}
	if ev != nil {
		ev.PreventDefault()
	}

	t.log.Debug("link activated", "target", t.target, "current", t.current)
	t.nav.Navigate(t.target)
}

// Target returns the pathname the link points at.
func (t *Tracker) Target() string {
	return t.target
}

// IsCurrent reports whether the target is the current pathname.
func (t *Tracker) IsCurrent() bool {
	return t.current
}

// AriaCurrent returns AriaCurrentPage for a current link and "" otherwise.
func (t *Tracker) AriaCurrent() string {
	if t.current {
		return AriaCurrentPage
	}
	return ""
}

// Dispose unsubscribes the Tracker. Safe to call more than once.
func (t *Tracker) Dispose() {
	if t.unsubscribe != nil {
		t.unsubscribe()
		t.unsubscribe = nil
		if t.onDispose != nil {
			t.onDispose(t)
		}
	}
}
