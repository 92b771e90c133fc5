package history

import (
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/signal"
)

func newTestController(start string) (*Controller, *signal.Bus) {
	bus := signal.New()
	return NewController(NewStack(start), bus, WithLogger(internal.Discard())), bus
}

func TestNavigatePushesNewPathname(t *testing.T) {
	nav, bus := newTestController("/")

	if depth := nav.Navigate("/about"); depth != 2 {
		t.Fatalf("expected depth 2, got %d", depth)
	}
	if nav.Pathname() != "/about" {
		t.Fatalf("expected /about, got %s", nav.Pathname())
	}
	if !nav.Current().Programmatic() {
		t.Fatalf("expected marker on pushed entry")
	}
	if bus.Broadcasts() != 1 {
		t.Fatalf("expected exactly one broadcast, got %d", bus.Broadcasts())
	}
}

func TestNavigateToCurrentPathnameReplaces(t *testing.T) {
	nav, bus := newTestController("/")
	nav.Navigate("/about")

	if depth := nav.Navigate("/about"); depth != 2 {
		t.Fatalf("expected depth to stay 2, got %d", depth)
	}
	if bus.Broadcasts() != 2 {
		t.Fatalf("expected two broadcasts, got %d", bus.Broadcasts())
	}
}

func TestNavigateMarksPageLoadEntryOnReplace(t *testing.T) {
	nav, _ := newTestController("/")

	nav.Navigate("/")

	if nav.Stack().Len() != 1 {
		t.Fatalf("expected depth 1, got %d", nav.Stack().Len())
	}
	if !nav.Current().Programmatic() {
		t.Fatalf("expected replaced entry to carry a marker")
	}
}

func TestNavigateReadsLivePathname(t *testing.T) {
	nav, _ := newTestController("/")
	nav.Navigate("/about")
	nav.Back()

	// The live location is "/" again, so navigating to /about must push.
	if depth := nav.Navigate("/about"); depth != 2 {
		t.Fatalf("expected push to depth 2, got %d", depth)
	}
	if nav.Stack().Index() != 1 {
		t.Fatalf("expected cursor at 1, got %d", nav.Stack().Index())
	}
}

func TestHandlersSeeMutatedHistory(t *testing.T) {
	nav, bus := newTestController("/")
	var seen string

	bus.Subscribe(func() { seen = nav.Pathname() })
	nav.Navigate("/contact")

	if seen != "/contact" {
		t.Fatalf("expected handler to read /contact, got %q", seen)
	}
}

func TestTraversalBroadcastsOnlyWhenMoved(t *testing.T) {
	nav, bus := newTestController("/")

	if nav.Back() {
		t.Fatalf("expected Back to fail on a single entry")
	}
	if bus.Broadcasts() != 0 {
		t.Fatalf("expected no broadcast, got %d", bus.Broadcasts())
	}

	nav.Navigate("/a")
	if !nav.Back() || nav.Pathname() != "/" {
		t.Fatalf("expected Back to land on /, got %s", nav.Pathname())
	}
	if nav.Current().Programmatic() {
		t.Fatalf("expected page-load entry to keep its nil marker")
	}
	if !nav.Forward() || nav.Pathname() != "/a" {
		t.Fatalf("expected Forward to land on /a, got %s", nav.Pathname())
	}
	if bus.Broadcasts() != 3 {
		t.Fatalf("expected 3 broadcasts, got %d", bus.Broadcasts())
	}
}
