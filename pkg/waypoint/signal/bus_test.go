package signal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBroadcastRunsHandlersInSubscriptionOrder(t *testing.T) {
	bus := New()
	var got []string

	bus.Subscribe(func() { got = append(got, "a") })
	bus.Subscribe(func() { got = append(got, "b") })
	bus.Subscribe(func() { got = append(got, "c") })

	bus.Broadcast()
	bus.Broadcast()

	want := []string{"a", "b", "c", "a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("handler order (-want +got):\n%s", diff)
	}
	if bus.Broadcasts() != 2 {
		t.Errorf("expected 2 broadcasts, got %d", bus.Broadcasts())
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	bus := New()
	calls := 0

	unsubscribe := bus.Subscribe(func() { calls++ })
	other := bus.Subscribe(func() {})

	unsubscribe()
	unsubscribe()

	if bus.Len() != 1 {
		t.Fatalf("expected 1 subscriber left, got %d", bus.Len())
	}

	bus.Broadcast()
	if calls != 0 {
		t.Fatalf("expected removed handler not to run, ran %d times", calls)
	}

	other()
	if bus.Len() != 0 {
		t.Fatalf("expected no subscribers, got %d", bus.Len())
	}
}

func TestHandlerCanUnsubscribeItself(t *testing.T) {
	bus := New()
	var got []string
	var unsubscribeA func()

	unsubscribeA = bus.Subscribe(func() {
		got = append(got, "a")
		unsubscribeA()
	})
	bus.Subscribe(func() { got = append(got, "b") })

	bus.Broadcast()
	bus.Broadcast()

	want := []string{"a", "b", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("handler calls (-want +got):\n%s", diff)
	}
}

func TestHandlerRemovedMidBroadcastIsSkipped(t *testing.T) {
	bus := New()
	var got []string
	var unsubscribeB func()

	bus.Subscribe(func() {
		got = append(got, "a")
		unsubscribeB()
	})
	unsubscribeB = bus.Subscribe(func() { got = append(got, "b") })
	bus.Subscribe(func() { got = append(got, "c") })

	bus.Broadcast()

	want := []string{"a", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("handler calls (-want +got):\n%s", diff)
	}
}

func TestHandlerAddedMidBroadcastWaitsForNext(t *testing.T) {
	bus := New()
	late := 0
	added := false

	bus.Subscribe(func() {
		if !added {
			added = true
			bus.Subscribe(func() { late++ })
		}
	})

	bus.Broadcast()
	if late != 0 {
		t.Fatalf("expected late subscriber to miss the current broadcast")
	}

	bus.Broadcast()
	if late != 1 {
		t.Fatalf("expected late subscriber to run once, ran %d times", late)
	}
}

func TestNestedBroadcastCompletesBeforeReturning(t *testing.T) {
	bus := New()
	depth := 0
	var got []int

	bus.Subscribe(func() {
		depth++
		got = append(got, depth)
		if depth == 1 {
			bus.Broadcast()
		}
	})

	bus.Broadcast()

	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("nested broadcast (-want +got):\n%s", diff)
	}
	if bus.Broadcasts() != 2 {
		t.Errorf("expected 2 broadcasts, got %d", bus.Broadcasts())
	}
}
