package history

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewStackHoldsPageLoadEntry(t *testing.T) {
	s := NewStack("/docs")

	if s.Len() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Len())
	}
	if got := s.Current(); got.Pathname != "/docs" || got.Programmatic() {
		t.Fatalf("expected unmarked /docs entry, got %+v", got)
	}
}

func TestPushDiscardsForwardHistory(t *testing.T) {
	s := NewStack("/")
	s.Push(Entry{Pathname: "/a", Marker: &Marker{}})
	s.Push(Entry{Pathname: "/b", Marker: &Marker{}})

	if !s.Go(-2) {
		t.Fatalf("expected to move back two entries")
	}
	if depth := s.Push(Entry{Pathname: "/c", Marker: &Marker{}}); depth != 2 {
		t.Fatalf("expected depth 2 after push from the start, got %d", depth)
	}

	var got []string
	for _, e := range s.Entries() {
		got = append(got, e.Pathname)
	}
	if diff := cmp.Diff([]string{"/", "/c"}, got); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
}

func TestReplaceKeepsDepth(t *testing.T) {
	s := NewStack("/")
	s.Push(Entry{Pathname: "/a", Marker: &Marker{}})

	if depth := s.Replace(Entry{Pathname: "/b", Marker: &Marker{}}); depth != 2 {
		t.Fatalf("expected depth 2, got %d", depth)
	}
	if s.Current().Pathname != "/b" {
		t.Fatalf("expected /b to be current, got %s", s.Current().Pathname)
	}
}

func TestGoOutOfRange(t *testing.T) {
	s := NewStack("/")
	s.Push(Entry{Pathname: "/a", Marker: &Marker{}})

	for _, delta := range []int{0, 1, -2, 5} {
		if s.Go(delta) {
			t.Errorf("expected Go(%d) to fail", delta)
		}
	}
	if s.Index() != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", s.Index())
	}
}

func TestLoadWritesNoMarker(t *testing.T) {
	s := NewStack("/")
	s.Load("/about")

	if s.Current().Programmatic() {
		t.Fatalf("expected host load entry to be unmarked")
	}
	if s.Len() != 2 {
		t.Fatalf("expected depth 2, got %d", s.Len())
	}
}

func TestEntryJSON(t *testing.T) {
	cases := []struct {
		entry Entry
		want  string
	}{
		{Entry{Pathname: "/"}, `{"pathname":"/","marker":null}`},
		{Entry{Pathname: "/about", Marker: &Marker{}}, `{"pathname":"/about","marker":{}}`},
	}

	for _, tc := range cases {
		data, err := json.Marshal(tc.entry)
		if err != nil {
			t.Fatalf("marshal %+v: %v", tc.entry, err)
		}
		if string(data) != tc.want {
			t.Errorf("expected %s, got %s", tc.want, data)
		}
	}
}
