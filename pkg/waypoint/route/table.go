package route

import (
	"fmt"
	"sort"
)

// Root is the pathname every unknown pathname resolves to.
const Root = "/"

// View is whatever the application renders for a route. The engine never
// looks inside it.
type View any

// Entry is a single route.
type Entry struct {
	Pathname string
	Title    string
	View     View
}

// Table is an immutable pathname to Entry mapping containing Root.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a Table. It fails if Root is missing or a pathname repeats.
func NewTable(entries ...Entry) (*Table, error) {
	t := &Table{entries: make(map[string]Entry, len(entries))}

	for _, e := range entries {
		if _, exists := t.entries[e.Pathname]; exists {
			return nil, NewConfigurationError("table", e.Pathname, ErrDuplicateRoute)
		}
		t.entries[e.Pathname] = e
	}

	if _, ok := t.entries[Root]; !ok {
		return nil, NewConfigurationError("table", "", ErrNoRootRoute)
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. Intended for tables
// written out in source.
func MustTable(entries ...Entry) *Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(fmt.Sprintf("route: %v", err))
	}
	return t
}

// Get returns the entry for exactly pathname.
func (t *Table) Get(pathname string) (Entry, bool) {
	e, ok := t.entries[pathname]
	return e, ok
}

// Resolve returns the entry for pathname, or the Root entry if there is none.
func (t *Table) Resolve(pathname string) Entry {
	if e, ok := t.entries[pathname]; ok {
		return e
	}
	return t.entries[Root]
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Pathnames returns all route pathnames in sorted order.
func (t *Table) Pathnames() []string {
	out := make([]string, 0, len(t.entries))
	for p := range t.entries {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
