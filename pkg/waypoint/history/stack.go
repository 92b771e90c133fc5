package history

// Marker is the value written into entries created by programmatic navigation.
// It has no fields; only its presence matters.
type Marker struct{}

// Entry is a single session-history entry.
type Entry struct {
	Pathname string  `json:"pathname"`
	Marker   *Marker `json:"marker"`
}

// Programmatic reports whether the entry was written by Controller.Navigate.
func (e Entry) Programmatic() bool {
	return e.Marker != nil
}

// Stack is the session history: a list of entries and a cursor pointing at
// the current one. Entries after the cursor are the forward history.
type Stack struct {
	entries []Entry
	index   int
}

// NewStack creates a stack holding the page-load entry for pathname.
func NewStack(pathname string) *Stack {
	return &Stack{
		entries: []Entry{{Pathname: pathname}},
	}
}

// Push discards the forward history, appends entry and makes it current.
// Returns the resulting stack depth.
func (s *Stack) Push(entry Entry) int {
	s.entries = append(s.entries[:s.index+1], entry)
	s.index = len(s.entries) - 1
	return len(s.entries)
}

// Replace overwrites the current entry. Returns the stack depth, which is unchanged.
func (s *Stack) Replace(entry Entry) int {
	s.entries[s.index] = entry
	return len(s.entries)
}

// Load pushes an entry without a marker, as the host does for a page load
// it performed itself.
func (s *Stack) Load(pathname string) int {
	return s.Push(Entry{Pathname: pathname})
}

// Current returns the entry under the cursor.
func (s *Stack) Current() Entry {
	return s.entries[s.index]
}

// Go moves the cursor by delta. It returns false and leaves the cursor
// alone if the target falls outside the stack or delta is zero.
func (s *Stack) Go(delta int) bool {
	target := s.index + delta
	if delta == 0 || target < 0 || target >= len(s.entries) {
		return false
	}
	s.index = target
	return true
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Index returns the position of the cursor.
func (s *Stack) Index() int {
	return s.index
}

// Entries returns a copy of all entries, oldest first.
func (s *Stack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
