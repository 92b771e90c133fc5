// Package frame is the standard view wrapper: it shows the route title in
// the page chrome, mounts the view and registers the view's heading as the
// focus target.
package frame

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/route"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/title"
)

// Chrome is the part of the host that displays the page title,
// such as a document title or a window caption.
type Chrome interface {
	SetTitle(title string)
}

// MountFunc renders view and returns its focusable heading.
// Returning nil leaves the focus slot empty, which the resolver reports as
// a configuration error on the next navigation.
type MountFunc func(view route.View, title string) route.FocusTarget

// Frame implements route.Wrapper.
type Frame struct {
	chrome Chrome
	format title.Formatter
	mount  MountFunc
}

// New creates a Frame. A nil format shows titles unchanged.
func New(chrome Chrome, format title.Formatter, mount MountFunc) *Frame {
	if format == nil {
		format = title.Plain{}
	}
	return &Frame{
		chrome: chrome,
		format: format,
		mount:  mount,
	}
}

func (f *Frame) Render(props route.Props) {
	f.chrome.SetTitle(f.format.Format(props.Title))

	if heading := f.mount(props.View, props.Title); heading != nil {
		props.Slot.Set(heading)
	}
}

// Heading is a minimal focus target for hosts without their own widgets.
type Heading struct {
	Text    string
	OnFocus func()

	focused int
}

// NewHeading creates a Heading showing text.
func NewHeading(text string) *Heading {
	return &Heading{Text: text}
}

func (h *Heading) Focus() {
	h.focused++
	if h.OnFocus != nil {
		h.OnFocus()
	}
}

// Focused returns how many times the heading received focus.
func (h *Heading) Focused() int {
	return h.focused
}

// MemoryChrome keeps the title in memory.
type MemoryChrome struct {
	title   string
	history []string
}

func (c *MemoryChrome) SetTitle(title string) {
	c.title = title
	c.history = append(c.history, title)
}

// Title returns the last title set.
func (c *MemoryChrome) Title() string {
	return c.title
}

// Titles returns every title set, oldest first.
func (c *MemoryChrome) Titles() []string {
	return append([]string(nil), c.history...)
}
