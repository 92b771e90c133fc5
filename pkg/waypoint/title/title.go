// Package title formats route titles for the page chrome.
package title

import "strings"

// DefaultSeparator joins a route title and the site name.
const DefaultSeparator = " | "

// Formatter turns a route title into the text shown in the page chrome.
type Formatter interface {
	Format(title string) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(title string) string

func (f FormatterFunc) Format(title string) string {
	return f(title)
}

// Plain shows the route title unchanged.
type Plain struct{}

func (Plain) Format(title string) string {
	return title
}

// Suffix appends the site name, e.g. "About | Docs".
// An empty title, or one equal to the site name, shows the site name alone.
type Suffix struct {
	Site      string
	Separator string // DefaultSeparator if empty
}

func (s Suffix) Format(title string) string {
	title = strings.TrimSpace(title)
	if s.Site == "" {
		return title
	}
	if title == "" || title == s.Site {
		return s.Site
	}

	sep := s.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return title + sep + s.Site
}
