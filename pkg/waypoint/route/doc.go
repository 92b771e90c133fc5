// Package route resolves the current pathname to a view and moves focus
// after internal navigation.
//
// A Table maps pathnames to entries and always contains "/". Unknown
// pathnames resolve to the "/" entry; there is no not-found route.
//
// The Resolver renders through a Wrapper. The wrapper applies the title to
// the page chrome, renders a focusable heading and stores it in the Slot it
// receives. After a signal for a programmatic navigation the Resolver
// focuses whatever the slot holds; an empty slot is a ConfigurationError.
package route
