// Package waypoint is a client-side navigation engine for applications with
// a small, fixed set of routes.
//
// It keeps three things in step: the session history, the rendered view and
// the links that indicate the current page. Link activation writes a marked
// history entry and fires a navigation signal; the route resolver and every
// link tracker react to that one signal by reading the live location. Focus
// moves to the new view's heading only after programmatic navigation, never
// on the initial load.
package waypoint

import (
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/frame"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/history"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/link"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/route"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/signal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/title"
)

// Options configures an App.
type Options struct {
	InitialPathname string               // Pathname of the page load, "/" if empty
	Chrome          frame.Chrome         // Where titles are shown (required unless Wrapper is set)
	TitleFormatter  title.Formatter      // Title policy, titles unchanged if nil
	Mount           frame.MountFunc      // Renders a view and returns its heading (required unless Wrapper is set)
	Wrapper         route.Wrapper        // Custom view wrapper, replaces Chrome/TitleFormatter/Mount
	OnFailure       route.FailureHandler // Receives configuration errors, panics if nil
	Logger          *slog.Logger         // Logger for all components, internal logger if nil
	LogPath         string               // Full path for log file including filename (creates parent directories)
	LogLevel        string               // "debug", "info", "warn" or "error"
}

// App wires the navigation signal, history, resolver and links together.
type App struct {
	bus      *signal.Bus
	history  *history.Controller
	resolver *route.Resolver
	log      *slog.Logger

	links map[*link.Tracker]struct{}
}

// New creates an App over table and renders the view for the initial pathname.
// It fails with a ConfigurationError if neither a Wrapper nor both Chrome
// and Mount are set.
func New(table *route.Table, options Options) (*App, error) {
	if options.Wrapper == nil {
		if options.Chrome == nil {
			return nil, route.NewConfigurationError("options", "", ErrNoChrome)
		}
		if options.Mount == nil {
			return nil, route.NewConfigurationError("options", "", ErrNoMount)
		}
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetInternalLogLevel(internal.ParseLevel(options.LogLevel))
	}

	log := options.Logger
	if log == nil {
		log = internal.GetInternalLogger()
	}

	start := options.InitialPathname
	if start == "" {
		start = route.Root
	}

	wrapper := options.Wrapper
	if wrapper == nil {
		wrapper = frame.New(options.Chrome, options.TitleFormatter, options.Mount)
	}

	bus := signal.New()
	nav := history.NewController(history.NewStack(start), bus, history.WithLogger(log))

	resolverOpts := []route.Option{route.WithLogger(log)}
	if options.OnFailure != nil {
		resolverOpts = append(resolverOpts, route.WithFailureHandler(options.OnFailure))
	}

	return &App{
		bus:      bus,
		history:  nav,
		resolver: route.NewResolver(table, nav, bus, wrapper, resolverOpts...),
		log:      log,
		links:    make(map[*link.Tracker]struct{}),
	}, nil
}

// Link creates a tracker for a link to target. It stays subscribed until
// disposed or until the App is closed. The App uses link.WithOnDispose itself,
// so one passed in opts is replaced.
func (a *App) Link(target string, opts ...link.Option) *link.Tracker {
	opts = append([]link.Option{link.WithLogger(a.log)}, opts...)
	opts = append(opts, link.WithOnDispose(a.forget))
	t := link.New(target, a.history, a.bus, opts...)
	a.links[t] = struct{}{}
	return t
}

func (a *App) forget(t *link.Tracker) {
	delete(a.links, t)
}

// Navigate performs programmatic navigation to target.
func (a *App) Navigate(target string) int {
	return a.history.Navigate(target)
}

// Back moves one entry back in the session history.
func (a *App) Back() bool {
	return a.history.Back()
}

// Forward moves one entry forward in the session history.
func (a *App) Forward() bool {
	return a.history.Forward()
}

// Pathname returns the pathname the resolver is showing.
func (a *App) Pathname() string {
	return a.resolver.Pathname()
}

// Route returns the route entry being shown.
func (a *App) Route() route.Entry {
	return a.resolver.Route()
}

// History returns the history controller.
func (a *App) History() *history.Controller {
	return a.history
}

// Signal returns the navigation signal.
func (a *App) Signal() *signal.Bus {
	return a.bus
}

// Close disposes the resolver and every link created through the App.
func (a *App) Close() {
	for t := range a.links {
		t.Dispose()
	}
	a.resolver.Dispose()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before New or GetLogger to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
