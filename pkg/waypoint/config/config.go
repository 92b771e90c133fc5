// Package config loads route tables from TOML or YAML files.
//
//	site = "Docs"
//	log_level = "debug"
//
//	[[routes]]
//	path = "/"
//	title = "Home"
//	view = "home"
//
// Views are referenced by name and looked up in a registry the
// application provides, since files cannot hold renderable content.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/route"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/title"
)

// ErrUnknownView indicates a route names a view missing from the registry.
var ErrUnknownView = errors.New("unknown view")

// Format identifies a route file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Route is one route as written in a file.
type Route struct {
	Path  string `toml:"path" yaml:"path"`
	Title string `toml:"title" yaml:"title"`
	View  string `toml:"view" yaml:"view"`
}

// File is the decoded contents of a route file.
type File struct {
	Site     string  `toml:"site" yaml:"site"`
	Language string  `toml:"language" yaml:"language"`
	LogLevel string  `toml:"log_level" yaml:"log_level"`
	LogPath  string  `toml:"log_path" yaml:"log_path"`
	Routes   []Route `toml:"routes" yaml:"routes"`
}

// FormatFor picks the format from a file extension. Anything that is not
// .yaml or .yml is read as TOML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads and decodes the route file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open route file: %w", err)
	}
	defer f.Close()

	return Decode(f, FormatFor(path))
}

// Decode reads a route file in the given format.
func Decode(r io.Reader, format Format) (*File, error) {
	var file File

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported route file format %q", format)
	}

	return &file, nil
}

// Table builds a route table, resolving view names through views.
func (f *File) Table(views map[string]route.View) (*route.Table, error) {
	entries := make([]route.Entry, 0, len(f.Routes))

	for _, r := range f.Routes {
		view, ok := views[r.View]
		if !ok {
			return nil, route.NewConfigurationError("view", r.Path, fmt.Errorf("%w %q", ErrUnknownView, r.View))
		}
		entries = append(entries, route.Entry{
			Pathname: r.Path,
			Title:    r.Title,
			View:     view,
		})
	}

	return route.NewTable(entries...)
}

// Formatter returns the file's title policy: route titles suffixed with the
// site name, translated into Language first when it is set and bundle is not nil.
func (f *File) Formatter(bundle *i18n.Bundle) title.Formatter {
	suffix := title.Suffix{Site: f.Site}
	if f.Language == "" || bundle == nil {
		return suffix
	}
	return title.NewLocalized(bundle, suffix, f.Language)
}

// Options returns app options carrying the file's logging and title settings.
// Chrome and Mount are left for the application to fill in.
func (f *File) Options(bundle *i18n.Bundle) waypoint.Options {
	return waypoint.Options{
		TitleFormatter: f.Formatter(bundle),
		LogPath:        f.LogPath,
		LogLevel:       f.LogLevel,
	}
}

// ViewNames returns the distinct view names referenced by the file, in file order.
func (f *File) ViewNames() []string {
	seen := make(map[string]bool, len(f.Routes))
	var names []string
	for _, r := range f.Routes {
		if !seen[r.View] {
			seen[r.View] = true
			names = append(names, r.View)
		}
	}
	return names
}
