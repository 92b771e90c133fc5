// Command routecheck loads a route file and prints how pathnames resolve.
//
//	routecheck -config routes.toml -messages active.de.toml /about /missing
//
// Without pathnames it prints every route in the file. Titles are formatted
// the way the file's site and language settings format them in an app.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/config"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/route"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/title"
)

func main() {
	configPath := flag.String("config", "routes.toml", "route file (TOML, or YAML by extension)")
	messagesPath := flag.String("messages", "", "message file used to translate titles into the file's language")
	flag.Parse()

	if err := run(os.Stdout, *configPath, *messagesPath, flag.Args()); err != nil {
		log.Fatal(err)
	}
	waypoint.CloseLogger()
}

func run(w io.Writer, configPath, messagesPath string, pathnames []string) error {
	file, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var bundle *i18n.Bundle
	if messagesPath != "" {
		if bundle, err = title.LoadBundle("en", messagesPath); err != nil {
			return err
		}
	}

	opts := file.Options(bundle)
	if opts.LogPath != "" {
		waypoint.SetLogPath(opts.LogPath)
	}
	if opts.LogLevel != "" {
		waypoint.SetRawLogLevel(opts.LogLevel)
	}
	waypoint.GetLogger().Debug("route file loaded", "path", configPath, "routes", len(file.Routes), "language", file.Language)

	// No real views here; each view resolves to its own name.
	views := make(map[string]route.View)
	for _, name := range file.ViewNames() {
		views[name] = name
	}

	table, err := file.Table(views)
	if err != nil {
		return err
	}

	if len(pathnames) == 0 {
		pathnames = table.Pathnames()
	}

	format := opts.TitleFormatter
	for _, p := range pathnames {
		entry := table.Resolve(p)
		marker := ""
		if entry.Pathname != p {
			marker = " (fallback)"
		}
		fmt.Fprintf(w, "%s -> %s [%v] %q%s\n", p, entry.Pathname, entry.View, format.Format(entry.Title), marker)
	}
	return nil
}
