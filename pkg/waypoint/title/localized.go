package title

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
)

// LoadBundle creates a message bundle for defaultLang and loads the given
// message files. Files may be TOML, YAML or JSON, named like "active.de.toml".
func LoadBundle(defaultLang string, paths ...string) (*i18n.Bundle, error) {
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("failed to load messages %s: %w", path, err)
		}
	}

	return bundle, nil
}

// Localized translates route titles, using each title as its message id,
// and passes the result to Next. Titles without a translation are used as is.
type Localized struct {
	localizer *i18n.Localizer
	next      Formatter
	log       *slog.Logger
}

// NewLocalized creates a Localized formatter preferring langs in order.
// A nil next shows the translation unchanged.
func NewLocalized(bundle *i18n.Bundle, next Formatter, langs ...string) *Localized {
	if next == nil {
		next = Plain{}
	}
	return &Localized{
		localizer: i18n.NewLocalizer(bundle, langs...),
		next:      next,
		log:       internal.GetInternalLogger(),
	}
}

func (l *Localized) Format(title string) string {
	translated, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: title})
	if err != nil || translated == "" {
		l.log.Debug("no translation for title", "title", title, "error", err)
		translated = title
	}
	return l.next.Format(translated)
}
