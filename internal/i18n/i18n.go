package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var translator *i18n.Localizer

// Init builds the message bundle and sets the package localizer. An empty
// locale falls back to the environment (LC_ALL, LANG) and then to English.
func Init(locale string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load locale %s: %w", entry.Name(), err)
		}
	}

	if locale == "" {
		locale = detectLocale()
	}
	translator = i18n.NewLocalizer(bundle, locale, language.English.String())
	return translator, nil
}

// T returns the localized message for the id, or the id itself when the
// catalog has no entry for it.
func T(messageID string) string {
	if translator == nil {
		if _, err := Init(""); err != nil {
			return messageID
		}
	}
	msg, err := translator.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

func detectLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(key)
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		tag, err := language.Parse(strings.ReplaceAll(val, "_", "-"))
		if err != nil {
			continue
		}
		return tag.String()
	}
	return language.English.String()
}
