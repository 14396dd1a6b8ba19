// Package i18n translates the messages droidstrings prints.
//
// Catalogs are gettext PO files embedded from locales/<lang>/LC_MESSAGES/
// and read with gotext. Messages without a translation are printed as
// written in the source.
package i18n

import (
	"embed"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed all:locales
var locales embed.FS

// Domain is the gettext domain of the embedded catalogs.
const Domain = "droidstrings"

var (
	locale *gotext.Locale
	lang   string
)

// Init loads the catalog for l. An empty l is detected from the environment
// (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, as GNU gettext does). Calling Init
// again replaces the active catalog.
func Init(l string) {
	if l == "" {
		l = detectLanguage()
	}
	lang = l

	locale = gotext.NewLocaleFSWithPath(l, locales, "locales")
	locale.AddDomain(Domain)
	locale.SetDomain(Domain)
}

// Language returns the language passed to (or detected by) Init.
func Language() string {
	return lang
}

// T translates msgid.
func T(msgid string) string {
	if locale == nil {
		return msgid
	}
	return locale.Get(msgid)
}

// N translates a message with a plural form chosen by n.
func N(singular, plural string, n int) string {
	if locale == nil {
		if n == 1 {
			return singular
		}
		return plural
	}
	return locale.GetN(singular, plural, n)
}

func detectLanguage() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		// LANGUAGE is a colon-separated preference list
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		// ru_RU.UTF-8, de_DE@euro
		if i := strings.IndexAny(val, ".@"); i >= 0 {
			val = val[:i]
		}
		if val == "" || val == "C" || val == "POSIX" {
			continue
		}
		return val
	}
	return "en"
}
