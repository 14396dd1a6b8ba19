package android

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// langOverrides maps Android locale qualifiers to the codes used by the
// string set. Applied before the "-r" region marker is rewritten.
var langOverrides = map[string]string{
	"zh":     "zh-Hans",
	"zh-rCN": "zh-Hans",
	"zh-rHK": "zh-Hant",
	"en-rGB": "en-UK",
	"in":     "id",
	"nb":     "no",
}

// A two-letter ISO 639-1 language code, optionally followed by "-r" and a
// two-letter ISO 3166-1 region code.
var reValuesDir = regexp.MustCompile(`(?i)^` + BaseDirName + `-([a-z]{2}(-r[a-z]{2})?)$`)

// ResolveLanguage determines the language of a resource file or directory from
// its path. The bare values directory belongs to defaultLang. It returns
// ("", false) when no path segment names a language; such files are skipped.
//
//	ResolveLanguage("res/values-en-rUS/strings.xml", "en") → "en-US"
//	ResolveLanguage("res/values-zh-rCN/strings.xml", "en") → "zh-Hans"
//	ResolveLanguage("res/values/strings.xml", "en")        → "en"
func ResolveLanguage(path, defaultLang string) (string, bool) {
	for _, segment := range splitPath(path) {
		if segment == BaseDirName {
			return defaultLang, true
		}
		m := reValuesDir.FindStringSubmatch(segment)
		if m == nil {
			continue
		}
		lang := m[1]
		if o, ok := langOverrides[lang]; ok {
			lang = o
		}
		return strings.Replace(lang, "-r", "-", 1), true
	}
	return "", false
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}

// CanHandleDirectory reports whether dir looks like an Android res/ directory,
// i.e. one of its immediate entries starts with "values".
func CanHandleDirectory(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), BaseDirName) {
			return true
		}
	}
	return false
}

// OutputPathForLanguage returns the values directory name for lang. The
// default language is not special-cased: it also gets a "-<lang>" suffix.
func OutputPathForLanguage(lang string) string {
	return BaseDirName + "-" + lang
}
