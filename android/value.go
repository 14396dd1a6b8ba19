package android

import (
	"html"
	"regexp"
	"strings"

	"github.com/minios-linux/droidstrings/placeholder"
)

// SpaceEscape is the escape Android keeps intact at the edges of a value.
// Literal leading and trailing spaces are trimmed by the resource loader.
const SpaceEscape = "\\u0020"

// SpaceEscapeWidth is the length of SpaceEscape in bytes. Decoding turns a run
// of escapes into runLength/SpaceEscapeWidth spaces.
const SpaceEscapeWidth = len(SpaceEscape)

// Step is one string transformation of a pipeline.
type Step func(string) string

// Pipeline is an ordered list of steps. The order matters: each step assumes
// the escaping done (or undone) by the steps before it.
type Pipeline []Step

// Apply runs s through every step in order.
func (p Pipeline) Apply(s string) string {
	for _, step := range p {
		s = step(s)
	}
	return s
}

// NewDecoder returns the pipeline that turns a raw strings.xml value into
// canonical text.
func NewDecoder(ph placeholder.Converter) Pipeline {
	return Pipeline{
		html.UnescapeString,
		UnescapeApostrophes,
		UnescapeQuotes,
		ph.ToCanonical,
		UnescapeAt,
		UnescapeEdgeSpaces,
	}
}

// NewEncoder returns the pipeline that turns canonical text into a value that
// can be written between <string> tags.
func NewEncoder(ph placeholder.Converter) Pipeline {
	return Pipeline{
		EscapeQuotes,
		EscapeApostrophes,
		EscapeMarkup,
		ph.ToPlatform,
		EscapeAt,
		EscapeEdgeSpaces,
	}
}

var (
	decoder = NewDecoder(placeholder.Android)
	encoder = NewEncoder(placeholder.Android)
)

// Decode converts a raw strings.xml value into canonical text.
func Decode(raw string) string { return decoder.Apply(raw) }

// Encode converts canonical text into a strings.xml value.
func Encode(value string) string { return encoder.Apply(value) }

// ---------------------------------------------------------------------------
// Steps
// ---------------------------------------------------------------------------

// EscapeQuotes backslash-escapes double quotes.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// UnescapeQuotes reverses EscapeQuotes.
func UnescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

// EscapeApostrophes backslash-escapes apostrophes as required by aapt.
func EscapeApostrophes(s string) string {
	return strings.ReplaceAll(s, `'`, `\'`)
}

// UnescapeApostrophes reverses EscapeApostrophes.
func UnescapeApostrophes(s string) string {
	return strings.ReplaceAll(s, `\'`, `'`)
}

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeMarkup entity-encodes &, < and >. Quotes are left alone: by the time
// this step runs they already carry a backslash escape.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

// @[<package>:]<type>/<name>
var reResourceRef = regexp.MustCompile(`^([a-z.]+:)?[a-z+]+/[a-zA-Z_]+`)

// EscapeAt backslash-escapes every @ that does not start a resource reference,
// so aapt does not try to resolve literal text such as e-mail addresses.
func EscapeAt(s string) string {
	if !strings.Contains(s, "@") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		if s[i] == '@' && !reResourceRef.MatchString(s[i+1:]) {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// UnescapeAt turns \@ back into @.
func UnescapeAt(s string) string {
	return strings.ReplaceAll(s, `\@`, `@`)
}

// EscapeEdgeSpaces replaces each leading and trailing space with SpaceEscape.
// Spaces inside the value are kept.
func EscapeEdgeSpaces(s string) string {
	trimmed := strings.TrimLeft(s, " ")
	lead := len(s) - len(trimmed)
	if trimmed == "" {
		return strings.Repeat(SpaceEscape, lead)
	}
	core := strings.TrimRight(trimmed, " ")
	trail := len(trimmed) - len(core)
	return strings.Repeat(SpaceEscape, lead) + core + strings.Repeat(SpaceEscape, trail)
}

var (
	reLeadingSpaceEscapes  = regexp.MustCompile(`^(?:` + regexp.QuoteMeta(SpaceEscape) + `)+`)
	reTrailingSpaceEscapes = regexp.MustCompile(`(?:` + regexp.QuoteMeta(SpaceEscape) + `)+$`)
)

// UnescapeEdgeSpaces turns a run of SpaceEscape at the start or at the end of
// s back into spaces. Escapes in the middle of the value are left untouched.
func UnescapeEdgeSpaces(s string) string {
	collapse := func(run string) string {
		return strings.Repeat(" ", len(run)/SpaceEscapeWidth)
	}
	s = reLeadingSpaceEscapes.ReplaceAllStringFunc(s, collapse)
	return reTrailingSpaceEscapes.ReplaceAllStringFunc(s, collapse)
}
