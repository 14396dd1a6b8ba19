// Package placeholder converts printf-style placeholders between the canonical
// string-set syntax and the syntax used by Android resources.
//
// Canonical strings use %@ for string arguments (as on Apple platforms);
// Android uses %s and requires positional indices (%1$s, %2$d) as soon as a
// value carries more than one placeholder.
package placeholder

import (
	"fmt"
	"regexp"
)

// Converter rewrites placeholder tokens between two syntaxes. Both directions
// must accept arbitrary text and keep positional indices in order.
type Converter interface {
	ToCanonical(s string) string
	ToPlatform(s string) string
}

// The space flag is left out of the flag class: "50% sure" is prose, not a
// "% s" placeholder.
const (
	flagsWidthPrecisionLength = `([-+0#])?(\d+|\*)?(\.(\d+|\*))?(hh?|ll?|L|z|j|t)?`
	parameter                 = `(\d+\$)?`
	types                     = `[diufFeEgGxXoscpaA]`
)

var (
	reAndroidString   = regexp.MustCompile(`(%` + parameter + flagsWidthPrecisionLength + `)s`)
	reCanonicalString = regexp.MustCompile(`(%` + parameter + flagsWidthPrecisionLength + `)@`)
	reAny             = regexp.MustCompile(`%` + parameter + flagsWidthPrecisionLength + types)
	reNonPositional   = regexp.MustCompile(`%(` + flagsWidthPrecisionLength + types + `)`)
)

// Android is the Converter for Android string resources.
var Android Converter = android{}

type android struct{}

// ToCanonical turns Android string placeholders (%s, %1$s, %-10s) into their
// canonical %@ form. All other placeholder types are shared and kept as is.
func (android) ToCanonical(s string) string {
	return reAndroidString.ReplaceAllString(s, "${1}@")
}

// ToPlatform turns %@ into %s and numbers the placeholders when there is more
// than one of them. A value mixing positional and non-positional placeholders
// cannot be numbered reliably and is returned after the %@ rewrite only.
func (android) ToPlatform(s string) string {
	s = reCanonicalString.ReplaceAllString(s, "${1}s")

	total := len(reAny.FindAllStringIndex(s, -1))
	if total <= 1 {
		return s
	}
	plain := len(reNonPositional.FindAllStringIndex(s, -1))
	if plain == 0 || plain != total {
		return s
	}

	index := 0
	return reNonPositional.ReplaceAllStringFunc(s, func(m string) string {
		index++
		return fmt.Sprintf("%%%d$%s", index, m[1:])
	})
}

// ToCanonical converts with the Android converter.
func ToCanonical(s string) string { return Android.ToCanonical(s) }

// ToPlatform converts with the Android converter.
func ToPlatform(s string) string { return Android.ToPlatform(s) }
