package android

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reResources = regexp.MustCompile(`(?s)<resources(?:[^>]*)>(.*)</resources>`)
	reKey       = regexp.MustCompile(`<string name="(\w+)">`)
	reValue     = regexp.MustCompile(`<string name="\w+">(.*)</string>`)
	reComment   = regexp.MustCompile(`<!-- (.*) -->`)
	reLineBreak = regexp.MustCompile(`\r?\n`)
)

// sectionMarker prefixes the comments written in front of each section. Such
// comments are never attached to an entry.
const sectionMarker = "SECTION:"

// ParseResult summarizes what Parse registered.
type ParseResult struct {
	// Entries is the number of <string> lines registered.
	Entries int
	// Comments is the number of comments attached to an entry.
	Comments int
}

// Parse scans a strings.xml document and registers every single-line
// <string> resource with reg under lang.
//
// A comment line is held until the next <string> line and attached to it
// unless it is a section header. Only one comment is held at a time; a newer
// one replaces it, and it is dropped once a <string> line has been seen. The
// comment test runs after the key test, so a comment sharing a line with a
// <string> belongs to the following entry.
//
// A <string> that does not close on the same line is registered with an empty
// value. A document without <resources> registers nothing.
func Parse(text, lang string, reg Registrar) ParseResult {
	var res ParseResult

	m := reResources.FindStringSubmatch(text)
	if m == nil {
		return res
	}

	var pending string
	for _, line := range reLineBreak.Split(m[1], -1) {
		if km := reKey.FindStringSubmatch(line); km != nil {
			key := km[1]
			value := ""
			if vm := reValue.FindStringSubmatch(line); vm != nil {
				value = vm[1]
			}
			reg.SetTranslation(key, lang, Decode(value))
			res.Entries++

			if pending != "" && !strings.HasPrefix(pending, sectionMarker) {
				reg.SetComment(key, pending)
				res.Comments++
			}
			pending = ""
		}

		if cm := reComment.FindStringSubmatch(line); cm != nil {
			pending = cm[1]
		}
	}
	return res
}

// ReadFile parses the strings.xml file at path into reg.
func ReadFile(path, lang string, reg Registrar) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return ParseResult{}, fmt.Errorf("reading %s: %w", path, ErrInvalidEncoding)
	}
	return Parse(string(data), lang, reg), nil
}
