package android

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Generator is written into the header of every generated document.
var Generator = "droidstrings"

// Section is an ordered, optionally named group of entries of one language.
type Section struct {
	Name    string
	Entries []Entry
}

// Entry is a single string of one language. Value is canonical text.
type Entry struct {
	Key     string
	Value   string
	Comment string
}

// Format renders sections as a strings.xml document for lang. Sections keep
// the given order; sections without entries are left out. Named sections get
// a "SECTION: <name>" comment which Parse recognizes and skips.
func Format(lang string, sections []Section) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n")
	b.WriteString("<!-- Android Strings File -->\n")
	fmt.Fprintf(&b, "<!-- Generated by %s -->\n", Generator)
	fmt.Fprintf(&b, "<!-- Language: %s -->\n", lang)
	b.WriteString("<resources>")

	first := true
	for _, s := range sections {
		if len(s.Entries) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false

		if s.Name != "" {
			fmt.Fprintf(&b, "\n\t<!-- %s %s -->", sectionMarker, s.Name)
		}
		for _, e := range s.Entries {
			b.WriteString("\n")
			if e.Comment != "" {
				fmt.Fprintf(&b, "\t<!-- %s -->\n", formatComment(e.Comment))
			}
			fmt.Fprintf(&b, "\t<string name=\"%s\">%s</string>", e.Key, Encode(e.Value))
		}
	}

	b.WriteString("\n</resources>\n")
	return b.String()
}

// "--" must not occur inside an XML comment.
func formatComment(c string) string {
	return strings.ReplaceAll(c, "--", "—")
}

// WriteFile formats sections for lang and writes them to path, creating the
// parent directory if needed.
func WriteFile(path, lang string, sections []Section) error {
	return WriteDocument(path, Format(lang, sections))
}

// WriteDocument writes an already formatted document to path, creating the
// parent directory if needed.
func WriteDocument(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
