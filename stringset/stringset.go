// Package stringset holds the platform-agnostic string set that Android
// resources are read into and generated from.
//
// A set is an ordered list of named sections, each holding definitions. A
// definition is one key with an optional comment and one canonical value per
// language. The set is stored on disk as YAML.
package stringset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/minios-linux/droidstrings/android"
	"gopkg.in/yaml.v3"
)

// UncategorizedSection receives keys that are consumed with ConsumeAll but
// are not defined yet.
const UncategorizedSection = "Uncategorized"

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// Definition is a single string key and its translations.
type Definition struct {
	Key          string            `yaml:"key"`
	Comment      string            `yaml:"comment,omitempty"`
	Translations map[string]string `yaml:"translations,omitempty"`
}

// Translation returns the value for lang, if any.
func (d *Definition) Translation(lang string) (string, bool) {
	v, ok := d.Translations[lang]
	return v, ok
}

// Section groups definitions under an optional name.
type Section struct {
	Name        string        `yaml:"name,omitempty"`
	Definitions []*Definition `yaml:"definitions"`
}

// Set is the whole string set.
type Set struct {
	// DefaultLang is the development language; its strings live in the
	// bare values directory.
	DefaultLang string `yaml:"default_lang,omitempty"`
	// Languages lists every language code seen, in order of appearance.
	Languages []string   `yaml:"languages,omitempty"`
	Sections  []*Section `yaml:"sections"`

	// ConsumeAll adds keys that are not defined yet instead of skipping them.
	ConsumeAll bool `yaml:"-"`
	// ConsumeComments lets SetComment overwrite definition comments.
	ConsumeComments bool `yaml:"-"`

	byKey   map[string]*Definition
	skipped []string
}

var _ android.Registrar = (*Set)(nil)

// New returns an empty set whose development language is defaultLang.
func New(defaultLang string) *Set {
	s := &Set{DefaultLang: defaultLang, byKey: make(map[string]*Definition)}
	if defaultLang != "" {
		s.Languages = []string{defaultLang}
	}
	return s
}

// ---------------------------------------------------------------------------
// Loading and saving
// ---------------------------------------------------------------------------

// Load reads a set from path. A missing file yields an empty set.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(""), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	s := &Set{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.reindex(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes the set to path as YAML.
func (s *Set) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling string set: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func (s *Set) reindex() error {
	s.byKey = make(map[string]*Definition)
	for _, sec := range s.Sections {
		for _, d := range sec.Definitions {
			if d.Key == "" {
				return fmt.Errorf("section %q has a definition without key", sec.Name)
			}
			if _, dup := s.byKey[d.Key]; dup {
				return fmt.Errorf("duplicate key %q", d.Key)
			}
			s.byKey[d.Key] = d
		}
	}
	if s.DefaultLang != "" {
		s.AddLanguage(s.DefaultLang)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Definition returns the definition of key, or nil.
func (s *Set) Definition(key string) *Definition {
	return s.byKey[key]
}

// Section returns the section called name, or nil.
func (s *Set) Section(name string) *Section {
	for _, sec := range s.Sections {
		if sec.Name == name {
			return sec
		}
	}
	return nil
}

// AddDefinition appends key to the section called section, creating the
// section at the end if needed. An existing definition is returned as is.
func (s *Set) AddDefinition(section, key string) *Definition {
	if d, ok := s.byKey[key]; ok {
		return d
	}
	sec := s.Section(section)
	if sec == nil {
		sec = &Section{Name: section}
		s.Sections = append(s.Sections, sec)
	}
	return s.appendDefinition(sec, key)
}

func (s *Set) appendDefinition(sec *Section, key string) *Definition {
	d := &Definition{Key: key, Translations: make(map[string]string)}
	sec.Definitions = append(sec.Definitions, d)
	if s.byKey == nil {
		s.byKey = make(map[string]*Definition)
	}
	s.byKey[key] = d
	return d
}

// AddLanguage records lang unless it is already known.
func (s *Set) AddLanguage(lang string) {
	for _, l := range s.Languages {
		if l == lang {
			return
		}
	}
	s.Languages = append(s.Languages, lang)
}

// Skipped returns the keys SetTranslation ignored because they were not
// defined and ConsumeAll was off.
func (s *Set) Skipped() []string {
	return s.skipped
}

// ---------------------------------------------------------------------------
// android.Registrar
// ---------------------------------------------------------------------------

// SetTranslation stores value for key in lang. Unknown keys are added to the
// Uncategorized section when ConsumeAll is set and skipped otherwise. The
// language is recorded either way.
func (s *Set) SetTranslation(key, lang, value string) {
	d := s.byKey[key]
	switch {
	case d != nil:
	case s.ConsumeAll:
		sec := s.Section(UncategorizedSection)
		if sec == nil {
			sec = &Section{Name: UncategorizedSection}
			s.Sections = append([]*Section{sec}, s.Sections...)
		}
		d = s.appendDefinition(sec, key)
	default:
		s.skipped = append(s.skipped, key)
	}

	if d != nil {
		if d.Translations == nil {
			d.Translations = make(map[string]string)
		}
		d.Translations[lang] = value
	}
	s.AddLanguage(lang)
}

// SetComment stores comment on an existing key when ConsumeComments is set.
func (s *Set) SetComment(key, comment string) {
	if !s.ConsumeComments {
		return
	}
	if d, ok := s.byKey[key]; ok {
		d.Comment = comment
	}
}

// ---------------------------------------------------------------------------
// Views
// ---------------------------------------------------------------------------

// SectionsFor returns the entries that have a value in lang, grouped as in the
// set. With fallback, entries missing in lang use the DefaultLang value.
func (s *Set) SectionsFor(lang string, fallback bool) []android.Section {
	out := make([]android.Section, 0, len(s.Sections))
	for _, sec := range s.Sections {
		as := android.Section{Name: sec.Name}
		for _, d := range sec.Definitions {
			v, ok := d.Translation(lang)
			if !ok && fallback && lang != s.DefaultLang {
				v, ok = d.Translation(s.DefaultLang)
			}
			if !ok {
				continue
			}
			as.Entries = append(as.Entries, android.Entry{Key: d.Key, Value: v, Comment: d.Comment})
		}
		out = append(out, as)
	}
	return out
}

// CountEntries returns the number of entries across sections.
func CountEntries(sections []android.Section) int {
	n := 0
	for _, sec := range sections {
		n += len(sec.Entries)
	}
	return n
}

// Stats returns the number of definitions and how many of them have a value
// in lang.
func (s *Set) Stats(lang string) (total, translated int) {
	for _, sec := range s.Sections {
		for _, d := range sec.Definitions {
			total++
			if _, ok := d.Translations[lang]; ok {
				translated++
			}
		}
	}
	return
}
