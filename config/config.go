// Package config loads the optional .droidstrings.yaml project configuration.
//
// When the file is absent every setting has its default and
// command-line flags are the only way to change it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the project root.
const FileName = ".droidstrings.yaml"

// Defaults.
const (
	DefaultStringsFile = "strings.yaml"
	DefaultResDir      = "app/src/main/res"
	DefaultLang        = "en"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// Config is the top-level .droidstrings.yaml structure.
type Config struct {
	// StringsFile is the string set file, relative to the project root.
	StringsFile string `yaml:"strings_file,omitempty"`
	// ResDir is the Android res/ directory, relative to the project root.
	ResDir string `yaml:"res_dir,omitempty"`
	// DefaultLang is the language of the bare values/ directory.
	DefaultLang string `yaml:"default_lang,omitempty"`
	// Languages limits generate and status to these languages. Empty means
	// every language of the string set.
	Languages []string `yaml:"languages,omitempty"`

	// ConsumeAll adds keys found in resources that the string set lacks.
	ConsumeAll bool `yaml:"consume_all,omitempty"`
	// ConsumeComments copies resource comments into the string set.
	ConsumeComments bool `yaml:"consume_comments,omitempty"`
	// Fallback fills missing translations with the default language on generate.
	Fallback bool `yaml:"fallback,omitempty"`
	// CreateFolders makes generate write values-<lang>/ for every language
	// instead of only the directories that already exist.
	CreateFolders bool `yaml:"create_folders,omitempty"`

	path string
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads .droidstrings.yaml from rootDir. A missing file yields Default().
func Load(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	c.applyDefaults()
	c.path = path

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.StringsFile == "" {
		c.StringsFile = DefaultStringsFile
	}
	if c.ResDir == "" {
		c.ResDir = DefaultResDir
	}
	if c.DefaultLang == "" {
		c.DefaultLang = DefaultLang
	}
	for i, l := range c.Languages {
		c.Languages[i] = strings.TrimSpace(l)
	}
}

// Validate checks language codes.
func (c *Config) Validate() error {
	if !IsLangCode(c.DefaultLang) {
		return fmt.Errorf("invalid default_lang %q", c.DefaultLang)
	}
	for _, l := range c.Languages {
		if !IsLangCode(l) {
			return fmt.Errorf("invalid language %q", l)
		}
	}
	return nil
}

// Path returns the file the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.path
}

// ---------------------------------------------------------------------------
// Paths
// ---------------------------------------------------------------------------

// StringsPath returns the string set path resolved against rootDir.
func (c *Config) StringsPath(rootDir string) string {
	return resolve(rootDir, c.StringsFile)
}

// ResPath returns the res/ directory resolved against rootDir.
func (c *Config) ResPath(rootDir string) string {
	return resolve(rootDir, c.ResDir)
}

func resolve(rootDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(rootDir, p)
}

// FilterLanguages keeps the languages of available that the config selects,
// in the order of available.
func (c *Config) FilterLanguages(available []string) []string {
	if len(c.Languages) == 0 {
		return available
	}
	want := make(map[string]bool, len(c.Languages))
	for _, l := range c.Languages {
		want[l] = true
	}
	var out []string
	for _, l := range available {
		if want[l] {
			out = append(out, l)
		}
	}
	return out
}

// IsLangCode reports whether s looks like a language code of the string set:
// a 2–3 letter lowercase language optionally followed by hyphenated subtags
// ("en", "pt-BR", "zh-Hans").
func IsLangCode(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts[0]) < 2 || len(parts[0]) > 3 {
		return false
	}
	for _, r := range parts[0] {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	for _, p := range parts[1:] {
		if len(p) < 2 || len(p) > 8 {
			return false
		}
		for _, r := range p {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return true
}
