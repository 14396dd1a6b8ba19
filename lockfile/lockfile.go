// Package lockfile implements droidstrings.lock — a lock file that records
// the MD5 checksum of every strings.xml document generated from the string
// set. generate compares freshly formatted output against it and leaves
// documents whose content did not change untouched.
//
// The lock file is stored next to the string set as droidstrings.lock.
package lockfile

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// LockFileName is the default lock file name.
const LockFileName = "droidstrings.lock"

// Version is the lock file format version.
const Version = 1

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

// LockFile represents the droidstrings.lock file structure.
type LockFile struct {
	Version   int               `yaml:"version"`
	Documents map[string]string `yaml:"documents"` // document key -> md5

	mu   sync.Mutex `yaml:"-"`
	path string     `yaml:"-"`
}

// ---------------------------------------------------------------------------
// Loading and saving
// ---------------------------------------------------------------------------

// Load reads a lock file from the given directory.
// Returns an empty lock file if the file doesn't exist.
func Load(dir string) (*LockFile, error) {
	path := filepath.Join(dir, LockFileName)
	lf := &LockFile{
		Version:   Version,
		Documents: make(map[string]string),
		path:      path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lf, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if lf.Version > Version {
		return nil, fmt.Errorf("%s: unsupported version %d", path, lf.Version)
	}
	lf.path = path
	if lf.Documents == nil {
		lf.Documents = make(map[string]string)
	}

	return lf, nil
}

// Save writes the lock file to disk.
func (lf *LockFile) Save() error {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.path == "" {
		return fmt.Errorf("lock file path not set")
	}

	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}
	if err := os.WriteFile(lf.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", lf.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (lf *LockFile) Path() string {
	return lf.path
}

// ---------------------------------------------------------------------------
// Checksums
// ---------------------------------------------------------------------------

// Hash computes the MD5 hex digest of a string.
func Hash(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// DocumentKey builds the lock key of a generated document: its path relative
// to root with forward slashes, e.g. "app/src/main/res/values-ru/strings.xml".
// Paths outside root keep their cleaned form.
func DocumentKey(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(filepath.Clean(path))
}

// IsChanged reports whether content differs from what was last recorded for
// key. Unknown keys are always changed.
func (lf *LockFile) IsChanged(key, content string) bool {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	old, ok := lf.Documents[key]
	return !ok || old != Hash(content)
}

// Update records the checksum of content for key.
func (lf *LockFile) Update(key, content string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	lf.Documents[key] = Hash(content)
}

// Clean drops every key not in current, so documents that are no longer
// generated do not linger in the lock file.
func (lf *LockFile) Clean(current []string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	valid := make(map[string]bool, len(current))
	for _, k := range current {
		valid[k] = true
	}
	for k := range lf.Documents {
		if !valid[k] {
			delete(lf.Documents, k)
		}
	}
}

// Keys returns the sorted document keys.
func (lf *LockFile) Keys() []string {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	keys := make([]string, 0, len(lf.Documents))
	for k := range lf.Documents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Summary returns a human-readable summary string.
func (lf *LockFile) Summary() string {
	keys := lf.Keys()
	if len(keys) == 0 {
		return "empty"
	}
	return fmt.Sprintf("%d documents (%s)", len(keys), strings.Join(keys, ", "))
}
