package android

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"res/values-en-rUS/strings.xml", "en-US", true},
		{"res/values-zh-rCN/strings.xml", "zh-Hans", true},
		{"res/values-zh-rHK/strings.xml", "zh-Hant", true},
		{"res/values-zh/strings.xml", "zh-Hans", true},
		{"res/values-en-rGB/strings.xml", "en-UK", true},
		{"res/values-in/strings.xml", "id", true},
		{"res/values-nb/strings.xml", "no", true},
		{"res/values-fr/strings.xml", "fr", true},
		{"res/values-pt-rBR", "pt-BR", true},
		{"res/VALUES-DE/strings.xml", "DE", true},
		{"res/values/strings.xml", "en", true},
		{"values", "en", true},
		{"res/other/file.xml", "", false},
		{"res/values-land/strings.xml", "", false},
		{"res/values-en-rUS-v21/strings.xml", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := ResolveLanguage(tc.path, "en")
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ResolveLanguage(%q) = (%q, %v), want (%q, %v)", tc.path, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestResolveLanguage_FirstMatchWins(t *testing.T) {
	got, ok := ResolveLanguage("values-de/values-fr/strings.xml", "en")
	if !ok || got != "de" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "de")
	}

	got, ok = ResolveLanguage("values/values-fr/strings.xml", "ru")
	if !ok || got != "ru" {
		t.Fatalf("got (%q, %v), want (%q, true)", got, ok, "ru")
	}
}

func TestCanHandleDirectory(t *testing.T) {
	withValues := t.TempDir()
	if err := os.Mkdir(filepath.Join(withValues, "values-fr"), 0755); err != nil {
		t.Fatal(err)
	}
	if !CanHandleDirectory(withValues) {
		t.Errorf("CanHandleDirectory(values-fr) = false, want true")
	}

	withAssets := t.TempDir()
	if err := os.Mkdir(filepath.Join(withAssets, "assets"), 0755); err != nil {
		t.Fatal(err)
	}
	if CanHandleDirectory(withAssets) {
		t.Errorf("CanHandleDirectory(assets) = true, want false")
	}

	// Only the name prefix counts, a plain file is enough.
	withFile := t.TempDir()
	if err := os.WriteFile(filepath.Join(withFile, "values.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !CanHandleDirectory(withFile) {
		t.Errorf("CanHandleDirectory(values.txt) = false, want true")
	}

	if CanHandleDirectory(filepath.Join(withAssets, "missing")) {
		t.Errorf("CanHandleDirectory(missing) = true, want false")
	}
}

func TestOutputPathForLanguage(t *testing.T) {
	if got := OutputPathForLanguage("fr"); got != "values-fr" {
		t.Errorf("OutputPathForLanguage(fr) = %q, want %q", got, "values-fr")
	}
	// The default language is not mapped to the bare values directory.
	if got := OutputPathForLanguage("en"); got != "values-en" {
		t.Errorf("OutputPathForLanguage(en) = %q, want %q", got, "values-en")
	}
}
