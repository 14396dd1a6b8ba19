package android

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func withGenerator(t *testing.T, g string) {
	t.Helper()
	old := Generator
	Generator = g
	t.Cleanup(func() { Generator = old })
}

func TestFormat(t *testing.T) {
	withGenerator(t, "droidstrings test")

	sections := []Section{
		{Name: "Buttons", Entries: []Entry{
			{Key: "save", Value: "Save", Comment: "Save -- button"},
			{Key: "cancel", Value: "Cancel"},
		}},
		{Entries: []Entry{
			{Key: "greet", Value: "Hi %@ & welcome "},
		}},
		{Name: "Empty"},
	}

	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<!-- Android Strings File -->\n" +
		"<!-- Generated by droidstrings test -->\n" +
		"<!-- Language: en -->\n" +
		"<resources>\n" +
		"\t<!-- SECTION: Buttons -->\n" +
		"\t<!-- Save — button -->\n" +
		"\t<string name=\"save\">Save</string>\n" +
		"\t<string name=\"cancel\">Cancel</string>\n" +
		"\n" +
		"\t<string name=\"greet\">Hi %s &amp; welcome\\u0020</string>\n" +
		"</resources>\n"

	if diff := cmp.Diff(want, Format("en", sections)); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormat_Empty(t *testing.T) {
	withGenerator(t, "g")

	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<!-- Android Strings File -->\n" +
		"<!-- Generated by g -->\n" +
		"<!-- Language: fr -->\n" +
		"<resources>\n" +
		"</resources>\n"
	if got := Format("fr", nil); got != want {
		t.Errorf("Format(nil) = %q, want %q", got, want)
	}
}

func TestFormatThenParse(t *testing.T) {
	sections := []Section{
		{Name: "Main", Entries: []Entry{
			{Key: "title", Value: "It's \"Main\"", Comment: "Window -- title"},
			{Key: "count", Value: "%@ has %d items"},
			{Key: "contact", Value: " mail@example.com "},
		}},
	}

	r := newRecorder()
	res := Parse(Format("de", sections), "de", r)

	want := []registered{
		{"title", "de", "It's \"Main\""},
		{"count", "de", "%1$@ has %2$d items"},
		{"contact", "de", " mail@example.com "},
	}
	if diff := cmp.Diff(want, r.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
	if got := r.Comments["title"]; got != "Window — title" {
		t.Errorf("comment = %q, want %q", got, "Window — title")
	}
	if res.Comments != 1 {
		t.Errorf("ParseResult.Comments = %d, want 1", res.Comments)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values-fr", DefaultFileName)
	sections := []Section{{Entries: []Entry{{Key: "a", Value: "A"}}}}

	if err := WriteFile(path, "fr", sections); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Format("fr", sections) {
		t.Errorf("file content differs from Format output:\n%s", data)
	}
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "res", "values-de", DefaultFileName)
	content := Format("de", []Section{{Entries: []Entry{{Key: "a", Value: "B"}}}})

	if err := WriteDocument(path, content); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != content {
		t.Errorf("WriteDocument wrote %q, want %q", data, content)
	}
}
