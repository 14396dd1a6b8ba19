package android

import (
	"regexp"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"entity", "Fish &amp; Chips", "Fish & Chips"},
		{"numeric entity", "it&#39;s", "it's"},
		{"markup", "&lt;b&gt;bold&lt;/b&gt;", "<b>bold</b>"},
		{"apostrophe", `it\'s`, "it's"},
		{"quotes", `say \"hi\"`, `say "hi"`},
		{"at", `me\@example.com`, "me@example.com"},
		{"string placeholder", "Hello %s", "Hello %@"},
		{"positional", "%1$s has %2$d", "%1$@ has %2$d"},
		{"leading spaces", "\\u0020\\u0020hi", "  hi"},
		{"trailing spaces", "hi\\u0020", "hi "},
		{"both edges", "\\u0020hi\\u0020\\u0020", " hi  "},
		{"embedded escape kept", "a\\u0020b", "a\\u0020b"},
		{"only escapes", "\\u0020\\u0020\\u0020", "   "},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.raw); got != tc.want {
				t.Errorf("Decode(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "Hello", "Hello"},
		{"apostrophe", "it's", `it\'s`},
		{"quotes not entity escaped", `say "hi"`, `say \"hi\"`},
		{"markup", "Fish & <Chips>", "Fish &amp; &lt;Chips&gt;"},
		{"string placeholder", "Hello %@", "Hello %s"},
		{"numbered placeholders", "%@ has %d", "%1$s has %2$d"},
		{"email", "me@example.com", `me\@example.com`},
		{"resource reference", "@string/app_name", "@string/app_name"},
		{"package reference", "@android:string/ok", "@android:string/ok"},
		{"uppercase type is not a reference", "@String/ok", `\@String/ok`},
		{"leading spaces", "  hi", "\\u0020\\u0020hi"},
		{"trailing space", "hi ", "hi\\u0020"},
		{"inner spaces kept", "a b", "a b"},
		{"only spaces", "  ", "\\u0020\\u0020"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Encode(tc.value); got != tc.want {
				t.Errorf("Encode(%q) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []string{
		"Hello",
		"it's",
		`a "quoted" word`,
		"Fish & Chips",
		"<b>not a tag</b>",
		"write to me@example.com",
		"  two leading",
		"two trailing  ",
		"  both  ",
		"tab\tinside",
		"Ünïcödé ✓",
		"50% sure",
		"%@ is 100% sure",
		"100% of %d",
	}
	for _, v := range values {
		if got := Decode(Encode(v)); got != v {
			t.Errorf("Decode(Encode(%q)) = %q", v, got)
		}
	}
}

var reBareAmp = regexp.MustCompile(`&(amp|lt|gt);`)

func TestEncodeNeverEmitsUnsafeText(t *testing.T) {
	values := []string{
		"a < b > c & d",
		"&amp; already",
		" edge ",
		"@ alone",
		"x@y @string/ok",
		"<<<>>>&&&",
	}
	for _, v := range values {
		got := Encode(v)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("Encode(%q) = %q contains < or >", v, got)
		}
		if strings.Count(got, "&") != len(reBareAmp.FindAllString(got, -1)) {
			t.Errorf("Encode(%q) = %q contains a bare &", v, got)
		}
		if strings.HasPrefix(got, " ") || strings.HasSuffix(got, " ") {
			t.Errorf("Encode(%q) = %q has a literal edge space", v, got)
		}
		for i := 0; i < len(got); i++ {
			if got[i] == '@' && (i == 0 || got[i-1] != '\\') && !reResourceRef.MatchString(got[i+1:]) {
				t.Errorf("Encode(%q) = %q has an unescaped @ at %d", v, got, i)
			}
		}
	}
}

func TestUnescapeEdgeSpaces_PartialToken(t *testing.T) {
	// A run only ever consists of whole tokens, so a truncated token at the
	// edge is not collapsed.
	in := "\\u002hi"
	if got := UnescapeEdgeSpaces(in); got != in {
		t.Errorf("UnescapeEdgeSpaces(%q) = %q, want unchanged", in, got)
	}
	if SpaceEscapeWidth != 6 {
		t.Errorf("SpaceEscapeWidth = %d, want 6", SpaceEscapeWidth)
	}
}

func TestPipelineOrder(t *testing.T) {
	var calls []string
	step := func(name string) Step {
		return func(s string) string {
			calls = append(calls, name)
			return s + name
		}
	}
	p := Pipeline{step("a"), step("b"), step("c")}
	if got := p.Apply(">"); got != ">abc" {
		t.Errorf("Apply = %q, want %q", got, ">abc")
	}
	if strings.Join(calls, "") != "abc" {
		t.Errorf("calls = %v", calls)
	}
}

func TestEncodeEscapesQuotesBeforeMarkup(t *testing.T) {
	// Running markup escaping first would leave &quot; behind instead of \".
	got := EscapeMarkup(EscapeQuotes(`"&"`))
	if got != `\"&amp;\"` {
		t.Errorf("got %q, want %q", got, `\"&amp;\"`)
	}
}
