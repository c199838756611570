package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "fr-FR", want: "fr-FR", wantOK: true},
		{input: "fr", want: "fr-FR", wantOK: true},
		{input: "en", want: "en-US", wantOK: true},
		{input: " en-US ", want: "en-US", wantOK: true},
		{input: "ja", wantOK: false},
		{input: "", wantOK: false},
		{input: "%%%", wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseTag(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ParseTag(%q) ok = %t, want %t", tc.input, ok, tc.wantOK)
			}
			if ok && got.String() != tc.want {
				t.Fatalf("ParseTag(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestMatchTagsFallback(t *testing.T) {
	fallback := language.MustParse("fr-FR")
	if got := MatchTags(nil, fallback); got != fallback {
		t.Fatalf("MatchTags(nil) = %s, want %s", got, fallback)
	}
	got := MatchTags([]language.Tag{language.MustParse("fr-CA"), language.English}, DefaultTag())
	if got.String() != "fr-FR" {
		t.Fatalf("MatchTags(fr-CA, en) = %s, want fr-FR", got)
	}
}

func TestPrinterUsesCatalog(t *testing.T) {
	p := Printer(language.MustParse("fr-FR"))
	if got := p.Sprintf("wizard.field.username"); got != "Nom d'utilisateur" {
		t.Fatalf("fr username label = %q", got)
	}
}

func TestLabelKey(t *testing.T) {
	if got := LabelKey(language.MustParse("fr-FR")); got != "nav.lang_fr" {
		t.Fatalf("LabelKey(fr-FR) = %q", got)
	}
	if got := LabelKey(DefaultTag()); got != "nav.lang_en" {
		t.Fatalf("LabelKey(en-US) = %q", got)
	}
}
