package catalog

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestDefaultHasExpectedLocales(t *testing.T) {
	bundle := Default()
	for _, locale := range []string{"en-US", "fr-FR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
	}
	if len(bundle.Keys()) == 0 {
		t.Fatal("expected base locale keys")
	}
}

func TestNewRequiresBaseLocale(t *testing.T) {
	_, err := New(map[string]map[string]string{"fr-FR": {"a": "b"}})
	if err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestNewRejectsMissingTranslation(t *testing.T) {
	_, err := New(map[string]map[string]string{
		"en-US": {"a": "A", "b": "B"},
		"fr-FR": {"a": "A"},
	})
	if err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestNewRejectsUnknownKey(t *testing.T) {
	_, err := New(map[string]map[string]string{
		"en-US": {"a": "A"},
		"fr-FR": {"a": "A", "extra": "X"},
	})
	if err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := New(map[string]map[string]string{
		"en-US": {"greeting": "Hello"},
	})
	if err != nil {
		t.Fatalf("new bundle: %v", err)
	}
	got, ok := bundle.Message("pt-BR", "greeting")
	if !ok || got != "Hello" {
		t.Fatalf("Message() = %q, %t, want %q, true", got, ok, "Hello")
	}
}

func TestRegisteredMessagesResolveThroughPrinter(t *testing.T) {
	Default()
	fr := message.NewPrinter(language.MustParse("fr-FR"))
	if got := fr.Sprintf("wizard.error.password_mismatch"); got != "Les mots de passe ne correspondent pas." {
		t.Fatalf("fr mismatch message = %q", got)
	}
	frBase := message.NewPrinter(language.French)
	if got := frBase.Sprintf("wizard.notice.complete"); got != "Inscription effectuée avec succès." {
		t.Fatalf("fr base notice = %q", got)
	}
	en := message.NewPrinter(language.AmericanEnglish)
	if got := en.Sprintf("wizard.complete.body", "alice"); got != "The account alice has been created." {
		t.Fatalf("en complete body = %q", got)
	}
}
