// Package i18n defines the supported locales and language matching rules.
package i18n

import (
	"strings"

	"github.com/louisbranch/signup/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	tagEnUS = language.MustParse("en-US")
	tagFrFR = language.MustParse("fr-FR")

	supported = []language.Tag{tagEnUS, tagFrFR}
	matcher   = language.NewMatcher(supported)
)

// SupportedTags returns the locales the catalogs are translated into.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// DefaultTag returns the base catalog locale.
func DefaultTag() language.Tag {
	return tagEnUS
}

// ParseTag parses value and maps it onto a supported locale. It reports false
// when the value is not a tag or no supported locale is a reasonable match.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, false
	}
	return supported[idx], true
}

// MatchTags picks the best supported locale for an ordered preference list,
// falling back to fallback when nothing matches.
func MatchTags(tags []language.Tag, fallback language.Tag) language.Tag {
	if len(tags) > 0 {
		_, idx, confidence := matcher.Match(tags...)
		if confidence != language.No {
			return supported[idx]
		}
	}
	return fallback
}

// Printer returns a message printer for tag, backed by the registered catalogs.
func Printer(tag language.Tag) *message.Printer {
	catalog.Default()
	return message.NewPrinter(tag)
}

// LabelKey returns the catalog key naming a supported locale.
func LabelKey(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "fr":
		return "nav.lang_fr"
	default:
		return "nav.lang_en"
	}
}
