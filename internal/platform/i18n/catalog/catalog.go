// Package catalog holds the localized message catalogs and registers them
// with golang.org/x/text/message.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

// Bundle contains every locale catalog known to the process.
type Bundle struct {
	locales map[string]map[string]string
}

var defaultBundle = mustLoadAndRegister(map[string]map[string]string{
	"en-US": enUS,
	"fr-FR": frFR,
})

// Default returns the process-wide catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// New validates locale catalogs and builds a bundle. Every locale must define
// exactly the keys of the base locale.
func New(locales map[string]map[string]string) (*Bundle, error) {
	base, ok := locales[BaseLocale]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	bundle := &Bundle{locales: make(map[string]map[string]string, len(locales))}
	for locale, messages := range locales {
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		copied := make(map[string]string, len(messages))
		for key, value := range messages {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				return nil, fmt.Errorf("locale %s: message key cannot be blank", locale)
			}
			if _, known := base[trimmed]; !known {
				return nil, fmt.Errorf("locale %s: key %q is missing from %s", locale, trimmed, BaseLocale)
			}
			copied[trimmed] = value
		}
		for key := range base {
			if _, ok := copied[key]; !ok {
				return nil, fmt.Errorf("locale %s: missing key %q", locale, key)
			}
		}
		bundle.locales[locale] = copied
	}
	return bundle, nil
}

func mustLoadAndRegister(locales map[string]map[string]string) *Bundle {
	bundle, err := New(locales)
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}

// Register registers all catalog messages with x/text/message under the full
// locale tag and its base language.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "und" {
			if baseTag, err := language.Parse(base.String()); err == nil && baseTag != tag {
				tags = append(tags, baseTag)
			}
		}
		for key, value := range b.locales[locale] {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, value); err != nil {
					return fmt.Errorf("register %s %q: %w", registerTag, key, err)
				}
			}
		}
	}
	return nil
}

// Locales returns all locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if messages, ok := b.locales[strings.TrimSpace(locale)]; ok {
		if value, exists := messages[key]; exists {
			return value, true
		}
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// Keys returns the sorted message keys of the base locale.
func (b *Bundle) Keys() []string {
	if b == nil {
		return nil
	}
	keys := make([]string, 0, len(b.locales[BaseLocale]))
	for key := range b.locales[BaseLocale] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
