// Package locale resolves the display language for a signup request.
package locale

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/signup/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "signup_lang"
)

// Resolver picks a supported language for each request.
type Resolver struct {
	fallback language.Tag
}

// NewResolver returns a resolver that falls back to defaultLocale, or to the
// base catalog locale when defaultLocale is unsupported.
func NewResolver(defaultLocale string) Resolver {
	fallback, ok := platformi18n.ParseTag(defaultLocale)
	if !ok {
		fallback = platformi18n.DefaultTag()
	}
	return Resolver{fallback: fallback}
}

// Default returns the fallback language.
func (res Resolver) Default() language.Tag {
	if res.fallback == language.Und {
		return platformi18n.DefaultTag()
	}
	return res.fallback
}

// ResolveTag picks the request language from the lang query parameter, the
// preference cookie, then Accept-Language. The bool reports whether the
// choice came from the query and should be persisted.
func (res Resolver) ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return res.Default(), false
	}
	if r.URL != nil {
		if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
			if tag, ok := platformi18n.ParseTag(value); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags, res.Default()), false
		}
	}
	return res.Default(), false
}

// Resolve returns a printer for the request language, persisting an explicit
// lang choice on w.
func (res Resolver) Resolve(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := res.ResolveTag(r)
	if persist {
		SetCookie(w, tag)
	}
	return platformi18n.Printer(tag), tag
}

// SetCookie persists the selected language on the response.
func SetCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// URL returns path with the lang query parameter set to tag.
func URL(path string, rawQuery string, tag language.Tag) string {
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag.String())
	return path + "?" + query.Encode()
}
