package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

var (
	enUS = language.MustParse("en-US")
	frFR = language.MustParse("fr-FR")
)

func TestResolveTagOrder(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: enUS},
		{name: "query", target: "/?lang=fr", cookie: "en-US", accept: "en", want: frFR, wantPersist: true},
		{name: "cookie beats header", target: "/", cookie: "fr-FR", accept: "en-US", want: frFR},
		{name: "accept language", target: "/", accept: "fr-CA,fr;q=0.9", want: frFR},
		{name: "unsupported query ignored", target: "/?lang=xx", cookie: "fr-FR", want: frFR},
		{name: "unsupported header", target: "/", accept: "ja-JP", want: enUS},
	}
	res := NewResolver("en-US")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := res.ResolveTag(req)
			if got != tc.want {
				t.Fatalf("ResolveTag() = %s, want %s", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %t, want %t", persist, tc.wantPersist)
			}
		})
	}
}

func TestNewResolverFallback(t *testing.T) {
	if got := NewResolver("fr-FR").Default(); got != frFR {
		t.Fatalf("Default() = %s, want fr-FR", got)
	}
	if got := NewResolver("klingon").Default(); got != enUS {
		t.Fatalf("Default() = %s, want en-US", got)
	}
	if got := (Resolver{}).Default(); got != enUS {
		t.Fatalf("zero Default() = %s, want en-US", got)
	}
}

func TestResolvePersistsQueryChoice(t *testing.T) {
	rec := httptest.NewRecorder()
	printer, tag := NewResolver("en-US").Resolve(rec, httptest.NewRequest(http.MethodGet, "/?lang=fr-FR", nil))
	if tag != frFR {
		t.Fatalf("tag = %s, want fr-FR", tag)
	}
	if printer == nil {
		t.Fatal("expected printer")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != "fr-FR" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestURL(t *testing.T) {
	if got := URL("/email/", "", frFR); got != "/email/?lang=fr-FR" {
		t.Fatalf("URL() = %q", got)
	}
	if got := URL("", "lang=en-US&x=1", frFR); got != "/?lang=fr-FR&x=1" {
		t.Fatalf("URL() = %q", got)
	}
}
