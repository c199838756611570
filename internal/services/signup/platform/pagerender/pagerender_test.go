package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/signup/internal/services/signup/platform/flash"
	"github.com/louisbranch/signup/internal/services/signup/platform/locale"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/templates"
)

func newRenderer() Renderer {
	return Renderer{Locale: locale.NewResolver("en-US"), Policy: requestmeta.Policy{}}
}

func textBody(text string) func(templates.Localizer) templ.Component {
	return func(loc templates.Localizer) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>"+templates.T(loc, text)+"</p>")
			return err
		})
	}
}

func TestWriteRendersLayoutAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	err := newRenderer().Write(rec, httptest.NewRequest(http.MethodGet, "/email/", nil), Page{
		TitleKey:   "wizard.step.email.title",
		StatusCode: http.StatusBadRequest,
		Body:       textBody("wizard.field.email"),
	})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"<title>Your email address · Create your account</title>", "<p>Email address</p>", `lang="en-US"`, "/email/?lang=fr-FR"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestWriteUsesRequestLanguage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	if err := newRenderer().Write(rec, req, Page{TitleKey: "wizard.step.username.title", Body: textBody("wizard.action.next")}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<p>Suivant</p>") {
		t.Fatalf("body not localized:\n%s", rec.Body.String())
	}
	var langCookie bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == locale.CookieName && c.Value == "fr-FR" {
			langCookie = true
		}
	}
	if !langCookie {
		t.Fatal("expected language cookie")
	}
}

func TestWriteShowsPendingFlash(t *testing.T) {
	flashRec := httptest.NewRecorder()
	flash.Write(flashRec, httptest.NewRequest(http.MethodGet, "/", nil), flash.Warning("wizard.notice.restart"), requestmeta.Policy{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range flashRec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	if err := newRenderer().Write(rec, req, Page{TitleKey: "wizard.title"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Your registration was not found. Please start again.") {
		t.Fatalf("flash not rendered:\n%s", rec.Body.String())
	}
}

func TestWriteExplicitNoticeWins(t *testing.T) {
	notice := flash.Success("wizard.notice.complete")
	rec := httptest.NewRecorder()
	if err := newRenderer().Write(rec, httptest.NewRequest(http.MethodPost, "/password/confirm/", nil), Page{TitleKey: "wizard.complete.title", Notice: &notice}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Registration completed successfully.") {
		t.Fatalf("notice not rendered:\n%s", rec.Body.String())
	}
}

func TestWriteErrorPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newRenderer().WriteError(rec, httptest.NewRequest(http.MethodGet, "/missing", nil), http.StatusNotFound)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Fatalf("body:\n%s", rec.Body.String())
	}
}
