// Package pagerender writes full signup pages through the shared layout.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	platformi18n "github.com/louisbranch/signup/internal/platform/i18n"
	"github.com/louisbranch/signup/internal/services/signup/platform/flash"
	"github.com/louisbranch/signup/internal/services/signup/platform/httpx"
	"github.com/louisbranch/signup/internal/services/signup/platform/locale"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/templates"
)

// Page describes one rendered response.
type Page struct {
	TitleKey   string
	StatusCode int
	// Body builds the page content once the request language is known.
	Body func(loc templates.Localizer) templ.Component
	// Notice is shown in place of any pending flash notice.
	Notice *flash.Notice
}

// Renderer resolves language and notices, then renders pages.
type Renderer struct {
	Locale locale.Resolver
	Policy requestmeta.Policy
}

// Write renders page inside the layout. Nothing is written to w when
// rendering fails.
func (rd Renderer) Write(w http.ResponseWriter, r *http.Request, page Page) error {
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	loc, tag := rd.Locale.Resolve(w, r)

	var body templ.Component = templ.NopComponent
	if page.Body != nil {
		body = page.Body(loc)
	}

	pageContext := templates.PageContext{
		Lang:      tag.String(),
		Loc:       loc,
		Languages: rd.languageOptions(r, tag.String(), loc),
		Toast:     rd.toast(w, r, page.Notice, loc),
	}
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := templates.Layout(templates.T(loc, page.TitleKey), pageContext).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteError renders the error page for statusCode, falling back to plain
// text when the page itself cannot be rendered.
func (rd Renderer) WriteError(w http.ResponseWriter, r *http.Request, statusCode int) {
	err := rd.Write(w, r, Page{
		TitleKey:   templates.ErrorPageTitleKey(statusCode),
		StatusCode: statusCode,
		Body: func(loc templates.Localizer) templ.Component {
			return templates.ErrorState(statusCode, loc)
		},
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

func (rd Renderer) toast(w http.ResponseWriter, r *http.Request, notice *flash.Notice, loc templates.Localizer) *templates.Toast {
	var current flash.Notice
	if notice != nil {
		current = *notice
		// Drop any pending notice so it does not resurface later.
		_, _ = flash.ReadAndClear(w, r, rd.Policy)
	} else {
		pending, ok := flash.ReadAndClear(w, r, rd.Policy)
		if !ok {
			return nil
		}
		current = pending
	}
	message := strings.TrimSpace(templates.T(loc, current.Key))
	if message == "" {
		return nil
	}
	return &templates.Toast{Kind: string(current.Kind), Message: message}
}

func (rd Renderer) languageOptions(r *http.Request, active string, loc templates.Localizer) []templates.LanguageOption {
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	tags := platformi18n.SupportedTags()
	options := make([]templates.LanguageOption, 0, len(tags))
	for _, tag := range tags {
		options = append(options, templates.LanguageOption{
			Tag:    tag.String(),
			Label:  templates.T(loc, platformi18n.LabelKey(tag)),
			URL:    locale.URL(path, query, tag),
			Active: tag.String() == active,
		})
	}
	return options
}
