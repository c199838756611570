package registration

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/signup/internal/platform/id"
	apperrors "github.com/louisbranch/signup/internal/services/signup/platform/errors"
	"github.com/louisbranch/signup/internal/services/signup/platform/flash"
	"github.com/louisbranch/signup/internal/services/signup/platform/httpx"
	"github.com/louisbranch/signup/internal/services/signup/platform/pagerender"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/platform/sessioncookie"
	"github.com/louisbranch/signup/internal/services/signup/routepath"
	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/templates"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

const maxFormBytes = 64 << 10

// stepRoute binds one wizard URL to the step it collects.
type stepRoute struct {
	step wizard.Step
	path string
	edit bool
}

// visitHandler handles a request already bound to a Visit.
type visitHandler func(http.ResponseWriter, *http.Request, *Visit)

type handlers struct {
	service  service
	sessions storage.SessionStore
	cookies  *sessioncookie.Codec
	renderer pagerender.Renderer
	policy   requestmeta.Policy
	health   storage.HealthChecker
	logger   *slog.Logger
}

// withVisit resolves the visitor session from the signed cookie, starting a
// new one when the cookie is missing or invalid, and refreshes the cookie.
func (h handlers) withVisit(next visitHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := h.cookies.Read(r)
		if !ok {
			fresh, err := id.NewID()
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			sessionID = fresh
		}
		if err := h.cookies.Write(w, r, sessionID); err != nil {
			h.writeError(w, r, err)
			return
		}
		next(w, r, NewVisit(sessionID, h.sessions, h.cookies.TTL()))
	}
}

// handleStart shows a fresh username form and discards any registration.
func (h handlers) handleStart(w http.ResponseWriter, r *http.Request, visit *Visit) {
	if err := h.service.start(r.Context(), visit); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.renderStep(w, r, http.StatusOK, wizard.Registration{}, templates.StepView{
		Step:   wizard.StepUsername,
		Action: routepath.Root,
	})
}

// handleStartSubmit discards any registration, then submits the username.
func (h handlers) handleStartSubmit(w http.ResponseWriter, r *http.Request, visit *Visit) {
	if !h.parseForm(w, r) {
		return
	}
	if err := h.service.start(r.Context(), visit); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.submit(w, r, visit, stepRoute{step: wizard.StepUsername, path: routepath.Root}, wizard.Registration{})
}

// showStep renders the form of route once its prerequisites are met.
func (h handlers) showStep(route stepRoute) visitHandler {
	return func(w http.ResponseWriter, r *http.Request, visit *Visit) {
		reg, ok := h.loadReady(w, r, visit, route.step)
		if !ok {
			return
		}
		view := templates.StepView{Step: route.step, Edit: route.edit, Action: route.path}
		if route.edit {
			view.Value = reg.Value(route.step)
		}
		h.renderStep(w, r, http.StatusOK, reg, view)
	}
}

// submitStep handles a POST to route once its prerequisites are met.
func (h handlers) submitStep(route stepRoute) visitHandler {
	return func(w http.ResponseWriter, r *http.Request, visit *Visit) {
		if !h.parseForm(w, r) {
			return
		}
		reg, ok := h.loadReady(w, r, visit, route.step)
		if !ok {
			return
		}
		h.submit(w, r, visit, route, reg)
	}
}

func (h handlers) submit(w http.ResponseWriter, r *http.Request, visit *Visit, route stepRoute, reg wizard.Registration) {
	out, err := h.service.submit(r.Context(), visit, reg, route.step, r.PostForm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	decision := out.Decision
	switch decision.Outcome {
	case wizard.OutcomeValid:
		if out.User != nil {
			h.renderComplete(w, r, *out.User)
			return
		}
		httpx.WriteRedirect(w, r, routepath.ForStep(decision.Transition.Next))
	case wizard.OutcomeMismatch:
		h.renderStep(w, r, http.StatusBadRequest, out.Registration, templates.StepView{
			Step:         route.step,
			Edit:         route.edit,
			Action:       route.path,
			PageErrorKey: "wizard.error.password_mismatch",
		})
	default:
		h.renderStep(w, r, http.StatusBadRequest, out.Registration, templates.StepView{
			Step:   route.step,
			Edit:   route.edit,
			Action: route.path,
			Value:  decision.Result.Submitted,
			Errors: decision.Result.Errors,
		})
	}
}

// loadReady loads the registration and redirects to the earliest missing
// step when step is not reachable yet.
func (h handlers) loadReady(w http.ResponseWriter, r *http.Request, visit *Visit, step wizard.Step) (wizard.Registration, bool) {
	reg, err := visit.Load(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return wizard.Registration{}, false
	}
	if !reg.Ready(step) {
		flash.Write(w, r, flash.Warning("wizard.notice.restart"), h.policy)
		httpx.WriteRedirect(w, r, routepath.ForStep(reg.Resume()))
		return wizard.Registration{}, false
	}
	return reg, true
}

func (h handlers) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return false
	}
	return true
}

func (h handlers) renderStep(w http.ResponseWriter, r *http.Request, status int, reg wizard.Registration, view templates.StepView) {
	view.Summary = summary(reg, view.Step)
	h.writePage(w, r, pagerender.Page{
		TitleKey:   templates.StepTitleKey(view.Step, view.Edit),
		StatusCode: status,
		Body: func(loc templates.Localizer) templ.Component {
			return templates.StepForm(view, loc)
		},
	})
}

// renderComplete shows the completion view and drops the session cookie; the
// registration it carried is gone.
func (h handlers) renderComplete(w http.ResponseWriter, r *http.Request, user storage.User) {
	h.cookies.Clear(w, r)
	notice := flash.Success("wizard.notice.complete")
	h.writePage(w, r, pagerender.Page{
		TitleKey:   "wizard.complete.title",
		StatusCode: http.StatusOK,
		Notice:     &notice,
		Body: func(loc templates.Localizer) templ.Component {
			return templates.Complete(user.Username, loc)
		},
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.WriteError(w, r, http.StatusNotFound)
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			h.logger.WarnContext(r.Context(), "health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("unavailable"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := h.renderer.Write(w, r, page); err != nil {
		h.writeError(w, r, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.ErrorContext(r.Context(), "signup request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", r.Header.Get(httpx.RequestIDHeader),
		"error", err,
	)
	h.renderer.WriteError(w, r, apperrors.HTTPStatus(err))
}

// summary lists the collected values other than step's own.
func summary(reg wizard.Registration, step wizard.Step) []templates.SummaryItem {
	var items []templates.SummaryItem
	for _, s := range []wizard.Step{wizard.StepUsername, wizard.StepEmail, wizard.StepPassword} {
		if s == step || !reg.Has(s) {
			continue
		}
		items = append(items, templates.SummaryItem{
			Step:    s,
			Value:   reg.Value(s),
			EditURL: routepath.EditForStep(s),
		})
	}
	return items
}
