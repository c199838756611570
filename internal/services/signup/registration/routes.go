package registration

import (
	"net/http"

	"github.com/louisbranch/signup/internal/services/signup/platform/httpx"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/routepath"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

// stepRoutes lists every wizard URL other than the start route.
var stepRoutes = []stepRoute{
	{step: wizard.StepUsername, path: routepath.UsernameEdit, edit: true},
	{step: wizard.StepEmail, path: routepath.Email},
	{step: wizard.StepEmail, path: routepath.EmailEdit, edit: true},
	{step: wizard.StepPassword, path: routepath.Password},
	{step: wizard.StepPassword, path: routepath.PasswordEdit, edit: true},
	{step: wizard.StepConfirm, path: routepath.PasswordConfirm},
}

var methodNotAllowed = httpx.MethodNotAllowed(http.MethodGet, http.MethodHead, http.MethodPost)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)

	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.withVisit(h.handleStart))
	mux.HandleFunc(http.MethodPost+" "+routepath.Root+"{$}", h.withVisit(h.handleStartSubmit))
	mux.HandleFunc(routepath.Root+"{$}", methodNotAllowed)

	for _, route := range stepRoutes {
		mux.HandleFunc(http.MethodGet+" "+route.path+"{$}", h.withVisit(h.showStep(route)))
		mux.HandleFunc(http.MethodPost+" "+route.path+"{$}", h.withVisit(h.submitStep(route)))
		mux.HandleFunc(route.path+"{$}", methodNotAllowed)
	}

	mux.HandleFunc(routepath.Root, h.handleNotFound)
}

// requireSameOrigin rejects state-changing requests that cannot prove they
// were sent from this site.
func (h handlers) requireSameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requestmeta.IsSafeMethod(r.Method) && !h.policy.SameOrigin(r) {
			h.logger.WarnContext(r.Context(), "cross-origin request rejected",
				"method", r.Method,
				"path", r.URL.Path,
				"origin", r.Header.Get("Origin"),
			)
			h.renderer.WriteError(w, r, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
