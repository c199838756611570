package registration

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/louisbranch/signup/internal/platform/logging"
	"github.com/louisbranch/signup/internal/services/signup/credential"
	"github.com/louisbranch/signup/internal/services/signup/platform/pagerender"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/platform/sessioncookie"
	"github.com/louisbranch/signup/internal/services/signup/storage"
)

// Config holds the narrow dependencies of the wizard module.
type Config struct {
	Sessions storage.SessionStore
	Users    storage.UserRepository
	Hasher   credential.Hasher
	Cookies  *sessioncookie.Codec
	Renderer pagerender.Renderer
	Policy   requestmeta.Policy
	Logger   *slog.Logger
	// Health is optional; when set, the health route pings it.
	Health storage.HealthChecker
}

// Module provides the signup wizard routes.
type Module struct {
	handlers handlers
}

// New validates cfg and returns a wizard module.
func New(cfg Config) (Module, error) {
	if cfg.Sessions == nil {
		return Module{}, fmt.Errorf("session store is required")
	}
	if cfg.Users == nil {
		return Module{}, fmt.Errorf("user repository is required")
	}
	if cfg.Hasher == nil {
		return Module{}, fmt.Errorf("password hasher is required")
	}
	if cfg.Cookies == nil {
		return Module{}, fmt.Errorf("session cookie codec is required")
	}
	logger := logging.OrDiscard(cfg.Logger)
	return Module{handlers: handlers{
		service:  newService(cfg.Users, cfg.Hasher, logger),
		sessions: cfg.Sessions,
		cookies:  cfg.Cookies,
		renderer: cfg.Renderer,
		policy:   cfg.Policy,
		health:   cfg.Health,
		logger:   logger,
	}}, nil
}

// ID returns a stable module identifier.
func (Module) ID() string { return "registration" }

// Handler returns the wizard routes behind the same-origin check.
func (m Module) Handler() http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, m.handlers)
	return m.handlers.requireSameOrigin(mux)
}
