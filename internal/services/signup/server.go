package signup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/signup/internal/platform/logging"
	"github.com/louisbranch/signup/internal/platform/timeouts"
	"github.com/louisbranch/signup/internal/services/signup/credential"
	"github.com/louisbranch/signup/internal/services/signup/platform/httpx"
	"github.com/louisbranch/signup/internal/services/signup/platform/locale"
	"github.com/louisbranch/signup/internal/services/signup/platform/pagerender"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/platform/sessioncookie"
	"github.com/louisbranch/signup/internal/services/signup/registration"
	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/storage/memory"
	"github.com/louisbranch/signup/internal/services/signup/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	// SessionBackendSQLite keeps registrations in the users database.
	SessionBackendSQLite = "sqlite"
	// SessionBackendMemory keeps registrations in process memory.
	SessionBackendMemory = "memory"
)

// Config defines the inputs for the signup HTTP server.
type Config struct {
	HTTPAddr            string
	DBPath              string
	SecretKey           string
	SessionBackend      string
	SessionTTL          time.Duration
	BcryptCost          int
	DefaultLocale       string
	TrustForwardedProto bool
	Logger              *slog.Logger

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	SweepInterval     time.Duration
}

// Server hosts the registration wizard.
type Server struct {
	httpAddr        string
	shutdownTimeout time.Duration
	httpServer      *http.Server
	handler         http.Handler
	store           *sqlite.Store
	logger          *slog.Logger

	janitorStop context.CancelFunc
	janitorDone chan struct{}
	closeOnce   sync.Once
}

// NewServer opens storage and builds the wizard handler. The expired-session
// janitor starts immediately and stops on Close.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.ReadHeaderTimeout <= 0 {
		config.ReadHeaderTimeout = timeouts.ReadHeader
	}
	if config.ShutdownTimeout <= 0 {
		config.ShutdownTimeout = timeouts.Shutdown
	}
	if config.SweepInterval <= 0 {
		config.SweepInterval = timeouts.SessionSweep
	}
	logger := logging.OrDiscard(config.Logger)

	store, err := sqlite.Open(config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open signup store: %w", err)
	}

	var sessions storage.SessionStore
	switch backend := strings.ToLower(strings.TrimSpace(config.SessionBackend)); backend {
	case "", SessionBackendSQLite:
		sessions = store
	case SessionBackendMemory:
		sessions = memory.NewSessionStore()
	default:
		_ = store.Close()
		return nil, fmt.Errorf("unknown session backend %q", config.SessionBackend)
	}

	policy := requestmeta.Policy{TrustForwardedProto: config.TrustForwardedProto}
	cookies, err := sessioncookie.NewCodec(config.SecretKey, config.SessionTTL, policy)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("session cookie codec: %w", err)
	}

	module, err := registration.New(registration.Config{
		Sessions: sessions,
		Users:    store,
		Hasher:   credential.NewBcrypt(config.BcryptCost),
		Cookies:  cookies,
		Renderer: pagerender.Renderer{Locale: locale.NewResolver(config.DefaultLocale), Policy: policy},
		Policy:   policy,
		Logger:   logger,
		Health:   store,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("registration module: %w", err)
	}

	handler := httpx.Chain(
		module.Handler(),
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.LogRequests(logger),
	)
	handler = otelhttp.NewHandler(handler, "signup")

	janitorCtx, janitorStop := context.WithCancel(context.Background())
	server := &Server{
		httpAddr:        httpAddr,
		shutdownTimeout: config.ShutdownTimeout,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
		},
		handler:     handler,
		store:       store,
		logger:      logger,
		janitorStop: janitorStop,
		janitorDone: make(chan struct{}),
	}
	go server.sweepExpiredSessions(janitorCtx, sessions, config.SweepInterval)
	return server, nil
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("signup server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("signup server listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		s.logger.Info("signup server stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the janitor and releases the store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	s.closeOnce.Do(func() {
		s.janitorStop()
		<-s.janitorDone
		if err := s.store.Close(); err != nil {
			s.logger.Error("close signup store", "error", err)
		}
	})
}

func (s *Server) sweepExpiredSessions(ctx context.Context, sessions storage.SessionStore, interval time.Duration) {
	defer close(s.janitorDone)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := sessions.DeleteExpired(ctx, now)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("sweep expired sessions", "error", err)
				}
				continue
			}
			if removed > 0 {
				s.logger.Debug("swept expired sessions", "removed", removed)
			}
		}
	}
}

// Run creates and serves a signup server until the context ends.
func Run(ctx context.Context, config Config) error {
	server, err := NewServer(config)
	if err != nil {
		return fmt.Errorf("init signup server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve signup: %w", err)
	}
	return nil
}
