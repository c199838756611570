// Package signup parses signup command configuration and starts the wizard
// server.
package signup

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	entrypoint "github.com/louisbranch/signup/internal/platform/cmd"
	"github.com/louisbranch/signup/internal/platform/logging"
	server "github.com/louisbranch/signup/internal/services/signup"
)

// DefaultSecretKey is the development signing key. Deployments must override it.
const DefaultSecretKey = "top-secret"

// Config holds signup command configuration.
type Config struct {
	HTTPAddr            string        `env:"SIGNUP_HTTP_ADDR"             envDefault:"localhost:8080"`
	DBPath              string        `env:"SIGNUP_DB_PATH"               envDefault:"data/signup.db"`
	SecretKey           string        `env:"SIGNUP_SECRET_KEY"            envDefault:"top-secret"`
	SessionBackend      string        `env:"SIGNUP_SESSION_BACKEND"       envDefault:"sqlite"`
	SessionTTL          time.Duration `env:"SIGNUP_SESSION_TTL"           envDefault:"24h"`
	BcryptCost          int           `env:"SIGNUP_BCRYPT_COST"           envDefault:"10"`
	DefaultLocale       string        `env:"SIGNUP_DEFAULT_LOCALE"        envDefault:"en-US"`
	TrustForwardedProto bool          `env:"SIGNUP_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"SIGNUP_LOG_LEVEL"             envDefault:"info"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "signup HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "session store backend (sqlite or memory)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the process logger for cfg.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logging.New(level, w), nil
}

// Run builds the signup server and serves until ctx ends.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	logger = logging.OrDiscard(logger)
	if cfg.SecretKey == DefaultSecretKey {
		logger.Warn("SIGNUP_SECRET_KEY is the development default; session cookies are forgeable")
	}
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceSignup, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		if err := server.Run(ctx, serverConfig(cfg, logger)); err != nil {
			return fmt.Errorf("serve signup: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, logger *slog.Logger) server.Config {
	return server.Config{
		HTTPAddr:            cfg.HTTPAddr,
		DBPath:              cfg.DBPath,
		SecretKey:           cfg.SecretKey,
		SessionBackend:      cfg.SessionBackend,
		SessionTTL:          cfg.SessionTTL,
		BcryptCost:          cfg.BcryptCost,
		DefaultLocale:       cfg.DefaultLocale,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Logger:              logger,
	}
}
