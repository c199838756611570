package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

// ErrNotFound reports a missing or expired record.
var ErrNotFound = errors.New("record not found")

// User is a registered account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionStore keeps one in-progress registration per visitor session.
type SessionStore interface {
	// GetRegistration returns ErrNotFound when the session has no live entry.
	GetRegistration(ctx context.Context, sessionID string) (wizard.Registration, error)
	PutRegistration(ctx context.Context, sessionID string, reg wizard.Registration, expiresAt time.Time) error
	DeleteRegistration(ctx context.Context, sessionID string) error
	// DeleteExpired removes entries that expired at or before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, user User) (User, error)
}

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
