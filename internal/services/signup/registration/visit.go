package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

// Visit binds one request to the visitor's in-progress registration.
type Visit struct {
	SessionID string

	store storage.SessionStore
	ttl   time.Duration
	now   func() time.Time
}

// NewVisit returns a Visit for sessionID. Each save extends the session by ttl.
func NewVisit(sessionID string, store storage.SessionStore, ttl time.Duration) *Visit {
	return &Visit{SessionID: sessionID, store: store, ttl: ttl, now: time.Now}
}

// Load returns the stored registration, or an empty one when the session has
// none.
func (v *Visit) Load(ctx context.Context) (wizard.Registration, error) {
	reg, err := v.store.GetRegistration(ctx, v.SessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return wizard.Registration{}, nil
	}
	if err != nil {
		return wizard.Registration{}, fmt.Errorf("load registration: %w", err)
	}
	return reg, nil
}

// Save replaces the stored registration.
func (v *Visit) Save(ctx context.Context, reg wizard.Registration) error {
	if err := v.store.PutRegistration(ctx, v.SessionID, reg, v.now().Add(v.ttl)); err != nil {
		return fmt.Errorf("save registration: %w", err)
	}
	return nil
}

// Reset replaces the stored registration with an empty one.
func (v *Visit) Reset(ctx context.Context) error {
	return v.Save(ctx, wizard.Registration{})
}

// Clear removes the stored registration.
func (v *Visit) Clear(ctx context.Context) error {
	if err := v.store.DeleteRegistration(ctx, v.SessionID); err != nil {
		return fmt.Errorf("clear registration: %w", err)
	}
	return nil
}
