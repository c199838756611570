package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	reg := wizard.Registration{Username: "alice", Email: "alice@example.com"}

	if err := store.PutRegistration(ctx, "sess-1", reg, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.GetRegistration(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != reg {
		t.Fatalf("registration = %+v, want %+v", got, reg)
	}

	if err := store.DeleteRegistration(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetRegistration(ctx, "sess-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get after delete error = %v, want ErrNotFound", err)
	}
	if err := store.DeleteRegistration(ctx, "sess-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	if err := store.PutRegistration(ctx, "old", wizard.Registration{Username: "a"}, now.Add(-time.Second)); err != nil {
		t.Fatalf("put old: %v", err)
	}
	if err := store.PutRegistration(ctx, "live", wizard.Registration{Username: "b"}, now.Add(time.Hour)); err != nil {
		t.Fatalf("put live: %v", err)
	}

	if _, err := store.GetRegistration(ctx, "old"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expired get error = %v, want ErrNotFound", err)
	}

	removed, err := store.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("len = %d, want 1", store.Len())
	}
}

func TestSessionStoreRejectsBlankInput(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	if _, err := store.GetRegistration(ctx, " "); err == nil {
		t.Fatal("expected get error")
	}
	if err := store.PutRegistration(ctx, "", wizard.Registration{}, time.Now()); err == nil {
		t.Fatal("expected put error for blank id")
	}
	if err := store.PutRegistration(ctx, "sess", wizard.Registration{}, time.Time{}); err == nil {
		t.Fatal("expected put error for zero expiry")
	}
	if err := store.DeleteRegistration(ctx, ""); err == nil {
		t.Fatal("expected delete error")
	}
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := fmt.Sprintf("sess-%d", i%4)
			_ = store.PutRegistration(ctx, id, wizard.Registration{Username: id}, expiresAt)
			_, _ = store.GetRegistration(ctx, id)
		}()
	}
	wg.Wait()

	if store.Len() != 4 {
		t.Fatalf("len = %d, want 4", store.Len())
	}
}
