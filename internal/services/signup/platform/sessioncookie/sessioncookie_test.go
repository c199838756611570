package sessioncookie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/signup/internal/platform/id"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret", time.Hour, requestmeta.Policy{})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	return codec
}

func newSessionID(t *testing.T) string {
	t.Helper()
	sessionID, err := id.NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	return sessionID
}

func TestNewCodecValidatesInput(t *testing.T) {
	if _, err := NewCodec(" ", time.Hour, requestmeta.Policy{}); err == nil {
		t.Fatal("expected error for blank secret")
	}
	if _, err := NewCodec("s", 0, requestmeta.Policy{}); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}

func TestIssueAndParse(t *testing.T) {
	codec := newTestCodec(t)
	sessionID := newSessionID(t)

	token, err := codec.Issue(sessionID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	got, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != sessionID {
		t.Fatalf("Parse() = %q, want %q", got, sessionID)
	}
}

func TestIssueRejectsMalformedID(t *testing.T) {
	if _, err := newTestCodec(t).Issue("not an id"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRejectsTampering(t *testing.T) {
	codec := newTestCodec(t)
	token, err := codec.Issue(newSessionID(t))
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other, err := NewCodec("other-secret", time.Hour, requestmeta.Policy{})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalid) {
		t.Fatalf("foreign secret error = %v, want ErrInvalid", err)
	}

	parts := strings.Split(token, ".")
	parts[1] = parts[1] + "x"
	if _, err := codec.Parse(strings.Join(parts, ".")); !errors.Is(err, ErrInvalid) {
		t.Fatalf("tampered payload error = %v, want ErrInvalid", err)
	}
	if _, err := codec.Parse(""); !errors.Is(err, ErrInvalid) {
		t.Fatalf("empty token error = %v, want ErrInvalid", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	codec := newTestCodec(t)
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return issued }
	token, err := codec.Issue(newSessionID(t))
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	codec.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := codec.Parse(token); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expired token error = %v, want ErrInvalid", err)
	}
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec(t)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   newSessionID(t),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := codec.Parse(token); !errors.Is(err, ErrInvalid) {
		t.Fatalf("none alg error = %v, want ErrInvalid", err)
	}
}

func TestWriteAndRead(t *testing.T) {
	codec := newTestCodec(t)
	sessionID := newSessionID(t)

	rec := httptest.NewRecorder()
	if err := codec.Write(rec, httptest.NewRequest(http.MethodGet, "/", nil), sessionID); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode || cookie.Secure {
		t.Fatalf("cookie = %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/email/", nil)
	req.AddCookie(cookie)
	got, ok := codec.Read(req)
	if !ok || got != sessionID {
		t.Fatalf("Read() = %q, %t; want %q, true", got, ok, sessionID)
	}

	if _, ok := codec.Read(httptest.NewRequest(http.MethodGet, "/", nil)); ok {
		t.Fatal("Read() without cookie should fail")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestCodec(t).Clear(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("cookies = %+v", cookies)
	}
}
