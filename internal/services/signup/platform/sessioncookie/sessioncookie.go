// Package sessioncookie issues and verifies the signed visitor session cookie.
//
// The cookie carries an HS256 JWT whose subject is the session id. The id is
// only trusted after the signature verifies.
package sessioncookie

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/signup/internal/platform/id"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
)

// Name is the canonical signup session cookie name.
const Name = "signup_session"

const issuer = "signup"

// ErrInvalid reports a cookie that is missing, tampered with or expired.
var ErrInvalid = errors.New("invalid session cookie")

// Codec signs and verifies session cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
	policy requestmeta.Policy
	now    func() time.Time
}

// NewCodec builds a codec signing with secret. Tokens and cookies live for ttl.
func NewCodec(secret string, ttl time.Duration, policy requestmeta.Policy) (*Codec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &Codec{secret: []byte(secret), ttl: ttl, policy: policy, now: time.Now}, nil
}

// TTL returns the configured session lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue returns a signed token for sessionID.
func (c *Codec) Issue(sessionID string) (string, error) {
	if !id.Valid(sessionID) {
		return "", fmt.Errorf("session id %q is malformed", sessionID)
	}
	now := c.now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Parse verifies token and returns its session id.
func (c *Codec) Parse(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalid
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !id.Valid(claims.Subject) {
		return "", fmt.Errorf("%w: malformed subject", ErrInvalid)
	}
	return claims.Subject, nil
}

// Read returns the verified session id carried by r.
func (c *Codec) Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	sessionID, err := c.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	return sessionID, true
}

// Write sets the session cookie for sessionID.
func (c *Codec) Write(w http.ResponseWriter, r *http.Request, sessionID string) error {
	token, err := c.Issue(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (c *Codec) Clear(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.policy.IsHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}
