package registration

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/signup/internal/services/signup/credential"
	"github.com/louisbranch/signup/internal/services/signup/platform/locale"
	"github.com/louisbranch/signup/internal/services/signup/platform/pagerender"
	"github.com/louisbranch/signup/internal/services/signup/platform/requestmeta"
	"github.com/louisbranch/signup/internal/services/signup/platform/sessioncookie"
	"github.com/louisbranch/signup/internal/services/signup/storage"
	"github.com/louisbranch/signup/internal/services/signup/storage/memory"
	"github.com/louisbranch/signup/internal/services/signup/wizard"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/net/html"
)

const testOrigin = "http://example.com"

// userRepoStub records created users and can be told to fail.
type userRepoStub struct {
	mu    sync.Mutex
	users []storage.User
	err   error
}

func (s *userRepoStub) CreateUser(_ context.Context, user storage.User) (storage.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return storage.User{}, s.err
	}
	user.ID = int64(len(s.users) + 1)
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, user)
	return user, nil
}

func (s *userRepoStub) created() []storage.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]storage.User, len(s.users))
	copy(out, s.users)
	return out
}

// pingStub answers health checks with err.
type pingStub struct {
	err error
}

func (p pingStub) Ping(context.Context) error { return p.err }

// failingSessions fails every call with err.
type failingSessions struct {
	err error
}

func (f failingSessions) GetRegistration(context.Context, string) (wizard.Registration, error) {
	return wizard.Registration{}, f.err
}

func (f failingSessions) PutRegistration(context.Context, string, wizard.Registration, time.Time) error {
	return f.err
}

func (f failingSessions) DeleteRegistration(context.Context, string) error {
	return f.err
}

func (f failingSessions) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, f.err
}

var errStoreDown = errors.New("store is down")

type testEnv struct {
	module   Module
	sessions storage.SessionStore
	users    storage.UserRepository
	cookies  *sessioncookie.Codec
}

func newTestEnv(t *testing.T, sessions storage.SessionStore, users storage.UserRepository) testEnv {
	t.Helper()
	if sessions == nil {
		sessions = memory.NewSessionStore()
	}
	if users == nil {
		users = &userRepoStub{}
	}
	cookies, err := sessioncookie.NewCodec("test-secret", time.Hour, requestmeta.Policy{})
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	module, err := New(Config{
		Sessions: sessions,
		Users:    users,
		Hasher:   credential.NewBcrypt(bcrypt.MinCost),
		Cookies:  cookies,
		Renderer: pagerender.Renderer{Locale: locale.NewResolver("en-US")},
	})
	if err != nil {
		t.Fatalf("new module: %v", err)
	}
	return testEnv{module: module, sessions: sessions, users: users, cookies: cookies}
}

// browser carries cookies between requests like a user agent would.
type browser struct {
	t       *testing.T
	handler http.Handler
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, handler http.Handler) *browser {
	return &browser{t: t, handler: handler, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", testOrigin)
	return b.do(req)
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
	rec := httptest.NewRecorder()
	b.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(b.cookies, c.Name)
			continue
		}
		b.cookies[c.Name] = c
	}
	return rec
}

// sessionID returns the verified session id the browser currently holds.
func (b *browser) sessionID(codec *sessioncookie.Codec) string {
	b.t.Helper()
	c, ok := b.cookies[sessioncookie.Name]
	if !ok {
		b.t.Fatal("no session cookie")
	}
	sessionID, err := codec.Parse(c.Value)
	if err != nil {
		b.t.Fatalf("parse session cookie: %v", err)
	}
	return sessionID
}

func parseHTML(t *testing.T, rec *httptest.ResponseRecorder) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(rec.Body.String()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func hasAttr(key, value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return false
		}
		for _, a := range n.Attr {
			if a.Key == key && (value == "" || a.Val == value) {
				return true
			}
		}
		return false
	}
}

// pageStep returns the data-step of the rendered wizard section.
func pageStep(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	node := findNode(parseHTML(t, rec), hasAttr("data-step", ""))
	if node == nil {
		t.Fatalf("no wizard step in page:\n%s", rec.Body.String())
	}
	for _, a := range node.Attr {
		if a.Key == "data-step" {
			return a.Val
		}
	}
	return ""
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d; body:\n%s", rec.Code, http.StatusSeeOther, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d; body:\n%s", rec.Code, status, rec.Body.String())
	}
}
