package sessiontransport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/cookie"
	"github.com/dmitrymomot/doccms/core/router"
	"github.com/dmitrymomot/doccms/core/session"
	"github.com/dmitrymomot/doccms/core/sessiontransport"
)

type testData struct {
	Flash string
}

const cookieName = "__session"

// failingStore fails every read with a non-lookup error.
type failingStore struct {
	mock.Mock
	*session.MemoryStore[testData]
}

func (s *failingStore) GetByToken(ctx context.Context, token string) (*session.Session[testData], error) {
	args := s.Called(ctx, token)
	return nil, args.Error(0)
}

func newCookieManager(t *testing.T) *cookie.Manager {
	t.Helper()
	m, err := cookie.New([]string{"0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	return m
}

func newTransport(t *testing.T, store session.Store[testData]) *sessiontransport.Cookie[testData] {
	t.Helper()
	mgr := session.NewManager(store, session.WithTTL(time.Hour), session.WithTouchInterval(time.Hour))
	return sessiontransport.NewCookie(mgr, newCookieManager(t), cookieName)
}

func newCtx(w http.ResponseWriter, cookies ...*http.Cookie) *router.Context {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:1234"
	r.Header.Set("User-Agent", "test-agent")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return router.NewContext(w, r, nil)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestCookie_LoadWithoutCookie(t *testing.T) {
	t.Parallel()

	transport := newTransport(t, session.NewMemoryStore[testData]())

	sess, err := transport.Load(newCtx(httptest.NewRecorder()))
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.False(t, sess.IsAuthenticated())
	assert.Equal(t, "192.0.2.1", sess.IP)
	assert.Equal(t, "test-agent", sess.UserAgent)
}

func TestCookie_RoundTrip(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore[testData]()
	transport := newTransport(t, store)

	w := httptest.NewRecorder()
	sess, err := transport.Load(newCtx(w))
	require.NoError(t, err)
	require.NoError(t, sess.Authenticate("admin"))
	sess.SetData(testData{Flash: "welcome"})
	require.NoError(t, transport.Store(newCtx(w), sess))

	c := sessionCookie(t, w)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, 3600, c.MaxAge)

	loaded, err := transport.Load(newCtx(httptest.NewRecorder(), c))
	require.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, "admin", loaded.UserID)
	assert.Equal(t, "welcome", loaded.Data.Flash)
}

func TestCookie_StoreUnchangedSkipsCookie(t *testing.T) {
	t.Parallel()

	transport := newTransport(t, session.NewMemoryStore[testData]())

	w := httptest.NewRecorder()
	sess, err := transport.Load(newCtx(w))
	require.NoError(t, err)
	require.NoError(t, transport.Store(newCtx(w), sess))
	c := sessionCookie(t, w)

	loaded, err := transport.Load(newCtx(httptest.NewRecorder(), c))
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	require.NoError(t, transport.Store(newCtx(w2), loaded))
	assert.Empty(t, w2.Result().Cookies())
}

func TestCookie_LoadInvalidCookie(t *testing.T) {
	t.Parallel()

	transport := newTransport(t, session.NewMemoryStore[testData]())

	tests := map[string]*http.Cookie{
		"tampered":      {Name: cookieName, Value: "dG9rZW4|bad-signature"},
		"malformed":     {Name: cookieName, Value: "garbage"},
		"unknown token": nil,
	}
	for name, c := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if c == nil {
				// Correctly signed, but the store has never seen it.
				w := httptest.NewRecorder()
				require.NoError(t, newCookieManager(t).SetSigned(w, cookieName, "forgotten"))
				c = sessionCookie(t, w)
			}

			sess, err := transport.Load(newCtx(httptest.NewRecorder(), c))
			require.NoError(t, err)
			assert.NotEqual(t, "forgotten", sess.Token)
			assert.False(t, sess.IsAuthenticated())
		})
	}
}

func TestCookie_LoadStoreFailure(t *testing.T) {
	t.Parallel()

	store := &failingStore{MemoryStore: session.NewMemoryStore[testData]()}
	store.On("GetByToken", mock.Anything, "tok").Return(errors.New("connection refused"))
	transport := newTransport(t, store)

	w := httptest.NewRecorder()
	require.NoError(t, newCookieManager(t).SetSigned(w, cookieName, "tok"))

	sess, err := transport.Load(newCtx(httptest.NewRecorder(), sessionCookie(t, w)))
	assert.ErrorIs(t, err, sessiontransport.ErrLoadSession)
	assert.NotEmpty(t, sess.Token, "a fresh session is still returned")
}

func TestCookie_Delete(t *testing.T) {
	t.Parallel()

	store := session.NewMemoryStore[testData]()
	transport := newTransport(t, store)

	w := httptest.NewRecorder()
	sess, err := transport.Load(newCtx(w))
	require.NoError(t, err)
	require.NoError(t, transport.Store(newCtx(w), sess))
	require.Equal(t, 1, store.Len())

	w2 := httptest.NewRecorder()
	require.NoError(t, transport.Delete(newCtx(w2), sess))
	assert.Equal(t, 0, store.Len())
	assert.Less(t, sessionCookie(t, w2).MaxAge, 0)
}

func TestNewCookieFromConfig(t *testing.T) {
	t.Parallel()

	mgr := session.NewManager(session.NewMemoryStore[testData]())

	transport := sessiontransport.NewCookieFromConfig(sessiontransport.CookieConfig{}, mgr, newCookieManager(t))
	assert.Equal(t, "__session", transport.Name())

	transport = sessiontransport.NewCookieFromConfig(sessiontransport.CookieConfig{CookieName: "sid"}, mgr, newCookieManager(t))
	assert.Equal(t, "sid", transport.Name())
}
