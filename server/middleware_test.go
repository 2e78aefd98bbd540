package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdragon/dragon/internal/token"
)

func getWithCookie(t *testing.T, srv *Server, path, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func validSession(t *testing.T, srv *Server) string {
	t.Helper()
	tok, err := srv.tokens.SignMagicSession("ana@example.com")
	require.NoError(t, err)
	return tok
}

func TestPrivatePageWithoutSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	// No cookie and an invalid cookie are treated identically
	for _, cookie := range []string{"", "garbage"} {
		rec := getWithCookie(t, srv, "/home", cookie)
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
}

func TestPrivatePageWithExpiredSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	expired, err := srv.tokens.Sign(token.Claims{Email: "ana@example.com"}, -1*time.Minute)
	require.NoError(t, err)

	rec := getWithCookie(t, srv, "/home", expired)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestPublicPageWithoutSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	for _, cookie := range []string{"", "garbage"} {
		rec := getWithCookie(t, srv, "/", cookie)
		assert.Equal(t, http.StatusOK, rec.Code, "cookie: %q", cookie)
	}
}

func TestPublicPageWithSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := getWithCookie(t, srv, "/", validSession(t, srv))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/home", rec.Header().Get("Location"))
}

func TestAPIWithoutSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := getWithCookie(t, srv, "/api/dragons", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = getWithCookie(t, srv, "/api/dragons", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordSessionAdmitsPrivateRoutes(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	srv := newTestServer(upstream.URL, nil)

	tok, err := srv.tokens.SignPasswordSession("user-1", "ana")
	require.NoError(t, err)

	rec := getWithCookie(t, srv, "/home", tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}
