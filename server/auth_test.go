package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectdragon/dragon/internal/token"
)

func TestSignupThenSignin(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var signup map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	assert.NotEmpty(t, signup["userId"])

	// Signup does not log the user in
	assert.Nil(t, sessionCookie(t, rec))

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ana","password":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var signin map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signin))
	assert.Equal(t, signup["userId"], signin["userId"])
	assert.Equal(t, "ana", signin["username"])

	ck := sessionCookie(t, rec)
	require.NotNil(t, ck)

	claims, err := token.NewService(testSecret).Verify(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, signup["userId"], claims.UserID)
}

func TestSigninWrongPassword(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ana","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookie(t, rec))
}

func TestSigninUnknownUser(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ghost","password":"1234"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSignupMissingFields(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	for _, body := range []string{
		`{"username":"","password":"1234"}`,
		`{"username":"ana","password":""}`,
		`{}`,
	} {
		rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestSigninMissingFields(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignupDuplicateUsername(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Same username, different password: still a conflict
	rec = doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"other"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionCookieAttributes(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)

	doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"1234"}`)
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ana","password":"1234"}`)

	ck := sessionCookie(t, rec)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)
	assert.False(t, ck.Secure) // development mode
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	assert.Equal(t, sessionCookieMaxAge, ck.MaxAge)
	assert.Equal(t, "/", ck.Path)
}

func TestSessionCookieSecureInProduction(t *testing.T) {
	t.Parallel()

	srv := newTestServer("", nil)
	srv.cfg.Env = "production"

	doJSON(t, srv, http.MethodPost, "/api/auth/signup", `{"username":"ana","password":"1234"}`)
	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signin", `{"username":"ana","password":"1234"}`)

	ck := sessionCookie(t, rec)
	require.NotNil(t, ck)
	assert.True(t, ck.Secure)
}
