package dragon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientList(t *testing.T) {
	t.Parallel()

	dragons := []Dragon{
		{ID: "1", Name: "Smog", Type: 1, CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: "2", Name: "Frost", Type: 2},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(dragons)
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Smog", got[0].Name)
}

func TestClientGet(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/42", r.URL.Path)
		json.NewEncoder(w).Encode(Dragon{ID: "42", Name: "Volt", Type: 3})
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Get(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Volt", got.Name)
	assert.Equal(t, "Electric", got.TypeName())
}

func TestClientGetUpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestClientDelete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/7", gotPath)
}

func TestClientDeleteNon2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Delete(context.Background(), "7")
	assert.Error(t, err)
}
