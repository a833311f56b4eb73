package peer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBlockIndexSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/block_index", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	body, err := New(srv.URL).FetchBlockIndex()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
}

func TestFetchBlockIndexSurfacesBadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("down for maintenance"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchBlockIndex()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "down for maintenance")
}
