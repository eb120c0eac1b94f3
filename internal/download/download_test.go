package download

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

func TestClient_Fetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	c := New(WithUserAgent("mlvm/test"), WithLogger(logging.ForTest(t)))

	data, err := c.Fetch(t.Context(), srv.URL+"/node.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, "mlvm/test", gotUA)
}

func TestClient_Fetch_Status(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New().Fetch(t.Context(), srv.URL+"/missing.zip")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, 1, calls, "non-2xx responses must not be retried")
}

func TestClient_Fetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	_, err := New(WithMaxBytes(16)).Fetch(t.Context(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))

	data, err := New(WithMaxBytes(64)).Fetch(t.Context(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, data, 64)
}

func TestClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"version":"v20.11.0","lts":"Iron"}]`))
	}))
	defer srv.Close()

	var out []struct {
		Version string `json:"version"`
		LTS     any    `json:"lts"`
	}
	require.NoError(t, New().GetJSON(t.Context(), srv.URL, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "v20.11.0", out[0].Version)

	err := New().GetJSON(t.Context(), srv.URL, &struct{ X int }{})
	require.Error(t, err, "array into struct should fail to decode")
}

func TestClient_GitHubToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	tests := []struct {
		name     string
		opts     []Option
		wantAuth string
	}{
		{"no token", []Option{WithAuthHosts(u.Hostname())}, ""},
		{"token for other host", []Option{WithGitHubToken("ghp_secret")}, ""},
		{"token for auth host", []Option{WithGitHubToken("ghp_secret"), WithAuthHosts(u.Hostname())}, "Bearer ghp_secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAuth = ""
			var v map[string]any
			require.NoError(t, New(tt.opts...).GetJSON(t.Context(), srv.URL, &v))
			assert.Equal(t, tt.wantAuth, gotAuth)
		})
	}
}

func TestClient_RateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := New().GetJSON(t.Context(), srv.URL, &struct{}{})
	require.Error(t, err)

	var rl *RateLimitError
	require.True(t, errors.As(err, &rl))
	require.NotNil(t, rl.Remaining)
	assert.Equal(t, 0, *rl.Remaining)
	assert.True(t, IsStatus(err, http.StatusForbidden))
}
