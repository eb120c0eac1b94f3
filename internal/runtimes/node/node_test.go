package node

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/download"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

var _ runtimes.Adapter = (*Adapter)(nil)

func TestNormalize(t *testing.T) {
	a := New(nil)
	tests := []struct {
		in   string
		want string
	}{
		{"18.17.1", "v18.17.1"},
		{"v18.17.1", "v18.17.1"},
		{" 20.0.0 ", "v20.0.0"},
		{"", ""},
	}
	for _, tt := range tests {
		got := a.Normalize(tt.in)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.in)
		assert.Equal(t, got, a.Normalize(got), "Normalize must be idempotent for %q", tt.in)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		host     runtimes.Host
		wantURL  string
		wantTop  string
		wantKind archive.Kind
	}{
		{
			host:     runtimes.Host{OS: "linux", Arch: "amd64"},
			wantURL:  "https://nodejs.org/dist/v18.17.1/node-v18.17.1-linux-x64.tar.gz",
			wantTop:  "node-v18.17.1-linux-x64",
			wantKind: archive.KindTarGz,
		},
		{
			host:     runtimes.Host{OS: "darwin", Arch: "arm64"},
			wantURL:  "https://nodejs.org/dist/v18.17.1/node-v18.17.1-darwin-arm64.tar.gz",
			wantTop:  "node-v18.17.1-darwin-arm64",
			wantKind: archive.KindTarGz,
		},
		{
			host:     runtimes.Host{OS: "windows", Arch: "amd64"},
			wantURL:  "https://nodejs.org/dist/v18.17.1/node-v18.17.1-win-x64.zip",
			wantTop:  "node-v18.17.1-win-x64",
			wantKind: archive.KindZip,
		},
	}
	for _, tt := range tests {
		t.Run(tt.host.String(), func(t *testing.T) {
			a := New(nil, WithHost(tt.host))
			d, err := a.Resolve(t.Context(), "18.17.1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, d.URL)
			assert.Equal(t, tt.wantTop, d.TopLevel)
			assert.Equal(t, tt.wantKind, d.Kind)
		})
	}
}

func TestResolve_UnsupportedHost(t *testing.T) {
	a := New(nil, WithHost(runtimes.Host{OS: "linux", Arch: "riscv64"}))

	_, err := a.Resolve(t.Context(), "v18.17.1")
	var re *errors.ResolutionError
	require.True(t, errors.As(err, &re), "want ResolutionError, got %v", err)
	assert.Equal(t, "linux/riscv64", re.Platform)
	assert.Equal(t, "v18.17.1", re.Version)

	_, _, err = a.PlatformTriple()
	assert.True(t, errors.As(err, &re))
}

func TestBinSubpath(t *testing.T) {
	assert.Equal(t, "bin", New(nil, WithHost(runtimes.Host{OS: "linux", Arch: "amd64"})).BinSubpath())
	assert.Equal(t, "", New(nil, WithHost(runtimes.Host{OS: "windows", Arch: "amd64"})).BinSubpath())
}

func TestListRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/index.json", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"version":"v21.6.1","date":"2024-01-22","lts":false},
			{"version":"v20.11.0","date":"2024-01-09","lts":"Iron"}
		]`))
	}))
	defer srv.Close()

	a := New(download.New(), WithDistURL(srv.URL+"/"))
	got, err := a.ListRemote(t.Context())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, runtimes.RemoteVersion{Version: "v21.6.1", Date: "2024-01-22"}, got[0])
	assert.Equal(t, "LTS: Iron", got[1].Note)
}

func TestListRemote_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(download.New(), WithDistURL(srv.URL)).ListRemote(t.Context())
	require.Error(t, err)
	assert.True(t, download.IsStatus(err, http.StatusBadGateway))
}
