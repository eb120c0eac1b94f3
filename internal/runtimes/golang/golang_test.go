package golang

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
	for in, want := range map[string]string{
		"go1.22.0":  "1.22.0",
		"1.22.0":    "1.22.0",
		"v1.21":     "1.21",
		"go1.23rc1": "1.23rc1",
		"vgo1.22.0": "1.22.0",
		"gov1.22.0": "1.22.0",
		"gogo1.21":  "1.21",
	} {
		got := a.Normalize(in)
		assert.Equal(t, want, got, "Normalize(%q)", in)
		assert.Equal(t, got, a.Normalize(got), "Normalize must be idempotent for %q", in)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		host     runtimes.Host
		wantURL  string
		wantKind archive.Kind
	}{
		{runtimes.Host{OS: "linux", Arch: "amd64"}, "https://go.dev/dl/go1.22.0.linux-amd64.tar.gz", archive.KindTarGz},
		{runtimes.Host{OS: "darwin", Arch: "arm64"}, "https://go.dev/dl/go1.22.0.darwin-arm64.tar.gz", archive.KindTarGz},
		{runtimes.Host{OS: "windows", Arch: "386"}, "https://go.dev/dl/go1.22.0.windows-386.zip", archive.KindZip},
	}
	for _, tt := range tests {
		t.Run(tt.host.String(), func(t *testing.T) {
			d, err := New(nil, WithHost(tt.host)).Resolve(t.Context(), "go1.22.0")
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL, d.URL)
			assert.Equal(t, tt.wantKind, d.Kind)
			assert.Equal(t, "go", d.TopLevel)
		})
	}
}

func TestResolve_UnsupportedHost(t *testing.T) {
	_, err := New(nil, WithHost(runtimes.Host{OS: "windows", Arch: "arm64"})).Resolve(t.Context(), "1.22.0")
	var re *errors.ResolutionError
	require.True(t, errors.As(err, &re), "want ResolutionError, got %v", err)
	assert.Equal(t, "windows/arm64", re.Platform)
}

func TestListRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("mode"))
		assert.Equal(t, "all", r.URL.Query().Get("include"))
		_, _ = w.Write([]byte(`[{"version":"go1.23rc1","stable":false},{"version":"go1.22.0","stable":true}]`))
	}))
	defer srv.Close()

	got, err := New(download.New(), WithDownloadURL(srv.URL)).ListRemote(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []runtimes.RemoteVersion{
		{Version: "1.23rc1", Note: "unstable"},
		{Version: "1.22.0"},
	}, got)
}
