// Package golang adapts the Go toolchain archives published on go.dev.
package golang

import (
	"context"
	"strings"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Name is the runtime identifier.
const Name = "go"

// DefaultDownloadURL serves both archives and the JSON catalog.
const DefaultDownloadURL = "https://go.dev/dl"

// topLevel is the directory every Go archive unpacks to.
const topLevel = "go"

var kinds = map[string]archive.Kind{
	"linux/amd64":   archive.KindTarGz,
	"linux/arm64":   archive.KindTarGz,
	"darwin/amd64":  archive.KindTarGz,
	"darwin/arm64":  archive.KindTarGz,
	"windows/amd64": archive.KindZip,
	"windows/386":   archive.KindZip,
}

// Adapter implements runtimes.Adapter for Go.
type Adapter struct {
	catalog runtimes.Catalog
	host    runtimes.Host
	baseURL string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHost overrides the detected host.
func WithHost(h runtimes.Host) Option {
	return func(a *Adapter) { a.host = h }
}

// WithDownloadURL points downloads and the catalog at another server.
func WithDownloadURL(u string) Option {
	return func(a *Adapter) { a.baseURL = strings.TrimRight(u, "/") }
}

// New returns a Go adapter reading its catalog through c.
func New(c runtimes.Catalog, opts ...Option) *Adapter {
	a := &Adapter{
		catalog: c,
		host:    runtimes.CurrentHost(),
		baseURL: DefaultDownloadURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Name() string        { return Name }
func (a *Adapter) DisplayName() string { return "Go" }

// Normalize strips any run of go and v prefixes: "go1.22.0" becomes "1.22.0".
func (a *Adapter) Normalize(version string) string {
	v := strings.TrimSpace(version)
	for {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(v, "go"), "v")
		if trimmed == v {
			return v
		}
		v = trimmed
	}
}

// PlatformTriple returns GOOS and GOARCH, which go.dev uses verbatim.
func (a *Adapter) PlatformTriple() (string, string, error) {
	if _, ok := runtimes.Lookup(kinds, a.host); !ok {
		return "", "", runtimes.Unsupported(Name, "", a.host)
	}
	return a.host.OS, a.host.Arch, nil
}

func (a *Adapter) Resolve(_ context.Context, version string) (runtimes.ArchiveDescriptor, error) {
	v := a.Normalize(version)
	kind, ok := runtimes.Lookup(kinds, a.host)
	if !ok {
		return runtimes.ArchiveDescriptor{}, runtimes.Unsupported(Name, v, a.host)
	}

	platform := a.host.OS + "-" + a.host.Arch
	return runtimes.ArchiveDescriptor{
		URL:      a.baseURL + "/go" + v + "." + platform + kind.Extension(),
		Kind:     kind,
		TopLevel: topLevel,
		Platform: platform,
	}, nil
}

func (a *Adapter) BinSubpath() string { return "bin" }

type release struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
}

// ListRemote reads the go.dev catalog, including unstable releases.
func (a *Adapter) ListRemote(ctx context.Context) ([]runtimes.RemoteVersion, error) {
	var releases []release
	if err := a.catalog.GetJSON(ctx, a.baseURL+"/?mode=json&include=all", &releases); err != nil {
		return nil, errors.Wrap(err, "fetching Go release index")
	}

	out := make([]runtimes.RemoteVersion, 0, len(releases))
	for _, r := range releases {
		rv := runtimes.RemoteVersion{Version: a.Normalize(r.Version)}
		if !r.Stable {
			rv.Note = "unstable"
		}
		out = append(out, rv)
	}
	return out, nil
}
