// Package node adapts Node.js release tarballs from nodejs.org.
package node

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Name is the runtime identifier.
const Name = "node"

// DefaultDistURL is the root of the official distribution mirror.
const DefaultDistURL = "https://nodejs.org/dist"

type platform struct {
	os   string
	arch string
	kind archive.Kind
}

var platforms = map[string]platform{
	"linux/amd64":   {"linux", "x64", archive.KindTarGz},
	"linux/arm64":   {"linux", "arm64", archive.KindTarGz},
	"darwin/amd64":  {"darwin", "x64", archive.KindTarGz},
	"darwin/arm64":  {"darwin", "arm64", archive.KindTarGz},
	"windows/amd64": {"win", "x64", archive.KindZip},
	"windows/arm64": {"win", "arm64", archive.KindZip},
}

// Adapter implements runtimes.Adapter for Node.js.
type Adapter struct {
	catalog runtimes.Catalog
	host    runtimes.Host
	distURL string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHost overrides the detected host.
func WithHost(h runtimes.Host) Option {
	return func(a *Adapter) { a.host = h }
}

// WithDistURL points downloads and the catalog at another mirror.
func WithDistURL(u string) Option {
	return func(a *Adapter) { a.distURL = strings.TrimRight(u, "/") }
}

// New returns a Node.js adapter reading its catalog through c.
func New(c runtimes.Catalog, opts ...Option) *Adapter {
	a := &Adapter{
		catalog: c,
		host:    runtimes.CurrentHost(),
		distURL: DefaultDistURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Name() string        { return Name }
func (a *Adapter) DisplayName() string { return "Node.js" }

// Normalize ensures a leading v: "18.17.1" becomes "v18.17.1".
func (a *Adapter) Normalize(version string) string {
	v := strings.TrimSpace(version)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

func (a *Adapter) PlatformTriple() (string, string, error) {
	p, ok := runtimes.Lookup(platforms, a.host)
	if !ok {
		return "", "", runtimes.Unsupported(Name, "", a.host)
	}
	return p.os, p.arch, nil
}

// Resolve builds the archive URL directly; nodejs.org needs no lookup.
func (a *Adapter) Resolve(_ context.Context, version string) (runtimes.ArchiveDescriptor, error) {
	v := a.Normalize(version)
	p, ok := runtimes.Lookup(platforms, a.host)
	if !ok {
		return runtimes.ArchiveDescriptor{}, runtimes.Unsupported(Name, v, a.host)
	}

	base := "node-" + v + "-" + p.os + "-" + p.arch
	return runtimes.ArchiveDescriptor{
		URL:      a.distURL + "/" + v + "/" + base + p.kind.Extension(),
		Kind:     p.kind,
		TopLevel: base,
		Platform: p.os + "-" + p.arch,
	}, nil
}

// BinSubpath is bin on Unix; Windows zips keep node.exe at the root.
func (a *Adapter) BinSubpath() string {
	if a.host.OS == "windows" {
		return ""
	}
	return "bin"
}

type indexEntry struct {
	Version string          `json:"version"`
	Date    string          `json:"date"`
	LTS     json.RawMessage `json:"lts"`
}

// ListRemote reads index.json. LTS lines carry their codename in Note.
func (a *Adapter) ListRemote(ctx context.Context) ([]runtimes.RemoteVersion, error) {
	var index []indexEntry
	if err := a.catalog.GetJSON(ctx, a.distURL+"/index.json", &index); err != nil {
		return nil, errors.Wrap(err, "fetching Node.js release index")
	}

	out := make([]runtimes.RemoteVersion, 0, len(index))
	for _, e := range index {
		rv := runtimes.RemoteVersion{Version: e.Version, Date: e.Date}
		// lts is false or a codename string.
		var codename string
		if json.Unmarshal(e.LTS, &codename) == nil && codename != "" {
			rv.Note = "LTS: " + codename
		}
		out = append(out, rv)
	}
	return out, nil
}
