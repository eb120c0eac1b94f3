// Package bun adapts Bun release zips from GitHub.
package bun

import (
	"context"
	"strconv"
	"strings"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Name is the runtime identifier.
const Name = "bun"

// Upstream endpoints.
const (
	DefaultReleasesURL = "https://github.com/oven-sh/bun/releases/download"
	DefaultTagsURL     = "https://api.github.com/repos/oven-sh/bun/tags"
)

// DefaultRemoteLimit is how many tags ListRemote requests.
const DefaultRemoteLimit = 15

// tagPrefix prefixes every Bun release tag: bun-v1.1.30.
const tagPrefix = "bun-"

var targets = map[string]string{
	"linux/amd64":   "bun-linux-x64",
	"linux/arm64":   "bun-linux-aarch64",
	"darwin/amd64":  "bun-darwin-x64",
	"darwin/arm64":  "bun-darwin-aarch64",
	"windows/amd64": "bun-windows-x64",
}

// Adapter implements runtimes.Adapter for Bun.
type Adapter struct {
	catalog     runtimes.Catalog
	host        runtimes.Host
	releasesURL string
	tagsURL     string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHost overrides the detected host.
func WithHost(h runtimes.Host) Option {
	return func(a *Adapter) { a.host = h }
}

// WithReleasesURL points downloads at another server.
func WithReleasesURL(u string) Option {
	return func(a *Adapter) { a.releasesURL = strings.TrimRight(u, "/") }
}

// WithTagsURL points ListRemote at another tags endpoint.
func WithTagsURL(u string) Option {
	return func(a *Adapter) { a.tagsURL = u }
}

// New returns a Bun adapter reading its catalog through c.
func New(c runtimes.Catalog, opts ...Option) *Adapter {
	a := &Adapter{
		catalog:     c,
		host:        runtimes.CurrentHost(),
		releasesURL: DefaultReleasesURL,
		tagsURL:     DefaultTagsURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Name() string        { return Name }
func (a *Adapter) DisplayName() string { return "Bun" }

// Normalize accepts "1.1.30", "v1.1.30" or the tag "bun-v1.1.30" and
// returns "v1.1.30".
func (a *Adapter) Normalize(version string) string {
	v := strings.TrimPrefix(strings.TrimSpace(version), tagPrefix)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}

// PlatformTriple splits the release target, e.g. ("linux", "aarch64").
func (a *Adapter) PlatformTriple() (string, string, error) {
	target, ok := runtimes.Lookup(targets, a.host)
	if !ok {
		return "", "", runtimes.Unsupported(Name, "", a.host)
	}
	parts := strings.SplitN(strings.TrimPrefix(target, tagPrefix), "-", 2)
	return parts[0], parts[1], nil
}

func (a *Adapter) Resolve(_ context.Context, version string) (runtimes.ArchiveDescriptor, error) {
	v := a.Normalize(version)
	target, ok := runtimes.Lookup(targets, a.host)
	if !ok {
		return runtimes.ArchiveDescriptor{}, runtimes.Unsupported(Name, v, a.host)
	}

	return runtimes.ArchiveDescriptor{
		URL:      a.releasesURL + "/" + tagPrefix + v + "/" + target + archive.KindZip.Extension(),
		Kind:     archive.KindZip,
		TopLevel: target,
		Platform: strings.TrimPrefix(target, tagPrefix),
	}, nil
}

// BinSubpath is empty: the bun executable sits at the archive root.
func (a *Adapter) BinSubpath() string { return "" }

type tag struct {
	Name string `json:"name"`
}

// ListRemote returns the most recent release tags, newest first.
func (a *Adapter) ListRemote(ctx context.Context) ([]runtimes.RemoteVersion, error) {
	var tags []tag
	url := a.tagsURL + "?per_page=" + strconv.Itoa(DefaultRemoteLimit)
	if err := a.catalog.GetJSON(ctx, url, &tags); err != nil {
		return nil, errors.Wrap(err, "fetching Bun tags")
	}

	out := make([]runtimes.RemoteVersion, 0, len(tags))
	for _, t := range tags {
		if !strings.HasPrefix(t.Name, tagPrefix+"v") {
			continue
		}
		out = append(out, runtimes.RemoteVersion{Version: a.Normalize(t.Name)})
	}
	runtimes.SortRemoteDescending(out)
	return out, nil
}
