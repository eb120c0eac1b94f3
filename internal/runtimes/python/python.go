// Package python adapts python-build-standalone install_only archives.
//
// Release tags on that project are build dates, so a version is resolved
// by scanning recent releases for an asset named
//
//	cpython-<X.Y.Z>+<build>-<triple>-install_only.tar.zst
//
// and picking the highest matching version from the newest build.
package python

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Name is the runtime identifier.
const Name = "python"

// DefaultReleasesURL is the GitHub releases API of python-build-standalone.
const DefaultReleasesURL = "https://api.github.com/repos/astral-sh/python-build-standalone/releases"

// DefaultReleaseCount is how many recent releases are scanned.
const DefaultReleaseCount = 20

const topLevel = "python"

var (
	archNames = map[string]string{"amd64": "x86_64", "arm64": "aarch64"}
	osNames   = map[string]string{
		"linux":   "unknown-linux-gnu",
		"darwin":  "apple-darwin",
		"windows": "pc-windows-msvc",
	}
)

var assetPattern = regexp.MustCompile(`^cpython-(\d+\.\d+\.\d+)\+(\d+)-(.+)-install_only\.(tar\.zst|tar\.gz)$`)

// Adapter implements runtimes.Adapter for CPython.
type Adapter struct {
	catalog     runtimes.Catalog
	host        runtimes.Host
	releasesURL string
	perPage     int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHost overrides the detected host.
func WithHost(h runtimes.Host) Option {
	return func(a *Adapter) { a.host = h }
}

// WithReleasesURL points the release scan at another endpoint.
func WithReleasesURL(u string) Option {
	return func(a *Adapter) { a.releasesURL = u }
}

// New returns a Python adapter reading releases through c.
func New(c runtimes.Catalog, opts ...Option) *Adapter {
	a := &Adapter{
		catalog:     c,
		host:        runtimes.CurrentHost(),
		releasesURL: DefaultReleasesURL,
		perPage:     DefaultReleaseCount,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Name() string        { return Name }
func (a *Adapter) DisplayName() string { return "Python" }

// Normalize strips leading v characters. Partial versions such as "3.11" are kept;
// they resolve to the latest matching patch release.
func (a *Adapter) Normalize(version string) string {
	return strings.TrimLeft(strings.TrimSpace(version), "v")
}

// PlatformTriple returns the target triple halves, e.g.
// ("unknown-linux-gnu", "x86_64").
func (a *Adapter) PlatformTriple() (string, string, error) {
	arch, okArch := archNames[a.host.Arch]
	osName, okOS := osNames[a.host.OS]
	if !okArch || !okOS {
		return "", "", runtimes.Unsupported(Name, "", a.host)
	}
	return osName, arch, nil
}

func (a *Adapter) triple() (string, error) {
	osName, arch, err := a.PlatformTriple()
	if err != nil {
		return "", err
	}
	return arch + "-" + osName, nil
}

type release struct {
	TagName string  `json:"tag_name"`
	Assets  []asset `json:"assets"`
}

type asset struct {
	Name string `json:"name"`
	URL  string `json:"browser_download_url"`
}

type build struct {
	version string
	build   string
	kind    archive.Kind
	url     string
}

func (a *Adapter) builds(ctx context.Context, triple string) ([]build, error) {
	var releases []release
	url := a.releasesURL + "?per_page=" + strconv.Itoa(a.perPage)
	if err := a.catalog.GetJSON(ctx, url, &releases); err != nil {
		return nil, errors.Wrap(err, "fetching python-build-standalone releases")
	}

	var out []build
	for _, r := range releases {
		for _, as := range r.Assets {
			m := assetPattern.FindStringSubmatch(as.Name)
			if m == nil || m[3] != triple {
				continue
			}
			out = append(out, build{version: m[1], build: m[2], kind: archive.Kind(m[4]), url: as.URL})
		}
	}
	return out, nil
}

// better orders candidates: higher version, then newer build, then zstd.
func better(x, y build) bool {
	if c := runtimes.CompareVersions(x.version, y.version); c != 0 {
		return c > 0
	}
	if len(x.build) != len(y.build) {
		return len(x.build) > len(y.build)
	}
	if x.build != y.build {
		return x.build > y.build
	}
	return x.kind == archive.KindTarZst && y.kind != archive.KindTarZst
}

func (a *Adapter) Resolve(ctx context.Context, version string) (runtimes.ArchiveDescriptor, error) {
	v := a.Normalize(version)
	triple, err := a.triple()
	if err != nil {
		var re *errors.ResolutionError
		if errors.As(err, &re) {
			re.Version = v
		}
		return runtimes.ArchiveDescriptor{}, err
	}

	candidates, err := a.builds(ctx, triple)
	if err != nil {
		return runtimes.ArchiveDescriptor{}, errors.Wrapf(err, "resolving python %s", v)
	}

	var best *build
	for i := range candidates {
		c := candidates[i]
		if !runtimes.MatchPrefix(v, c.version) {
			continue
		}
		if best == nil || better(c, *best) {
			best = &c
		}
	}
	if best == nil {
		return runtimes.ArchiveDescriptor{}, &errors.ResolutionError{
			Runtime: Name, Version: v, Platform: triple, Reason: "no install_only build in recent releases",
		}
	}

	return runtimes.ArchiveDescriptor{
		URL:      best.url,
		Kind:     best.kind,
		TopLevel: topLevel,
		Platform: triple,
	}, nil
}

// BinSubpath is bin on Unix; Windows builds keep python.exe at the root.
func (a *Adapter) BinSubpath() string {
	if a.host.OS == "windows" {
		return ""
	}
	return "bin"
}

// ListRemote returns the distinct versions built for this host.
func (a *Adapter) ListRemote(ctx context.Context) ([]runtimes.RemoteVersion, error) {
	triple, err := a.triple()
	if err != nil {
		return nil, err
	}
	candidates, err := a.builds(ctx, triple)
	if err != nil {
		return nil, err
	}

	newest := map[string]build{}
	for _, c := range candidates {
		if cur, ok := newest[c.version]; !ok || better(c, cur) {
			newest[c.version] = c
		}
	}

	out := make([]runtimes.RemoteVersion, 0, len(newest))
	for v, b := range newest {
		out = append(out, runtimes.RemoteVersion{Version: v, Note: "build " + b.build})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	runtimes.SortRemoteDescending(out)
	return out, nil
}
