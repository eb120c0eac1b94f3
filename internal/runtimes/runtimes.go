package runtimes

import (
	"context"
	"runtime"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
)

// Adapter supplies everything ecosystem-specific about a runtime.
type Adapter interface {
	// Name is the directory and command name, e.g. "node".
	Name() string

	// DisplayName is the human name, e.g. "Node.js".
	DisplayName() string

	// Normalize maps user input to the on-disk version name. It must be
	// deterministic and idempotent.
	Normalize(version string) string

	// PlatformTriple returns the vendor's os and arch names for the host,
	// or a *errors.ResolutionError when the host is not supported.
	PlatformTriple() (osName, arch string, err error)

	// Resolve returns the archive for a normalized version on the host.
	Resolve(ctx context.Context, version string) (ArchiveDescriptor, error)

	// BinSubpath is the binary directory relative to an install root.
	// An empty string means the root itself.
	BinSubpath() string

	// ListRemote returns versions offered upstream, newest first.
	ListRemote(ctx context.Context) ([]RemoteVersion, error)
}

// ArchiveDescriptor is the resolved download contract for one version on
// one platform.
type ArchiveDescriptor struct {
	URL      string
	Kind     archive.Kind
	TopLevel string
	Platform string
}

// RemoteVersion is one entry of an upstream catalog.
type RemoteVersion struct {
	Version string `json:"version"`
	// Note carries catalog-specific detail such as an LTS codename.
	Note string `json:"note,omitempty"`
	Date string `json:"date,omitempty"`
}

// Catalog fetches JSON documents. *download.Client satisfies it.
type Catalog interface {
	GetJSON(ctx context.Context, url string, v any) error
}

// Host is an (os, arch) pair in Go's GOOS/GOARCH vocabulary.
type Host struct {
	OS   string
	Arch string
}

// CurrentHost returns the host the binary runs on.
func CurrentHost() Host {
	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (h Host) String() string {
	return h.OS + "/" + h.Arch
}

// Unsupported returns the ResolutionError for a host missing from an
// adapter's platform table.
func Unsupported(runtimeName, version string, h Host) *errors.ResolutionError {
	return &errors.ResolutionError{
		Runtime:  runtimeName,
		Version:  version,
		Platform: h.String(),
		Reason:   "platform not supported",
	}
}

// Lookup maps h through a platform table keyed by "os/arch".
func Lookup[T any](table map[string]T, h Host) (T, bool) {
	v, ok := table[h.String()]
	return v, ok
}
