// Package activate selects which installed version of a runtime is
// current by pointing the runtime's current link at a version directory.
package activate

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/paths"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Linker creates and removes directory links.
type Linker interface {
	CreateDirectoryLink(target, link string) error
	RemoveLink(link string) error
}

// ActivationInfo describes an active version.
type ActivationInfo struct {
	Runtime string `json:"runtime"`
	Version string `json:"version"`
	Link    string `json:"link"`
	Target  string `json:"target"`
	// BinDir is the directory to put on PATH.
	BinDir string `json:"bin_dir"`
}

// Switch flips the current link of a runtime.
type Switch struct {
	layout paths.Layout
	linker Linker
	logger *slog.Logger
}

// Option configures a Switch.
type Option func(*Switch)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Switch) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLinker replaces the operating system linker.
func WithLinker(l Linker) Option {
	return func(s *Switch) {
		if l != nil {
			s.linker = l
		}
	}
}

// New returns a Switch over layout.
func New(layout paths.Layout, opts ...Option) *Switch {
	s := &Switch{
		layout: layout,
		linker: OSLinker{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Activate points the current link of a's runtime at version. The version
// must already be installed. Activating the active version again is a
// no-op apart from recreating the link.
func (s *Switch) Activate(a runtimes.Adapter, version string) (ActivationInfo, error) {
	v := a.Normalize(version)
	if err := paths.ValidVersion(v); err != nil {
		return ActivationInfo{}, err
	}

	name := a.Name()
	target := s.layout.VersionDir(name, v)
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return ActivationInfo{}, &errors.NotInstalledError{Runtime: name, Version: v}
	}

	link := s.layout.Current(name)
	log := s.logger.With("runtime", name, "version", v, "link", link)

	if err := s.linker.RemoveLink(link); err != nil {
		log.Debug("removing previous link", "error", err)
	}
	if err := s.linker.CreateDirectoryLink(target, link); err != nil {
		if isPermission(err) {
			return ActivationInfo{}, &errors.PermissionError{
				Runtime:     name,
				Version:     v,
				Link:        link,
				Remediation: remediation,
				Err:         err,
			}
		}
		return ActivationInfo{}, errors.Wrapf(err, "linking %s to %s", link, target)
	}

	log.Info("activated", "target", target)
	return s.info(a, v, link, target), nil
}

// Current returns the active version of a's runtime. It returns
// ErrNoActiveVersion when no link exists and a NotInstalledError when the
// link points at a version directory that is gone.
func (s *Switch) Current(a runtimes.Adapter) (ActivationInfo, error) {
	name := a.Name()
	link := s.layout.Current(name)

	dest, err := os.Readlink(link)
	if errors.Is(err, os.ErrNotExist) {
		return ActivationInfo{}, errors.Wrapf(errors.ErrNoActiveVersion, "%s", name)
	}
	if err != nil {
		return ActivationInfo{}, errors.Wrapf(err, "reading %s", link)
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(link), dest)
	}

	v := filepath.Base(dest)
	if info, err := os.Stat(dest); err != nil || !info.IsDir() {
		return ActivationInfo{}, &errors.NotInstalledError{Runtime: name, Version: v}
	}
	return s.info(a, v, link, dest), nil
}

func (s *Switch) info(a runtimes.Adapter, version, link, target string) ActivationInfo {
	bin := link
	if sub := a.BinSubpath(); sub != "" {
		bin = filepath.Join(link, sub)
	}
	return ActivationInfo{
		Runtime: a.Name(),
		Version: version,
		Link:    link,
		Target:  target,
		BinDir:  bin,
	}
}

// OSLinker links through the operating system.
type OSLinker struct{}

// CreateDirectoryLink creates link pointing at the absolute path target.
func (OSLinker) CreateDirectoryLink(target, link string) error {
	abs, err := filepath.Abs(target)
	if err != nil {
		return errors.Wrapf(err, "resolving %s", target)
	}
	return createLink(abs, link)
}

// RemoveLink removes whatever occupies link. A missing link is not an
// error.
func (OSLinker) RemoveLink(link string) error {
	info, err := os.Lstat(link)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeSymlink != 0 || !info.IsDir() {
		return os.Remove(link)
	}
	return os.RemoveAll(link)
}
