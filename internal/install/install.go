// Package install turns a requested runtime version into an installed,
// immutable directory under the mlvm home.
//
// An install downloads the archive an adapter describes, unpacks it into
// the runtime's scratch directory, checks that the expected top-level
// folder is present, and renames that folder into place. The rename is the
// only commit point: a version directory either does not exist or is
// complete. Existing version directories short-circuit the whole process.
package install

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/thoreinstein/mlvm/internal/archive"
	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/paths"
	"github.com/thoreinstein/mlvm/internal/runtimes"
)

// Relocation retry defaults.
const (
	DefaultRenameAttempts = 3
	DefaultRenameBackoff  = 500 * time.Millisecond
)

// Fetcher downloads a payload. *download.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// InstalledVersion describes a version directory.
type InstalledVersion struct {
	Runtime string `json:"runtime"`
	Version string `json:"version"`
	Path    string `json:"path"`
	// AlreadyInstalled is set when Install found the directory present.
	AlreadyInstalled bool `json:"-"`
}

// Planner installs runtime versions into a Layout.
type Planner struct {
	layout   paths.Layout
	fetcher  Fetcher
	logger   *slog.Logger
	attempts int
	backoff  time.Duration

	rename  func(oldpath, newpath string) error
	sleep   func(ctx context.Context, d time.Duration) error
	extract func(data []byte, kind archive.Kind, dest string, opts ...archive.Option) error
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithRenameRetry sets how often the final rename is attempted and the
// fixed pause between attempts.
func WithRenameRetry(attempts int, backoff time.Duration) Option {
	return func(p *Planner) {
		if attempts > 0 {
			p.attempts = attempts
		}
		if backoff >= 0 {
			p.backoff = backoff
		}
	}
}

// New returns a Planner that downloads through f.
func New(layout paths.Layout, f Fetcher, opts ...Option) *Planner {
	p := &Planner{
		layout:   layout,
		fetcher:  f,
		logger:   slog.Default(),
		attempts: DefaultRenameAttempts,
		backoff:  DefaultRenameBackoff,
		rename:   os.Rename,
		sleep:    sleepContext,
		extract:  archive.Extract,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Install makes version of a's runtime present under the layout.
//
// A version directory that already exists is returned as is, without
// network access. Every failure leaves the version directory absent and
// the scratch directory removed.
func (p *Planner) Install(ctx context.Context, a runtimes.Adapter, version string) (InstalledVersion, error) {
	v := a.Normalize(version)
	if err := paths.ValidVersion(v); err != nil {
		return InstalledVersion{}, err
	}

	name := a.Name()
	final := p.layout.VersionDir(name, v)
	log := p.logger.With("runtime", name, "version", v)
	result := InstalledVersion{Runtime: name, Version: v, Path: final}

	if ok, err := isDir(final); err != nil {
		return InstalledVersion{}, err
	} else if ok {
		log.Info("already installed", "path", final)
		result.AlreadyInstalled = true
		return result, nil
	}

	desc, err := a.Resolve(ctx, v)
	if err != nil {
		return InstalledVersion{}, err
	}
	log = log.With("platform", desc.Platform)
	log.Info("downloading", "url", desc.URL, "kind", string(desc.Kind))

	data, err := p.fetcher.Fetch(ctx, desc.URL)
	if err != nil {
		return InstalledVersion{}, &errors.DownloadError{
			Runtime:  name,
			Version:  v,
			Platform: desc.Platform,
			URL:      desc.URL,
			Err:      err,
		}
	}

	root := p.layout.Root(name)
	if err := paths.EnsureDir(root, 0); err != nil {
		return InstalledVersion{}, errors.Wrapf(err, "creating %s", root)
	}

	scratch := p.layout.Scratch(name)
	if err := os.RemoveAll(scratch); err != nil {
		log.Debug("removing stale scratch directory", "path", scratch, "error", err)
	}
	defer func() {
		if err := os.RemoveAll(scratch); err != nil {
			log.Warn("removing scratch directory", "path", scratch, "error", err)
		}
	}()

	if err := p.extract(data, desc.Kind, scratch, archive.WithLogger(log)); err != nil {
		return InstalledVersion{}, errors.Wrapf(err, "unpacking %s %s", name, v)
	}

	src := filepath.Join(scratch, desc.TopLevel)
	if ok, _ := isDir(src); !ok {
		return InstalledVersion{}, &errors.LayoutError{
			Runtime:  name,
			Version:  v,
			Expected: desc.TopLevel,
			Found:    entries(scratch),
		}
	}

	committed, err := p.relocate(ctx, log, src, final)
	if err != nil {
		return InstalledVersion{}, &errors.RelocationError{
			Runtime:  name,
			Version:  v,
			From:     src,
			To:       final,
			Attempts: p.attempts,
			Err:      err,
		}
	}
	if !committed {
		result.AlreadyInstalled = true
		return result, nil
	}

	log.Info("installed", "path", final)
	return result, nil
}

// relocate renames src to dst, retrying with a fixed backoff. It reports
// false without error when another process committed dst first.
func (p *Planner) relocate(ctx context.Context, log *slog.Logger, src, dst string) (bool, error) {
	var err error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		if err = p.rename(src, dst); err == nil {
			return true, nil
		}
		if ok, _ := isDir(dst); ok {
			log.Info("version committed concurrently", "path", dst)
			return false, nil
		}

		log.Debug("rename failed", "attempt", attempt, "of", p.attempts, "error", err)
		if attempt == p.attempts {
			break
		}
		if sleepErr := p.sleep(ctx, p.backoff); sleepErr != nil {
			return false, errors.Join(err, sleepErr)
		}
	}
	return false, err
}

// List returns the installed versions of runtime, newest first. A runtime
// that was never installed yields an empty list.
func (p *Planner) List(runtime string) ([]InstalledVersion, error) {
	root := p.layout.Root(runtime)
	dirents, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", root)
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !d.IsDir() || paths.IsReserved(d.Name()) || d.Name()[0] == '.' {
			continue
		}
		names = append(names, d.Name())
	}
	runtimes.SortDescending(names)

	out := make([]InstalledVersion, len(names))
	for i, n := range names {
		out[i] = InstalledVersion{Runtime: runtime, Version: n, Path: filepath.Join(root, n)}
	}
	return out, nil
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}
	if !info.IsDir() {
		return false, errors.Newf("%s exists and is not a directory", path)
	}
	return true, nil
}

func entries(dir string) []string {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, len(dirents))
	for i, d := range dirents {
		names[i] = d.Name()
	}
	sort.Strings(names)
	return names
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
