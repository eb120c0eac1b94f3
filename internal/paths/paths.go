package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// AppName is the directory name used under XDG homes and the user's home.
const AppName = "mlvm"

// Reserved entry names inside a runtime root. Neither is ever a version.
const (
	CurrentName = "current"
	ScratchName = "temp_unpack"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the permission for directories mlvm creates.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// DefaultBase returns ~/.mlvm.
func DefaultBase() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+AppName), nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the mlvm directory under ConfigHome.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the mlvm config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Layout computes per-runtime paths under a base directory.
type Layout struct {
	Base string
}

// NewLayout returns a Layout rooted at base. An empty base selects
// DefaultBase. A leading ~ is expanded and relative bases are made absolute.
func NewLayout(base string) (Layout, error) {
	if strings.TrimSpace(base) == "" {
		def, err := DefaultBase()
		if err != nil {
			return Layout{}, err
		}
		return Layout{Base: def}, nil
	}

	expanded, err := ExpandHome(base)
	if err != nil {
		return Layout{}, err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return Layout{}, errors.Wrapf(ErrInvalidPath, "%s: %v", base, err)
	}
	return Layout{Base: abs}, nil
}

// Root returns <base>/<runtime>.
func (l Layout) Root(runtime string) string {
	return filepath.Join(l.Base, runtime)
}

// VersionDir returns <base>/<runtime>/<version>.
func (l Layout) VersionDir(runtime, version string) string {
	return filepath.Join(l.Root(runtime), version)
}

// Current returns the path of the runtime's current link.
func (l Layout) Current(runtime string) string {
	return filepath.Join(l.Root(runtime), CurrentName)
}

// Scratch returns the runtime's temporary extraction directory.
func (l Layout) Scratch(runtime string) string {
	return filepath.Join(l.Root(runtime), ScratchName)
}

// ValidVersion checks that a normalized version names exactly one entry
// of a runtime root. Separators, "." and ".." and the reserved names are
// rejected with errors.ErrInvalidVersion; the empty string with
// errors.ErrMissingVersion.
func ValidVersion(v string) error {
	switch {
	case v == "":
		return errors.ErrMissingVersion
	case v == "." || v == "..":
		return errors.Mark(errors.Newf("version %q is not a directory name", v), errors.ErrInvalidVersion)
	case strings.ContainsAny(v, `/\`):
		return errors.Mark(errors.Newf("version %q contains a path separator", v), errors.ErrInvalidVersion)
	case strings.ContainsRune(v, '\x00'):
		return errors.Mark(errors.Newf("version %q contains a NUL byte", v), errors.ErrInvalidVersion)
	case IsReserved(v):
		return errors.Mark(errors.Newf("version %q is reserved", v), errors.ErrInvalidVersion)
	}
	return nil
}

// IsReserved reports whether name is a reserved entry of a runtime root.
func IsReserved(name string) bool {
	return name == CurrentName || name == ScratchName
}
