package archive

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// Sentinels wrapped by the FormatError returned for unsafe entries.
var (
	ErrUnsafePath = errors.New("entry escapes destination")
	ErrUnsafeLink = errors.New("link target escapes destination")
)

// entryPath maps an archive entry name onto a path inside dest.
func entryPath(dest, name string) (string, error) {
	clean := strings.ReplaceAll(name, `\`, "/")
	if clean == "" || strings.HasPrefix(clean, "/") || filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" {
		return "", errors.Wrapf(ErrUnsafePath, "%q", name)
	}

	target := filepath.Join(dest, filepath.FromSlash(clean))
	if !within(dest, target) {
		return "", errors.Wrapf(ErrUnsafePath, "%q", name)
	}
	return target, nil
}

// linkPath checks that a symlink at path pointing to linkname stays inside dest.
func linkPath(dest, path, linkname string) error {
	if linkname == "" || filepath.IsAbs(linkname) || strings.HasPrefix(linkname, "/") {
		return errors.Wrapf(ErrUnsafeLink, "%q", linkname)
	}
	resolved := filepath.Join(filepath.Dir(path), filepath.FromSlash(linkname))
	if !within(dest, resolved) {
		return errors.Wrapf(ErrUnsafeLink, "%q", linkname)
	}
	return nil
}

func within(dest, target string) bool {
	rel, err := filepath.Rel(dest, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// dirMode keeps owner rwx so the tree can be populated and removed.
func dirMode(m fs.FileMode) fs.FileMode {
	return m.Perm() | 0o700
}

// fileMode keeps owner rw so a failed install can be cleaned up.
func fileMode(m fs.FileMode) fs.FileMode {
	return m.Perm() | 0o600
}

func mkdir(path string, mode fs.FileMode) error {
	if err := os.MkdirAll(path, dirMode(mode)); err != nil {
		return errors.Wrapf(err, "creating directory %s", path)
	}
	// MkdirAll leaves existing directories alone; apply the entry's bits.
	if err := os.Chmod(path, dirMode(mode)); err != nil {
		return errors.Wrapf(err, "setting mode on %s", path)
	}
	return nil
}

// symlink creates path pointing at linkname. The target must already have
// passed linkPath.
func symlink(path, linkname string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating parent of %s", path)
	}
	_ = os.Remove(path)
	if err := os.Symlink(filepath.FromSlash(linkname), path); err != nil {
		return errors.Wrapf(err, "creating symlink %s", path)
	}
	return nil
}
