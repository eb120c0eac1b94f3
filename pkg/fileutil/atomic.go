// Package fileutil provides small file system helpers used by the mlvm CLI.
package fileutil

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// AtomicWriteFile replaces path with data. The bytes go to a temp file in
// the same directory, which is synced and renamed over path; readers see
// either the old or the new content. Missing parents are created.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".mlvm-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	name := tmp.Name()

	if err := fill(tmp, data, perm); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return errors.Wrapf(err, "replacing %s", path)
	}
	return nil
}

// fill writes, syncs, chmods and closes f. f is closed on every path.
func fill(f *os.File, data []byte, perm os.FileMode) error {
	steps := []struct {
		what string
		do   func() error
	}{
		{"writing", func() error { _, err := f.Write(data); return err }},
		{"syncing", f.Sync},
		{"setting permissions on", func() error { return f.Chmod(perm) }},
	}
	for _, s := range steps {
		if err := s.do(); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "%s temp file", s.what)
		}
	}
	return errors.Wrap(f.Close(), "closing temp file")
}

// AtomicWriteYAML marshals v and writes it with AtomicWriteFile. A zero
// perm means 0600, since config files may hold a GitHub token.
func AtomicWriteYAML(path string, v any, perm os.FileMode) (err error) {
	// yaml.Marshal panics on some unsupported types.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("marshaling YAML: %v", r)
		}
	}()

	if perm == 0 {
		perm = 0o600
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return AtomicWriteFile(path, data, perm)
}
