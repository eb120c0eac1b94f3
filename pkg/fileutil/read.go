package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// MaxFileSize bounds ReadFileWithLimit. Config files are far smaller.
const MaxFileSize = 1 << 20

// ErrFileTooLarge is returned for files over MaxFileSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize)

// ReadFileWithLimit is os.ReadFile that refuses files over MaxFileSize.
// Files that grow while being read are caught by reading one byte past
// the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}
