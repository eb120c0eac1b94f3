package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mlvm/internal/errors"
)

func sizedFile(t *testing.T, size int64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	require.NoError(t, os.Truncate(path, size))
	return path
}

func TestReadFileWithLimit_WithinLimit(t *testing.T) {
	for _, size := range []int64{0, 100, MaxFileSize} {
		data, err := ReadFileWithLimit(sizedFile(t, size))
		require.NoError(t, err)
		assert.Len(t, data, int(size))
	}
}

func TestReadFileWithLimit_TooLarge(t *testing.T) {
	_, err := ReadFileWithLimit(sizedFile(t, MaxFileSize+1))
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
