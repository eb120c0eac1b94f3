package archive

import (
	"bytes"
	"context"
	"io"
	"io/fs"

	"github.com/klauspost/compress/zip"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

// maxLinkTarget bounds the size of a zip entry read as a symlink target.
const maxLinkTarget = 4096

func (e *extractor) extractZip(data []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return e.formatErr(errors.Wrap(err, "opening zip"))
	}

	for _, f := range zr.File {
		if err := e.extractZipEntry(f); err != nil {
			return err
		}
		e.logger.Log(context.Background(), logging.LevelTrace, "extracted", "name", f.Name)
	}
	return nil
}

func (e *extractor) extractZipEntry(f *zip.File) error {
	target, err := entryPath(e.dest, f.Name)
	if err != nil {
		return e.formatErr(err)
	}

	mode := f.Mode()
	switch {
	case mode.IsDir():
		return mkdir(target, mode)
	case mode&fs.ModeSymlink != 0:
		linkname, err := readZipEntry(f, maxLinkTarget)
		if err != nil {
			return e.formatErr(err)
		}
		if err := linkPath(e.dest, target, linkname); err != nil {
			return e.formatErr(err)
		}
		return symlink(target, linkname)
	}

	rc, err := f.Open()
	if err != nil {
		return e.formatErr(errors.Wrapf(err, "opening entry %s", f.Name))
	}
	defer rc.Close()

	// Zip files written on Windows often carry no permission bits.
	if mode.Perm() == 0 {
		mode |= 0o644
	}
	return e.writeFile(target, rc, mode)
}

func readZipEntry(f *zip.File, limit int64) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", errors.Wrapf(err, "opening entry %s", f.Name)
	}
	defer rc.Close()

	b, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return "", errors.Wrapf(err, "reading entry %s", f.Name)
	}
	if int64(len(b)) > limit {
		return "", errors.Newf("symlink entry %s is too large", f.Name)
	}
	return string(b), nil
}
