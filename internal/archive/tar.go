package archive

import (
	"archive/tar"
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/thoreinstein/mlvm/internal/errors"
	"github.com/thoreinstein/mlvm/internal/logging"
)

func (e *extractor) extractTarGz(data []byte) error {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return e.formatErr(errors.Wrap(err, "opening gzip stream"))
	}
	defer zr.Close()

	return e.untar(zr)
}

func (e *extractor) extractTarZst(data []byte) error {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return errors.Wrap(err, "creating zstd decoder")
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return e.formatErr(errors.Wrap(err, "decoding zstd frame"))
	}

	return e.untar(bytes.NewReader(raw))
}

func (e *extractor) untar(r io.Reader) error {
	tr := tar.NewReader(r)
	entries := 0

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return e.formatErr(errors.Wrap(err, "reading tar header"))
		}

		target, err := entryPath(e.dest, hdr.Name)
		if err != nil {
			return e.formatErr(err)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := mkdir(target, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := e.writeFile(target, tr, hdr.FileInfo().Mode()); err != nil {
				return err
			}
		case tar.TypeSymlink:
			if err := linkPath(e.dest, target, hdr.Linkname); err != nil {
				return e.formatErr(err)
			}
			if err := symlink(target, hdr.Linkname); err != nil {
				return err
			}
		case tar.TypeLink:
			if err := e.hardlink(target, hdr.Linkname); err != nil {
				return err
			}
		case tar.TypeXGlobalHeader:
			continue
		default:
			e.logger.Log(context.Background(), logging.LevelTrace, "skipping tar entry", "name", hdr.Name, "type", string(hdr.Typeflag))
			continue
		}

		entries++
		e.logger.Log(context.Background(), logging.LevelTrace, "extracted", "name", hdr.Name)
	}

	if entries == 0 {
		e.logger.Debug("tar archive has no entries", "kind", string(e.kind))
	}
	return nil
}

func (e *extractor) writeFile(path string, r io.Reader, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating parent of %s", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode(mode))
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return errors.Wrapf(err, "writing %s", path)
		}
		return e.formatErr(errors.Wrapf(err, "reading entry %s", path))
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	return nil
}

// hardlink links path to an earlier entry. Link targets in tar are archive
// paths, so they resolve against dest rather than the entry's directory.
func (e *extractor) hardlink(path, linkname string) error {
	src, err := entryPath(e.dest, linkname)
	if err != nil {
		return e.formatErr(errors.Mark(err, ErrUnsafeLink))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating parent of %s", path)
	}
	_ = os.Remove(path)
	if err := os.Link(src, path); err == nil {
		return nil
	}

	// Some filesystems refuse hard links; fall back to a copy.
	in, err := os.Open(src)
	if err != nil {
		return e.formatErr(errors.Wrapf(err, "hard link %s to missing entry %s", path, linkname))
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Wrapf(err, "stat %s", src)
	}
	return e.writeFile(path, in, info.Mode())
}
