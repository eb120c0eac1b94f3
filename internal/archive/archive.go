// Package archive unpacks downloaded runtime distributions.
//
// Three formats are supported: zip, tar+gzip and tar+zstd. Gzip is streamed
// into the tar reader; zstd payloads are decoded fully into memory first,
// which is acceptable because release archives are bounded by the download
// size limit. Entries that would escape the destination are rejected.
package archive

import (
	"log/slog"
	"os"

	"github.com/thoreinstein/mlvm/internal/errors"
)

// Kind identifies an archive format.
type Kind string

// Supported kinds.
const (
	KindZip    Kind = "zip"
	KindTarGz  Kind = "tar.gz"
	KindTarZst Kind = "tar.zst"
)

// ErrUnsupportedKind is returned for kinds other than the ones above.
var ErrUnsupportedKind = errors.New("unsupported archive kind")

// Kinds returns the supported kinds.
func Kinds() []Kind {
	return []Kind{KindZip, KindTarGz, KindTarZst}
}

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool {
	switch k {
	case KindZip, KindTarGz, KindTarZst:
		return true
	}
	return false
}

// Extension returns the file suffix for k, e.g. ".tar.gz".
func (k Kind) Extension() string {
	return "." + string(k)
}

// Option configures Extract.
type Option func(*extractor)

// WithLogger sets the logger used for per-entry trace output.
func WithLogger(l *slog.Logger) Option {
	return func(e *extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

type extractor struct {
	logger *slog.Logger
	dest   string
	kind   Kind
}

// Extract unpacks data, an archive of the given kind, into dest.
//
// dest must be empty or absent; it is created if needed. A malformed
// archive, an unknown kind or an entry escaping dest yields an
// *errors.FormatError. On any error dest may hold a partial tree and the
// caller is expected to remove it.
func Extract(data []byte, kind Kind, dest string, opts ...Option) error {
	e := &extractor{logger: slog.Default(), dest: dest, kind: kind}
	for _, opt := range opts {
		opt(e)
	}

	if !kind.Valid() {
		return &errors.FormatError{Kind: string(kind), Err: ErrUnsupportedKind}
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dest)
	}

	var err error
	switch kind {
	case KindZip:
		err = e.extractZip(data)
	case KindTarGz:
		err = e.extractTarGz(data)
	case KindTarZst:
		err = e.extractTarZst(data)
	}
	if err != nil {
		return err
	}

	e.logger.Debug("archive extracted", "kind", string(kind), "dest", dest, "bytes", len(data))
	return nil
}

func (e *extractor) formatErr(err error) error {
	return &errors.FormatError{Kind: string(e.kind), Err: err}
}
