//go:build !windows

package activate

import (
	"os"
	"syscall"

	"github.com/thoreinstein/mlvm/internal/errors"
)

const remediation = "Check that you own the runtime directory and can write to it."

func createLink(target, link string) error {
	return os.Symlink(target, link)
}

func isPermission(err error) bool {
	return errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}
