//go:build windows

package activate

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/thoreinstein/mlvm/internal/errors"
)

const remediation = "Enable Developer Mode (Settings > Update & Security > For Developers) or run the terminal as Administrator."

// createLink makes a directory symbolic link. Go requests unprivileged
// creation, which succeeds only with Developer Mode enabled.
func createLink(target, link string) error {
	return os.Symlink(target, link)
}

func isPermission(err error) bool {
	return errors.Is(err, windows.ERROR_PRIVILEGE_NOT_HELD) || errors.Is(err, windows.ERROR_ACCESS_DENIED)
}
