//go:build windows

package activate

import "golang.org/x/sys/windows"

const permissionErrno = windows.ERROR_PRIVILEGE_NOT_HELD
