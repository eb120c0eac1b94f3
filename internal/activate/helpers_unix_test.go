//go:build !windows

package activate

import "syscall"

const permissionErrno = syscall.EPERM
