// Package paths resolves the directories mlvm reads and writes.
//
// Installed runtimes live under a base directory, ~/.mlvm by default:
//
//	<base>/<runtime>/<version>/   one immutable tree per installed version
//	<base>/<runtime>/current      link to the active version
//	<base>/<runtime>/temp_unpack  scratch space owned by a running install
//
// [Layout] computes those paths. Configuration lives under the XDG config
// home, resolved through github.com/adrg/xdg:
//
//	paths.ConfigHome() // ~/.config on Linux
package paths
