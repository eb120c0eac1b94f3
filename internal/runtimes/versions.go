package runtimes

import (
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions orders two version names. Names that parse as semantic
// versions (with or without a leading v) compare numerically and sort
// after names that do not; the rest compare lexically.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case errA == nil:
		return 1
	case errB == nil:
		return -1
	default:
		return strings.Compare(a, b)
	}
}

// SortDescending sorts version names newest first.
func SortDescending(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return CompareVersions(names[i], names[j]) > 0
	})
}

// SortRemoteDescending sorts catalog entries newest first.
func SortRemoteDescending(vs []RemoteVersion) {
	sort.SliceStable(vs, func(i, j int) bool {
		return CompareVersions(vs[i].Version, vs[j].Version) > 0
	})
}

// MatchPrefix reports whether candidate satisfies the possibly partial
// version want: "3.11" matches any 3.11.x, "3.11.9" only itself.
func MatchPrefix(want, candidate string) bool {
	cv, err := semver.NewVersion(candidate)
	if err != nil {
		return false
	}

	want = strings.TrimPrefix(strings.TrimSpace(want), "v")
	op := "="
	if strings.Count(want, ".") < 2 {
		op = "~"
	}
	c, err := semver.NewConstraint(op + want)
	if err != nil {
		return false
	}
	return c.Check(cv)
}
