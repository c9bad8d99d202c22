package common

import (
	"path"
	"strings"
)

// PkgAlias returns the name a package path is referred to by when imported without
// an alias: the last path element, skipping a major version element ("v2") and a
// gopkg.in style ".vN" suffix. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if dir := path.Dir(pkgPath); dir != "." && isMajorVersion(base) {
		base = path.Base(dir)
	}

	if i := strings.LastIndex(base, ".v"); i > 0 && isDigits(base[i+2:]) {
		base = base[:i]
	}

	return base
}

func isMajorVersion(s string) bool {
	return len(s) > 1 && s[0] == 'v' && isDigits(s[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
