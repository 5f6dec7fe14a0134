package profile

import (
	"strings"
)

// SplitTypeName splits "pkg.Type" or "import/path.Type" at the last dot.
// A name without dot has an empty package part.
func SplitTypeName(s string) (pkg, name string) {
	i := strings.LastIndex(s, ".")
	if i < 0 {
		return "", s
	}

	return s[:i], s[i+1:]
}

// MatchesType reports whether a profile type identifier refers to the type
// named name in package pkgPath. Accepted forms:
//   - "Order" (name only)
//   - "store.Order" (short, matches any import path ending in /store)
//   - "property-mapper/store.Order" (full)
func MatchesType(id, pkgPath, name string) bool {
	pkg, typeName := SplitTypeName(id)
	if typeName == "" || typeName != name {
		return false
	}

	if pkg == "" {
		return true
	}

	return pkg == pkgPath || strings.HasSuffix(pkgPath, "/"+pkg)
}
