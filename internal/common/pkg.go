package common

import "path"

// PkgAlias returns the default package name for an import path: its last
// element. It returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}
