package fs

import (
	"path/filepath"
	"strings"
)

// IsLocal reports whether path is a relative path that stays below the directory it is joined to, even after
// cleaning `..` segments. It follows `filepath.IsLocal` from Go 1.20 for unix paths.
func IsLocal(path string) bool {
	if filepath.IsAbs(path) || path == "" {
		return false
	}
	hasDots := false
	for p := path; p != ""; {
		var part string
		part, p, _ = strings.Cut(p, "/")
		if part == "." || part == ".." {
			hasDots = true
			break
		}
	}
	if hasDots {
		path = filepath.Clean(path)
	}
	if path == ".." || strings.HasPrefix(path, "../") {
		return false
	}
	return true
}
