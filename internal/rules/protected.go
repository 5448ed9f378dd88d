package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProtectedPath reports whether the path falls under the protected root
// without an exemption. Paths are normalized lexically before comparison so
// the protection cannot be bypassed with "." or ".." tricks; no symlink
// resolution is attempted.
//
// Evaluation order: exempt subpath segments first (a structural carve-out
// that must stay reachable regardless of nesting), then root containment,
// then the user-curated allow-list.
func (r *Ruleset) ProtectedPath(path string) (bool, string) {
	if r.protectedRoot == "" || path == "" {
		return false, ""
	}

	segs := splitPath(normalizePath(path))

	for _, seg := range segs {
		if r.exemptSubpaths[seg] {
			return false, ""
		}
	}

	rootSegs := splitPath(normalizePath(r.protectedRoot))
	if !hasSegmentPrefix(segs, rootSegs) {
		return false, ""
	}

	for _, entry := range r.protectedAllowlist {
		var entrySegs []string
		if filepath.IsAbs(entry) || strings.HasPrefix(entry, "~") {
			entrySegs = splitPath(normalizePath(entry))
		} else {
			entrySegs = append(append([]string{}, rootSegs...), splitPath(filepath.Clean(entry))...)
		}
		if hasSegmentPrefix(segs, entrySegs) {
			return false, ""
		}
	}

	return true, fmt.Sprintf("Blocked access to protected path: %s. Not on allow-list.", path)
}

// normalizePath expands a leading ~, resolves relative paths against the
// working directory, and lexically cleans "." and ".." components.
func normalizePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return filepath.Clean(path)
}

// splitPath breaks a cleaned path into components, dropping empty segments.
func splitPath(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, string(filepath.Separator)) {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// hasSegmentPrefix reports whether segs starts with prefix, component-wise.
// Component comparison avoids naive string-prefix bugs like /Users/jspX
// matching a root of /Users/jsp.
func hasSegmentPrefix(segs, prefix []string) bool {
	if len(prefix) == 0 || len(segs) < len(prefix) {
		return false
	}
	for i, p := range prefix {
		if segs[i] != p {
			return false
		}
	}
	return true
}
