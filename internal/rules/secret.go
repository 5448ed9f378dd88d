package rules

import (
	"fmt"
	"path/filepath"
)

// SecretFile reports whether the final path segment matches a configured
// secret-file pattern. Matching is case-sensitive shell glob over the
// basename only; first pattern wins.
func (r *Ruleset) SecretFile(path string) (bool, string) {
	if path == "" {
		return false, ""
	}
	name := filepath.Base(path)
	for _, g := range r.secretGlobs {
		if g.Match(name) {
			return true, fmt.Sprintf("Blocked reading secret file: %s. Override explicitly if needed.", path)
		}
	}
	return false, ""
}
