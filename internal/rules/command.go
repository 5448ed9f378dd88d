package rules

import (
	"fmt"
	"strings"
)

// DangerousCommand reports whether a shell command matches a dangerous
// pattern without a safe exception. Safe exceptions are checked first and
// win outright, independent of any dangerous match. Matching is substring
// over trimmed, whitespace-collapsed command text — conservative on
// purpose: a false deny costs a re-prompt, a false allow can cost data.
func (r *Ruleset) DangerousCommand(cmd string) (bool, string) {
	norm := normalizeCommand(cmd)
	if norm == "" {
		return false, ""
	}

	for _, safe := range r.safePatterns {
		if strings.Contains(norm, safe) {
			return false, ""
		}
	}

	for _, dangerous := range r.dangerousPatterns {
		if strings.Contains(norm, dangerous) {
			return true, fmt.Sprintf("Blocked potentially dangerous command: %s.", cmd)
		}
	}

	// Unredirected environment dumps leak secrets into model context.
	if isEnvDump(norm) {
		return true, fmt.Sprintf("Blocked potentially dangerous command: %s.", cmd)
	}

	return false, ""
}

// isEnvDump detects bare environment-dump invocations: a leading
// env/printenv token with no output redirection.
func isEnvDump(norm string) bool {
	tokens := strings.Fields(norm)
	if len(tokens) == 0 {
		return false
	}
	if tokens[0] != "env" && tokens[0] != "printenv" {
		return false
	}
	for _, t := range tokens[1:] {
		if strings.Contains(t, ">") {
			return false
		}
	}
	return true
}
