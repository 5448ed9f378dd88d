// Package rules implements the four rule-category matchers: secret files,
// protected-root paths, dangerous shell commands, and git mutations. Each
// matcher returns (blocked, reason); no match means the request falls
// through to the next matcher or the default allow.
package rules

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Patterns holds the raw rule inputs, one field per rule category.
type Patterns struct {
	SecretPatterns     []string
	ProtectedRoot      string
	ProtectedAllowlist []string
	ExemptSubpaths     []string
	DangerousPatterns  []string
	SafePatterns       []string
	BlockedGitCommands []string
}

// Ruleset holds compiled patterns for matching. Immutable after Compile.
type Ruleset struct {
	secretGlobs        []glob.Glob
	protectedRoot      string
	protectedAllowlist []string
	exemptSubpaths     map[string]bool
	dangerousPatterns  []string
	safePatterns       []string
	gitBlocked         [][]string // tokenized, supports sequences like "reset --hard"
}

// Compile builds a Ruleset from raw patterns. Secret patterns are compiled
// as shell-style globs ('/' does not match wildcards); a pattern that fails
// to compile is an error rather than a silently dropped rule.
func Compile(p Patterns) (*Ruleset, error) {
	rs := &Ruleset{
		protectedRoot:      p.ProtectedRoot,
		protectedAllowlist: p.ProtectedAllowlist,
		exemptSubpaths:     make(map[string]bool, len(p.ExemptSubpaths)),
		dangerousPatterns:  p.DangerousPatterns,
		safePatterns:       p.SafePatterns,
	}

	for _, pat := range p.SecretPatterns {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			return nil, fmt.Errorf("secret pattern %q: %w", pat, err)
		}
		rs.secretGlobs = append(rs.secretGlobs, g)
	}

	for _, seg := range p.ExemptSubpaths {
		rs.exemptSubpaths[seg] = true
	}

	for _, c := range p.BlockedGitCommands {
		if tokens := strings.Fields(c); len(tokens) > 0 {
			rs.gitBlocked = append(rs.gitBlocked, tokens)
		}
	}

	return rs, nil
}

// normalizeCommand trims and collapses whitespace so substring patterns
// match regardless of spacing.
func normalizeCommand(cmd string) string {
	return strings.Join(strings.Fields(cmd), " ")
}
