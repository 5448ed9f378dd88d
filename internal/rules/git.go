package rules

import (
	"fmt"
	"strings"
)

// IsGitCommand reports whether the command's leading token is git. The
// dispatcher uses this to route a shell command to exactly one matcher.
func IsGitCommand(cmd string) bool {
	tokens := strings.Fields(cmd)
	return len(tokens) > 0 && tokens[0] == "git"
}

// GitMutation reports whether a git command invokes a history-rewriting or
// remote-mutating subcommand. The tokens after "git" are scanned for any
// blocked token sequence, so "git reset --hard" is caught wherever the
// flags land. Read-only subcommands (status, diff, log) pass through.
func (r *Ruleset) GitMutation(cmd string) (bool, string) {
	tokens := strings.Fields(normalizeCommand(cmd))
	if len(tokens) < 2 || tokens[0] != "git" {
		return false, ""
	}

	rest := tokens[1:]
	for _, blocked := range r.gitBlocked {
		if containsSequence(rest, blocked) {
			return true, fmt.Sprintf("Blocked git command that modifies history/remotes: %s. Git is read-only by default.", cmd)
		}
	}
	return false, ""
}

// containsSequence reports whether seq appears contiguously within tokens.
func containsSequence(tokens, seq []string) bool {
	if len(seq) == 0 || len(tokens) < len(seq) {
		return false
	}
	for i := 0; i+len(seq) <= len(tokens); i++ {
		match := true
		for j, s := range seq {
			if tokens[i+j] != s {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
