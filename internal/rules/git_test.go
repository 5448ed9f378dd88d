package rules

import (
	"strings"
	"testing"
)

func gitRuleset(t *testing.T) *Ruleset {
	return testRuleset(t, Patterns{
		BlockedGitCommands: []string{"commit", "push", "rebase", "merge", "reset --hard"},
	})
}

func TestIsGitCommand(t *testing.T) {
	if !IsGitCommand("git status") {
		t.Error("expected git status to be a git command")
	}
	if IsGitCommand("github-cli auth") {
		t.Error("leading token must be exactly git")
	}
	if IsGitCommand("") {
		t.Error("empty command is not a git command")
	}
}

func TestGitMutationBlocked(t *testing.T) {
	rs := gitRuleset(t)

	blocked, reason := rs.GitMutation(`git commit -m "x"`)
	if !blocked {
		t.Fatal("expected git commit to be blocked")
	}
	if !strings.Contains(reason, "read-only") {
		t.Errorf("reason should explain the read-only default, got %q", reason)
	}
}

func TestGitMutationTokenSequence(t *testing.T) {
	rs := gitRuleset(t)

	if blocked, _ := rs.GitMutation("git reset --hard HEAD~1"); !blocked {
		t.Error("expected reset --hard sequence to be blocked")
	}
	if blocked, _ := rs.GitMutation("git reset --soft HEAD~1"); blocked {
		t.Error("reset --soft is not in the blocked set")
	}
}

func TestGitReadOnlyAllowed(t *testing.T) {
	rs := gitRuleset(t)

	for _, cmd := range []string{"git status", "git diff", "git log --oneline", "git"} {
		if blocked, _ := rs.GitMutation(cmd); blocked {
			t.Errorf("expected %q to pass", cmd)
		}
	}
}

func TestGitMutationWithGlobalFlags(t *testing.T) {
	rs := gitRuleset(t)

	if blocked, _ := rs.GitMutation("git -C /repo push origin main"); !blocked {
		t.Error("expected push after global flags to be blocked")
	}
}
