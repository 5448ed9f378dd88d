// Package policy loads the rule configuration and dispatches requests to
// the matchers in a fixed precedence order.
package policy

import (
	"github.com/jsp/guardrails/internal/model"
	"github.com/jsp/guardrails/internal/rules"
)

// Evaluate routes a request to the matchers for its kind and returns the
// first deny, or allow when nothing matches.
//
// Routing (must not be changed):
//   - file operations: secret-file check, then protected-root check
//   - shell operations: git-mutation check when the leading token is git,
//     otherwise the dangerous-command check — exactly one of the two
//   - anything else: allow
//
// Default is allow. This is an advisory gate, not a security boundary: it
// catches known-dangerous patterns without blocking legitimate work.
func Evaluate(req model.Request, rs *rules.Ruleset) model.Decision {
	switch req.Kind {
	case model.FileOperation:
		if blocked, reason := rs.SecretFile(req.FilePath); blocked {
			return model.Denied(reason)
		}
		if blocked, reason := rs.ProtectedPath(req.FilePath); blocked {
			return model.Denied(reason)
		}

	case model.ShellOperation:
		if rules.IsGitCommand(req.Command) {
			if blocked, reason := rs.GitMutation(req.Command); blocked {
				return model.Denied(reason)
			}
		} else if blocked, reason := rs.DangerousCommand(req.Command); blocked {
			return model.Denied(reason)
		}
	}

	return model.Allowed()
}
