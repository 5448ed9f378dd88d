package hook

import (
	"fmt"
	"io"

	"github.com/jsp/guardrails/internal/audit"
	"github.com/jsp/guardrails/internal/model"
	"github.com/jsp/guardrails/internal/policy"
)

// Options configure a single hook invocation. All values come from the
// environment or flags; the runner itself keeps no state across calls.
type Options struct {
	PolicyPath string
	AuditPath  string
	Verbose    bool
}

const (
	malformedReason = "Malformed tool request. Denying by default."
	configReason    = "Policy configuration error. Denying until the policy source is fixed."
)

// Run evaluates one tool call end to end: parse the request, load a fresh
// policy snapshot, decide, emit exactly one response document. It never
// emits more than one document and never fails for well-formed input.
//
// Failure asymmetry is deliberate: unmatched requests are allowed by
// default, but a request whose evaluation could not complete — malformed
// input or a corrupt policy source — is denied.
func Run(in io.Reader, out, errw io.Writer, opts Options) error {
	logf := func(format string, args ...any) {
		if opts.Verbose {
			fmt.Fprintf(errw, "[guardrails] "+format+"\n", args...)
		}
	}

	payload, err := ParsePayload(in)
	if err != nil {
		logf("malformed request: %v", err)
		return WriteDecision(out, model.Denied(malformedReason))
	}

	req := payload.Request()
	logf("checking tool call: %s", req.Tool)

	rs, err := policy.Load(opts.PolicyPath)
	if err != nil {
		// Diagnostic goes to stderr unconditionally; a broken policy
		// source should be visible even without verbose mode.
		fmt.Fprintf(errw, "[guardrails] %v\n", err)
		decision := model.Denied(configReason)
		record(opts, req, decision, errw)
		return WriteDecision(out, decision)
	}

	decision := policy.Evaluate(req, rs)
	if decision.Action == model.Deny {
		logf("DENY %s: %s", req.Tool, decision.Reason)
	} else {
		logf("ALLOW %s", req.Tool)
	}

	record(opts, req, decision, errw)
	return WriteDecision(out, decision)
}

// record appends the decision to the audit log when one is configured.
// Audit failures are diagnostics, not decision changes.
func record(opts Options, req model.Request, d model.Decision, errw io.Writer) {
	if opts.AuditPath == "" {
		return
	}
	log, err := audit.Open(opts.AuditPath)
	if err != nil {
		fmt.Fprintf(errw, "[guardrails] %v\n", err)
		return
	}
	defer log.Close()

	if err := log.Record(audit.Entry{
		Tool:    req.Tool,
		Path:    req.FilePath,
		Command: req.Command,
		Action:  string(d.Action),
		Reason:  d.Reason,
	}); err != nil {
		fmt.Fprintf(errw, "[guardrails] %v\n", err)
	}
}
