package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jsp/guardrails/internal/hook"
)

var (
	hookPolicy   string
	hookAuditLog string
	hookVerbose  bool
)

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.Flags().StringVar(&hookPolicy, "policy", "", "Path to policy YAML (default: $GUARDRAILS_POLICY_PATH, then ~/.guardrails/policy.yaml)")
	hookCmd.Flags().StringVar(&hookAuditLog, "audit-log", "", "Path to decision audit JSONL (default: $GUARDRAILS_AUDIT_LOG)")
	hookCmd.Flags().BoolVar(&hookVerbose, "verbose", false, "Log decisions to stderr (default: $GUARDRAILS_VERBOSE=1)")
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Arbitrate one tool call from stdin (PreToolUse entry point)",
	Long: "Reads a single JSON tool-call document from stdin, evaluates it against\n" +
		"policy, and writes exactly one decision document to stdout:\n" +
		"  {\"action\":\"allow\"} or {\"action\":\"deny\",\"reason\":\"...\"}\n\n" +
		"Policy is loaded fresh on every invocation, so edits take effect on the\n" +
		"very next tool call. Malformed requests and broken policy sources fail\n" +
		"closed; the exit code is 0 either way — the decision document is the result.",
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	opts := hook.Options{
		PolicyPath: hookPolicy,
		AuditPath:  hookAuditLog,
		Verbose:    hookVerbose,
	}
	if opts.PolicyPath == "" {
		opts.PolicyPath = os.Getenv("GUARDRAILS_POLICY_PATH")
	}
	if opts.AuditPath == "" {
		opts.AuditPath = os.Getenv("GUARDRAILS_AUDIT_LOG")
	}
	if !opts.Verbose {
		opts.Verbose = os.Getenv("GUARDRAILS_VERBOSE") == "1"
	}

	return hook.Run(os.Stdin, os.Stdout, os.Stderr, opts)
}
