package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsp/guardrails/internal/model"
	"github.com/jsp/guardrails/internal/policy"
)

var (
	checkTool    string
	checkFile    string
	checkCommand string
	checkPolicy  string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&checkTool, "tool", "", "Tool identifier (Read/Edit/Write/Bash/...) (required)")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "File path for file operations")
	checkCmd.Flags().StringVar(&checkCommand, "command", "", "Command line for shell operations")
	checkCmd.Flags().StringVar(&checkPolicy, "policy", "", "Path to policy YAML (optional)")
	checkCmd.MarkFlagRequired("tool")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a single tool call without the stdin plumbing (dry-run)",
	Long: "Evaluates one tool call against policy and prints the decision document.\n" +
		"Exit code 0 on allow, 1 on deny.\n" +
		"Use to test policy edits before they gate real tool calls.",
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	rs, err := policy.Load(checkPolicy)
	if err != nil {
		return fmt.Errorf("failed to load policy: %w", err)
	}

	reqArgs := map[string]any{}
	if checkFile != "" {
		reqArgs["file_path"] = checkFile
	}
	if checkCommand != "" {
		reqArgs["command"] = checkCommand
	}

	decision := policy.Evaluate(model.NewRequest(checkTool, reqArgs), rs)

	out, _ := json.Marshal(decision)
	fmt.Println(string(out))

	if decision.Action == model.Deny {
		os.Exit(1)
	}
	return nil
}
