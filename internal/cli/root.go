package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guardrails",
	Short: "Local guardrails for agent tool calls",
	Long:  "Arbitrates tool calls — file reads/writes, shell commands, git operations —\nagainst a local policy before execution. Allow or deny with a reason; nothing\nis executed, rewritten, or sandboxed here.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
