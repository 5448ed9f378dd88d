package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsp/guardrails/internal/mcp"
)

var (
	servePolicy   string
	serveAuditLog string
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePolicy, "policy", "", "Path to policy YAML (default: ~/.guardrails/policy.yaml)")
	serveCmd.Flags().StringVar(&serveAuditLog, "audit-log", "", "Path to decision audit JSONL file")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gate as an MCP server on stdio",
	Long: "Exposes a guardrails_check tool over MCP stdio transport, so MCP clients\n" +
		"can dry-run tool calls against policy. No network listener is opened.",
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := mcp.New(mcp.Config{
		PolicyPath: servePolicy,
		AuditPath:  serveAuditLog,
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return srv.Run(ctx)
}
