package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jsp/guardrails/internal/server"
)

var watchPolicy string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPolicy, "policy", "", "Path to policy YAML (default: ~/.guardrails/policy.yaml)")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the policy file and revalidate it on every edit",
	Long: "Watches the policy source and re-parses it after each change, so a\n" +
		"syntax error shows up while you are editing instead of failing the next\n" +
		"tool call closed. Press Ctrl+C to stop.",
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := server.NewWatcher(watchPolicy, os.Stderr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Fprintf(os.Stderr, "watching %s\n", w.Path())
	return w.Run(ctx)
}
