// guardrails — a local advisory gate for agent tool calls.
// Every decision is allow or deny with a reason; nothing is executed here.
package main

import "github.com/jsp/guardrails/internal/cli"

func main() {
	cli.Execute()
}
