package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsp/guardrails/internal/audit"
	"github.com/jsp/guardrails/internal/model"
	"github.com/jsp/guardrails/internal/policy"
)

// CheckInput defines parameters for the guardrails_check tool.
type CheckInput struct {
	Tool     string `json:"tool" jsonschema:"tool identifier (Read/Edit/Write/Bash/...)"`
	FilePath string `json:"file_path,omitempty" jsonschema:"file path for file operations"`
	Command  string `json:"command,omitempty" jsonschema:"command line for shell operations"`
}

// CheckOutput contains the policy decision.
type CheckOutput struct {
	Action string `json:"action"`
	Reason string `json:"reason,omitempty"`
}

func (s *Server) handleCheck(ctx context.Context, req *mcpsdk.CallToolRequest, input CheckInput) (*mcpsdk.CallToolResult, CheckOutput, error) {
	if input.Tool == "" {
		return nil, CheckOutput{}, fmt.Errorf("tool is required")
	}

	args := map[string]any{}
	if input.FilePath != "" {
		args["file_path"] = input.FilePath
	}
	if input.Command != "" {
		args["command"] = input.Command
	}
	request := model.NewRequest(input.Tool, args)

	// Fresh policy snapshot per call: edits apply to the next check.
	rs, err := policy.Load(s.cfg.PolicyPath)
	if err != nil {
		// Fail closed, mirroring the hook contract.
		out := CheckOutput{
			Action: string(model.Deny),
			Reason: fmt.Sprintf("policy configuration error: %v", err),
		}
		return &mcpsdk.CallToolResult{IsError: true}, out, nil
	}

	decision := policy.Evaluate(request, rs)
	s.recordAudit(request, decision)

	return nil, CheckOutput{
		Action: string(decision.Action),
		Reason: decision.Reason,
	}, nil
}

func (s *Server) recordAudit(req model.Request, d model.Decision) {
	if s.cfg.AuditPath == "" {
		return
	}
	log, err := audit.Open(s.cfg.AuditPath)
	if err != nil {
		return
	}
	defer log.Close()
	_ = log.Record(audit.Entry{
		Tool:    req.Tool,
		Path:    req.FilePath,
		Command: req.Command,
		Action:  string(d.Action),
		Reason:  d.Reason,
	})
}
