// Package hook implements the PreToolUse wire contract: one JSON request
// document in on stdin, exactly one JSON decision document out on stdout.
package hook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jsp/guardrails/internal/model"
)

// Payload is the external representation of a tool call awaiting a
// decision. Arguments is shaped by the tool: {file_path} for file
// operations, {command} for shell operations.
type Payload struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// ParsePayload decodes a single request document. A document that is not
// valid JSON or omits the tool field is a malformed request.
func ParsePayload(r io.Reader) (*Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if p.Tool == "" {
		return nil, fmt.Errorf("request missing tool field")
	}
	return &p, nil
}

// Request converts the payload into the dispatcher's input shape.
func (p *Payload) Request() model.Request {
	return model.NewRequest(p.Tool, p.Arguments)
}

// WriteDecision serializes a decision as a single compact JSON document.
func WriteDecision(w io.Writer, d model.Decision) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write decision: %w", err)
	}
	return nil
}
