package model

// Kind classifies a tool call by the shape of its arguments.
type Kind string

const (
	FileOperation  Kind = "file"
	ShellOperation Kind = "shell"
	Other          Kind = "other"
)

// Action is the arbitration outcome for a single tool call.
type Action string

const (
	Allow Action = "allow"
	Deny  Action = "deny"
)

// fileTools maps tool identifiers that carry a file_path argument.
var fileTools = map[string]bool{
	"Read":         true,
	"Edit":         true,
	"Write":        true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

// KindForTool derives the request kind from a tool identifier.
// Unknown tools classify as Other, which the dispatcher allows by default.
func KindForTool(tool string) Kind {
	if fileTools[tool] {
		return FileOperation
	}
	if tool == "Bash" {
		return ShellOperation
	}
	return Other
}

// Request is one tool call awaiting a decision. FilePath is set only for
// FileOperation, Command only for ShellOperation.
type Request struct {
	Kind     Kind
	Tool     string
	FilePath string
	Command  string
}

// NewRequest builds a Request from a tool identifier and its raw arguments,
// coercing only the fields relevant to the derived kind.
func NewRequest(tool string, args map[string]any) Request {
	r := Request{
		Kind: KindForTool(tool),
		Tool: tool,
	}
	switch r.Kind {
	case FileOperation:
		if p, ok := args["file_path"].(string); ok {
			r.FilePath = p
		}
	case ShellOperation:
		if c, ok := args["command"].(string); ok {
			r.Command = c
		}
	}
	return r
}

// Decision is the sole output of evaluation. Reason is set only on deny.
type Decision struct {
	Action Action `json:"action"`
	Reason string `json:"reason,omitempty"`
}

// Allowed returns the allow decision.
func Allowed() Decision {
	return Decision{Action: Allow}
}

// Denied returns a deny decision with the given reason.
func Denied(reason string) Decision {
	return Decision{Action: Deny, Reason: reason}
}
