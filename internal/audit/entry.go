package audit

// Entry is one decision record in the hash-chained JSONL log.
// All fields are flat typed values (no map[string]any) to guarantee
// deterministic json.Marshal field order for reproducible hashing.
type Entry struct {
	Timestamp string `json:"ts"`
	Tool      string `json:"tool"`
	Path      string `json:"path,omitempty"`
	Command   string `json:"command,omitempty"`
	Action    string `json:"action"`
	Reason    string `json:"reason,omitempty"`
	PrevHash  string `json:"prev_hash"`
}
