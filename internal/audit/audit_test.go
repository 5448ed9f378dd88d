package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRecordAndVerifyChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decisions.jsonl")

	log, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	entries := []Entry{
		{Tool: "Bash", Command: "rm -rf /", Action: "deny", Reason: "dangerous"},
		{Tool: "Read", Path: "/home/user/main.go", Action: "allow"},
		{Tool: "Bash", Command: "git push", Action: "deny", Reason: "git mutation"},
	}
	for _, e := range entries {
		if err := log.Record(e); err != nil {
			t.Fatal(err)
		}
	}
	log.Close()

	result := Verify(path)
	if !result.Valid {
		t.Fatalf("expected valid chain: %+v", result)
	}
	if result.Lines != 3 {
		t.Errorf("expected 3 lines, got %d", result.Lines)
	}
}

func TestReopenContinuesChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decisions.jsonl")

	log, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := log.Record(Entry{Tool: "Bash", Command: "env", Action: "deny"}); err != nil {
		t.Fatal(err)
	}
	log.Close()

	log2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := log2.Record(Entry{Tool: "Read", Path: ".env", Action: "deny"}); err != nil {
		t.Fatal(err)
	}
	log2.Close()

	if result := Verify(path); !result.Valid || result.Lines != 2 {
		t.Fatalf("expected valid 2-line chain after reopen: %+v", result)
	}
}

func TestVerifyDetectsTampering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decisions.jsonl")

	log, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Record(Entry{Tool: "Bash", Command: "ls", Action: "allow"})
	log.Record(Entry{Tool: "Bash", Command: "rm -rf /", Action: "deny"})
	// A third entry chains over the second, so tampering with the second
	// line is detectable.
	log.Record(Entry{Tool: "Bash", Command: "git push", Action: "deny"})
	log.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tampered := strings.Replace(string(data), `"deny"`, `"allow"`, 1)
	if err := os.WriteFile(path, []byte(tampered), 0600); err != nil {
		t.Fatal(err)
	}

	result := Verify(path)
	if result.Valid {
		t.Fatal("expected tampered log to fail verification")
	}
	if result.ErrorLine == 0 {
		t.Error("expected the broken line to be reported")
	}
}

func TestVerifyMissingFile(t *testing.T) {
	result := Verify(filepath.Join(t.TempDir(), "nope.jsonl"))
	if result.Valid {
		t.Error("missing file must not verify as valid")
	}
}
