package server

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope.yaml"), os.Stderr)
	if err == nil {
		t.Fatal("expected error for missing policy file")
	}
}

func TestWatcherValidatesOnStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("secret_patterns:\n  - \"*.pem\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	w, err := NewWatcher(path, &out)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "policy OK") {
		t.Errorf("expected initial validation output, got %q", out.String())
	}
}

func TestWatcherReportsInvalidPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("bogus_key: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	w, err := NewWatcher(path, &out)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := w.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "policy INVALID") {
		t.Errorf("expected invalid-policy output, got %q", out.String())
	}
}
