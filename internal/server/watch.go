// Package server watches the policy source and revalidates it on edit, so
// a syntax error surfaces immediately instead of failing the next hook
// call closed.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jsp/guardrails/internal/policy"
)

// Watcher revalidates a policy file whenever it changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	out     io.Writer
}

// NewWatcher creates a file watcher for the given policy path.
func NewWatcher(path string, out io.Writer) (*Watcher, error) {
	if path == "" {
		path = policy.DefaultPath()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot watch %q: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", path, err)
	}

	return &Watcher{
		watcher: watcher,
		path:    path,
		out:     out,
	}, nil
}

// Path returns the watched policy path.
func (w *Watcher) Path() string { return w.path }

// Run validates once up front, then revalidates after each change. Blocks
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.validate()

	// Debounce: wait 500ms after the last write before revalidating.
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, w.validate)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.out, "file watcher error: %v\n", err)
		}
	}
}

func (w *Watcher) validate() {
	if _, err := policy.Load(w.path); err != nil {
		fmt.Fprintf(w.out, "policy INVALID: %v\n", err)
		return
	}
	fmt.Fprintf(w.out, "policy OK: %s\n", w.path)
}
