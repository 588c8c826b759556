package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestIsScriptChange(t *testing.T) {
	script := filepath.Join(t.TempDir(), "main.pink")
	cases := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: script, Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: script, Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: script, Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: script + ".swp", Op: fsnotify.Write}, false},
	}
	for _, tc := range cases {
		if got := isScriptChange(tc.event, script); got != tc.want {
			t.Fatalf("%v: expected %v, got %v", tc.event, tc.want, got)
		}
	}
}

func TestWatchScriptRerunsOnWrite(t *testing.T) {
	script := writeScript(t, "println 1")
	runs := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchScript(ctx, script, newLogger(false), func() error {
			runs <- struct{}{}
			return nil
		})
	}()

	waitForRun(t, runs)
	if err := os.WriteFile(script, []byte("println 2"), 0o644); err != nil {
		t.Fatalf("rewrite script: %v", err)
	}
	waitForRun(t, runs)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

func waitForRun(t *testing.T, runs <-chan struct{}) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for run")
	}
}
