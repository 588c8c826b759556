package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// watchScript calls run once and again after every change to scriptPath
// until ctx is cancelled. The containing directory is watched so editors
// that save by renaming a temp file are still noticed.
func watchScript(ctx context.Context, scriptPath string, logger *slog.Logger, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(scriptPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching script", "path", scriptPath)

	report := func() {
		if err := run(); err != nil {
			fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		}
		fmt.Fprintln(os.Stderr, mutedStyle.Render("waiting for changes..."))
	}
	report()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isScriptChange(event, scriptPath) {
				continue
			}
			logger.Debug("script changed", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-fire:
			fire = nil
			report()
		}
	}
}

func isScriptChange(event fsnotify.Event, scriptPath string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(scriptPath) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
