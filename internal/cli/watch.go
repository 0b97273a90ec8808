package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish writing before the files are read again.
const reloadDelay = 100 * time.Millisecond

// RunWatch checks the diagram files, then re-checks them whenever one of
// them changes, until ctx is cancelled.
func RunWatch(ctx context.Context, opts CheckOptions, out io.Writer) error {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(false)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched, not files: editors often replace a file by
	// renaming over it, which drops a watch on the file itself.
	targets := make(map[string]bool, len(opts.Paths))
	dirs := make(map[string]bool)
	for _, p := range opts.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		if dir := filepath.Dir(abs); !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	logger.Info("Starting Watcher", "paths", opts.Paths)

	check := func() {
		passed, err := RunCheck(ctx, opts, out)
		switch {
		case err != nil:
			logger.Error("Check failed", "err", err)
			printSystemMessage(out, "Check failed: %v", err)
		case passed:
			printSystemMessage(out, "All diagrams passed.")
		default:
			printSystemMessage(out, "Some diagrams did not meet expectations.")
		}
		printSystemMessage(out, "Waiting for changes...")
	}
	check()

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watcher")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if !targets[abs] || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("Change detected, triggering reload", "event", event)
			if reload == nil {
				printSystemMessage(out, "Change detected in '%s'.", event.Name)
			}
			reload = time.After(reloadDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "err", err)
		case <-reload:
			reload = nil
			check()
		}
	}
}
