package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watch re-solves an input whenever it is written or recreated, until ctx is
// done. Directories are watched rather than files so editors that replace a
// file by rename are still noticed.
func (a *app) watch(ctx context.Context, inputs []string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watcher: %w", err)
	}
	defer w.Close()

	wanted := make(map[string]string, len(inputs)) // cleaned abs path → as given
	dirs := make(map[string]bool)
	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return fmt.Errorf("watcher: %s: %w", in, err)
		}
		wanted[abs] = in
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watcher add %s: %w", dir, err)
		}
	}
	a.log.Info("watching", zap.Int("inputs", len(inputs)), zap.Int("dirs", len(dirs)))

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			in, ok := wanted[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			a.log.Debug("input changed", zap.String("input", in), zap.Stringer("op", ev.Op))
			if err := a.solveFile(ctx, in); err != nil {
				// keep watching; the next write may fix it
				a.log.Error("re-solve failed", zap.String("input", in), zap.Error(err))
			}
			if err := a.flushMetrics(); err != nil {
				a.log.Error("metrics", zap.Error(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watcher error", zap.Error(err))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
