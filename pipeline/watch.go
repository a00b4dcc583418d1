// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long a config file must be unchanged after
// an event before it is reloaded.
var WatchDelay = 100 * time.Millisecond

// Watch calls fun with the config read from filename, and again every
// time the file changes, until the context is done. A config that
// cannot be read is logged and skipped. The directory of the file is
// watched, so that editors that save by renaming are seen.
func Watch(ctx context.Context, filename string, fun func(cfg *Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	reload := func() {
		cfg, err := Open(abs)
		if err != nil {
			slog.Error("pipeline.Watch: config not loaded", "file", abs, "err", err)
			return
		}
		fun(cfg)
	}
	reload()

	timer := time.NewTimer(WatchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("pipeline.Watch: changed", "file", ev.Name, "op", ev.Op.String())
			timer.Reset(WatchDelay)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Error("pipeline.Watch", "err", err)
		case <-timer.C:
			reload()
		}
	}
}
