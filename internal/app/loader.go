package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/gopappus/internal/config"
	"github.com/philipparndt/gopappus/pkg/watcher"
)

const reloadDebounce = 300 * time.Millisecond

type reloadResult struct {
	cfg config.Config
	err error
}

// setupConfigWatcher starts watching the configuration file. Parsed results
// are handed to the main loop, which owns the session.
func (app *App) setupConfigWatcher(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(reloadDebounce)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(app.FileWatch.configPath); err != nil {
		fw.Close()
		return err
	}

	results := make(chan reloadResult, 1)
	app.FileWatch.reloads = results

	go func() {
		if err := fw.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("config watcher stopped", "error", err)
		}
		fw.Close()
	}()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path := <-fw.Changes():
				cfg, err := config.Load(path)
				select {
				case results <- reloadResult{cfg: cfg, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	slog.Info("watching config for changes", "path", app.FileWatch.configPath)
	return nil
}

// applyReloads applies a pending configuration (must be on main thread)
func (app *App) applyReloads() {
	select {
	case res := <-app.FileWatch.reloads:
		if res.err == nil {
			res.err = app.ctrl.Reload(res.cfg)
		}
		if res.err != nil {
			slog.Warn("config reload failed", "error", res.err)
			app.FileWatch.lastError = res.err.Error()
			return
		}
		app.FileWatch.lastError = ""
	default:
	}
}
