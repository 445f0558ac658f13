package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quicknotes/pkg/core"
)

const watchDebounce = 50 * time.Millisecond

// Watch emits the reloaded preferences every time the file changes on disk.
// The parent directory is watched rather than the file, since atomic
// writes replace the inode. The channel is closed when ctx is done.
func (p *PreferencesFile) Watch(ctx context.Context) (<-chan core.Preferences, error) {
	dir := filepath.Dir(p.path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	out := make(chan core.Preferences, 1)
	p.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		return p.watchLoop(ctx, watcher, out)
	}, lifecycle.WithErrorHandler(func(err error) {
		p.logger.Error("preferences watcher failed", "error", err)
	}))
	return out, nil
}

func (p *PreferencesFile) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- core.Preferences) (err error) {
	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending sync.WaitGroup
		stopped bool
	)
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if p.logger.Enabled(ctx, slog.LevelDebug) {
				p.logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				p.logger.Error("watcher panic", "error", err)
			}
		}
		mu.Lock()
		stopped = true
		if timer != nil && timer.Stop() {
			pending.Done()
		}
		mu.Unlock()
		pending.Wait()
		_ = watcher.Close()
		p.setWatcherActive(false)
		close(out)
	}()

	reload := func() {
		defer pending.Done()
		mu.Lock()
		if stopped {
			mu.Unlock()
			return
		}
		timer = nil
		mu.Unlock()

		prefs, err := p.Load(ctx)
		if err != nil {
			p.logger.Warn("reload preferences", "error", err)
			return
		}
		select {
		case out <- prefs:
		case <-ctx.Done():
		}
	}

	target := filepath.Clean(p.path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			p.logger.Debug("preferences changed", "op", event.Op.String())

			mu.Lock()
			if timer == nil {
				pending.Add(1)
				timer = time.AfterFunc(watchDebounce, reload)
			} else if !timer.Reset(watchDebounce) {
				// already fired; Reset scheduled another run
				pending.Add(1)
			}
			mu.Unlock()

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			p.logger.Error("fsnotify error", "error", wErr)
		}
	}
}
