package ncaa

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOverride streams a signal each time the bracket override file is
// rewritten, so the UI can reload without a restart. Events are
// debounced: editors that truncate-then-write produce one signal, not
// two. The channel closes when ctx is cancelled or the watcher fails.
func WatchOverride(ctx context.Context, path string) (<-chan struct{}, error) {
	if path == "" {
		return nil, errors.New("ncaa: override path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("ncaa: resolve override path: %w", err)
	}

	// Watch the parent directory: rename-over-save replaces the inode,
	// which a direct file watch would silently lose.
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ncaa: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("ncaa: watch %s: %w", filepath.Dir(abs), err)
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "ncaa: watcher close: %v\n", err)
			}
		}()

		signal := func() {
			select {
			case changes <- struct{}{}:
			default:
				// A reload is already pending; coalesce.
			}
		}

		debounce := newDebounce(100 * time.Millisecond)
		defer debounce.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				debounce.Trigger(signal)
			}
		}
	}()

	return changes, nil
}

// debounce collapses a burst of triggers into one call after a quiet
// period.
type debounce struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebounce(delay time.Duration) *debounce {
	return &debounce{delay: delay}
}

func (d *debounce) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debounce) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
