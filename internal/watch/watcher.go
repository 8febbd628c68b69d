// Package watch reruns the injection whenever the input template or the
// configured asset locations change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/htmlinject/internal/config"
	"git.home.luguber.info/inful/htmlinject/internal/logfields"
)

// Watcher monitors the input file and asset directories and triggers
// debounced rebuilds.
type Watcher struct {
	cfg          config.Config
	rebuild      func(config.Config) error
	logger       *slog.Logger
	watcher      *fsnotify.Watcher
	rebuildChan  chan struct{}
	debounceTime time.Duration

	mu          sync.Mutex
	rebuilding  bool
	settleUntil time.Time
}

// New creates a watcher. rebuild is invoked after each debounced change
// burst; a rebuild failure is logged, not fatal, so a half-saved asset file
// does not kill the watch loop.
func New(cfg config.Config, rebuild func(config.Config) error, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		cfg:          cfg,
		rebuild:      rebuild,
		logger:       logger,
		watcher:      fsw,
		rebuildChan:  make(chan struct{}, 1),
		debounceTime: 500 * time.Millisecond,
	}, nil
}

// SetDebounce overrides the debounce window. Useful in tests.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounceTime = d
}

// Run watches until the context is cancelled. An initial rebuild runs
// before watching so the output reflects the current state.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for _, dir := range w.watchDirs() {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.logger.Debug("Watching directory", logfields.Path(dir))
	}

	if err := w.doRebuild(); err != nil {
		w.logger.Error("Initial build failed", logfields.Error(err))
	}

	go w.rebuildLoop(ctx)
	w.watchLoop(ctx)
	return nil
}

// doRebuild runs one rebuild and records the window in which filesystem
// events are attributable to our own output write.
func (w *Watcher) doRebuild() error {
	w.mu.Lock()
	w.rebuilding = true
	w.mu.Unlock()

	err := w.rebuild(w.cfg)

	w.mu.Lock()
	w.rebuilding = false
	w.settleUntil = time.Now().Add(w.debounceTime)
	w.mu.Unlock()
	return err
}

// isSelfWrite reports whether an event was caused by our own output write.
// Rebuilding on those would loop forever.
func (w *Watcher) isSelfWrite(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	out, err := filepath.Abs(w.cfg.Output)
	if err != nil {
		return false
	}

	if w.cfg.Output != w.cfg.Input {
		// The atomic write stages a temp file named after the output in the
		// output's directory before renaming it into place, so match on the
		// output's base name as a prefix, not equality.
		return filepath.Dir(abs) == filepath.Dir(out) &&
			strings.HasPrefix(filepath.Base(abs), filepath.Base(out))
	}

	// In-place rewrites share the input path, so the path alone cannot tell
	// an edit from our own write. Events landing during a rebuild or inside
	// the settle window right after it are ours; anything later is an edit.
	if abs != out && !strings.HasPrefix(filepath.Base(abs), filepath.Base(out)) {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rebuilding || time.Now().Before(w.settleUntil)
}

// watchDirs collects the directories to watch: the input file's directory
// plus each asset specification's base directory. Watching directories is
// more reliable than watching files directly.
func (w *Watcher) watchDirs() []string {
	seen := make(map[string]struct{})
	var dirs []string

	add := func(dir string) {
		if dir == "" {
			return
		}
		if _, ok := seen[dir]; ok {
			return
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	add(filepath.Dir(w.cfg.Input))
	for _, spec := range []string{w.cfg.JS, w.cfg.CSS} {
		if spec == "" {
			continue
		}
		if strings.ContainsAny(spec, "*?[") {
			add(filepath.Dir(spec))
			continue
		}
		if info, err := os.Stat(spec); err == nil && info.IsDir() {
			add(spec)
			continue
		}
		add(filepath.Dir(spec))
	}
	return dirs
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.isSelfWrite(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.logger.Debug("Change detected", logfields.Path(event.Name))
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) {
	var timer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.rebuildChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounceTime, func() {
				if err := w.doRebuild(); err != nil {
					w.logger.Error("Rebuild failed", logfields.Error(err))
				} else {
					w.logger.Info("Rebuilt", logfields.Output(w.cfg.Output))
				}
			})
		}
	}
}

// trigger queues a debounced rebuild.
func (w *Watcher) trigger() {
	select {
	case w.rebuildChan <- struct{}{}:
	default:
		// Rebuild already pending
	}
}
