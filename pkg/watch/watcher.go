// Package watch regenerates plugin glue when Java sources change.
//
// Events are debounced: a burst of writes produces one regeneration once
// the tree has been quiet for the configured delay. Regenerations run one
// at a time on the goroutine that called Run, and each one is a separate
// compilation unit.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	defaults "github.com/cubeengine/plugingen/pkg/codegen/config"
	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultDelay is the quiet period used when Config.Delay is zero
const DefaultDelay = defaults.DefaultWatchDelay

// ErrAlreadyRunning is returned by a second call to Run
var ErrAlreadyRunning = errors.New("watcher already running")

// Regenerator handles one compilation unit. unit counts from 1; changed
// holds the slash separated paths, relative to the root, that triggered it.
type Regenerator func(ctx context.Context, unit int, changed []string) error

// Config holds watcher configuration
type Config struct {
	// Root is the source tree to watch, recursively
	Root string

	// Delay is the quiet period before a regeneration fires
	Delay time.Duration

	// Extensions selects the files that trigger a regeneration.
	// Empty means ".java".
	Extensions []string
}

// Watcher turns source changes into serialized regenerations
type Watcher struct {
	cfg        Config
	fsw        *fsnotify.Watcher
	log        *logrus.Logger
	regenerate Regenerator

	trigger chan struct{}

	mu      sync.Mutex
	pending map[string]struct{}
	timer   *time.Timer
	running bool
	units   int
}

// New creates a watcher over cfg.Root. Every directory below the root is
// registered; directories created later are added as they appear.
func New(cfg Config, regenerate Regenerator, log *logrus.Logger) (*Watcher, error) {
	if log == nil {
		log = logrus.New()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".java"}
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve watch root: %w", err)
	}
	cfg.Root = root

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		cfg:        cfg,
		fsw:        fsw,
		log:        log,
		regenerate: regenerate,
		trigger:    make(chan struct{}, 1),
		pending:    make(map[string]struct{}),
	}

	if err := w.setupWatcher(); err != nil {
		fsw.Close()
		return nil, err
	}

	return w, nil
}

// setupWatcher recursively adds all directories to the watcher
func (w *Watcher) setupWatcher() error {
	return filepath.WalkDir(w.cfg.Root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if err := w.fsw.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

// Queue records a changed path and restarts the debounce timer
func (w *Watcher) Queue(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.cfg.Delay, w.fire)
		return
	}
	w.timer.Reset(w.cfg.Delay)
}

func (w *Watcher) fire() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Run processes events until ctx is canceled. It returns nil on
// cancellation. Regeneration errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}
	w.running = true
	w.mu.Unlock()

	defer w.stopTimer()

	w.log.Infof("Watching %s for source changes", w.cfg.Root)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnf("Watcher error: %v", err)

		case <-w.trigger:
			w.runUnit(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Also watch new directories
	if event.Has(fsnotify.Create) {
		if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
			w.log.Debugf("New directory: %s", event.Name)
			if err := w.fsw.Add(event.Name); err != nil {
				w.log.Warnf("Error watching new directory %s: %v", event.Name, err)
			}
			return
		}
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	if !slices.Contains(w.cfg.Extensions, filepath.Ext(event.Name)) {
		return
	}

	rel, err := filepath.Rel(w.cfg.Root, event.Name)
	if err != nil {
		w.log.Debugf("Error getting relative path for %s: %v", event.Name, err)
		return
	}
	w.log.Debugf("Modified file: %s", rel)
	w.Queue(filepath.ToSlash(rel))
}

// runUnit drains the pending set and regenerates once
func (w *Watcher) runUnit(ctx context.Context) {
	w.mu.Lock()
	if len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	changed := make([]string, 0, len(w.pending))
	for path := range w.pending {
		changed = append(changed, path)
	}
	clear(w.pending)
	w.units++
	unit := w.units
	w.mu.Unlock()

	slices.Sort(changed)
	ctx = observability.WithUnit(observability.WithLogger(ctx, w.log), unit)
	log := observability.FromContext(ctx)
	log.Infof("Regenerating after %d changed files", len(changed))

	start := time.Now()
	if err := w.safeRegenerate(ctx, unit, changed); err != nil {
		log.WithError(err).Error("Regeneration failed")
		return
	}
	log.Debugf("Regeneration finished in %v", time.Since(start))
}

func (w *Watcher) safeRegenerate(ctx context.Context, unit int, changed []string) (err error) {
	defer func() {
		if perr := observability.MustRecover(recover()); perr != nil {
			err = perr
		}
	}()
	if w.regenerate == nil {
		return nil
	}
	return w.regenerate(ctx, unit, changed)
}

// Units returns the number of regenerations run so far
func (w *Watcher) Units() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.units
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Close releases the underlying file watcher
func (w *Watcher) Close() error {
	w.stopTimer()
	return w.fsw.Close()
}
