package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cubeengine/plugingen/pkg/observability"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unitRecorder struct {
	mu    sync.Mutex
	units []recordedUnit
	calls chan struct{}
}

type recordedUnit struct {
	unit    int
	changed []string
	tagged  bool
}

func newUnitRecorder() *unitRecorder {
	return &unitRecorder{calls: make(chan struct{}, 16)}
}

func (r *unitRecorder) regenerate(ctx context.Context, unit int, changed []string) error {
	tagged, _ := observability.GetUnit(ctx)
	r.mu.Lock()
	r.units = append(r.units, recordedUnit{unit: unit, changed: changed, tagged: tagged == unit})
	r.mu.Unlock()
	r.calls <- struct{}{}
	return nil
}

func (r *unitRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
	}
}

func (r *unitRecorder) snapshot() []recordedUnit {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedUnit(nil), r.units...)
}

func startWatcher(t *testing.T, root string, regenerate Regenerator, log *logrus.Logger) *Watcher {
	t.Helper()
	w, err := New(Config{Root: root, Delay: 50 * time.Millisecond}, regenerate, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
		w.Close()
	})
	return w
}

func TestNew_Defaults(t *testing.T) {
	w, err := New(Config{Root: t.TempDir()}, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, DefaultDelay, w.cfg.Delay)
	assert.Equal(t, []string{".java"}, w.cfg.Extensions)
	assert.True(t, filepath.IsAbs(w.cfg.Root))
}

func TestNew_MissingRoot(t *testing.T) {
	_, err := New(Config{Root: filepath.Join(t.TempDir(), "missing")}, nil, nil)
	assert.Error(t, err)
}

func TestWatcher_DebouncesQueuedChanges(t *testing.T) {
	rec := newUnitRecorder()
	w := startWatcher(t, t.TempDir(), rec.regenerate, nil)

	w.Queue("demo/Foo.java")
	w.Queue("demo/Bar.java")
	w.Queue("demo/Foo.java")
	rec.wait(t)

	units := rec.snapshot()
	require.Len(t, units, 1)
	assert.Equal(t, 1, units[0].unit)
	assert.Equal(t, []string{"demo/Bar.java", "demo/Foo.java"}, units[0].changed)
	assert.True(t, units[0].tagged, "context should carry the unit number")

	w.Queue("demo/Baz.java")
	rec.wait(t)

	units = rec.snapshot()
	require.Len(t, units, 2)
	assert.Equal(t, 2, units[1].unit)
	assert.Equal(t, 2, w.Units())
}

func TestWatcher_FileEvents(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "demo"), 0755))
	rec := newUnitRecorder()
	startWatcher(t, root, rec.regenerate, nil)

	require.NoError(t, os.WriteFile(filepath.Join(root, "demo", "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "demo", "Foo.java"), []byte("class Foo {}"), 0644))
	rec.wait(t)

	units := rec.snapshot()
	require.NotEmpty(t, units)
	assert.Equal(t, []string{"demo/Foo.java"}, units[0].changed)
}

func TestWatcher_NewDirectoriesAreWatched(t *testing.T) {
	root := t.TempDir()
	rec := newUnitRecorder()
	startWatcher(t, root, rec.regenerate, nil)

	dir := filepath.Join(root, "later")
	require.NoError(t, os.Mkdir(dir, 0755))

	// the directory is registered asynchronously by the run loop
	deadline := time.Now().Add(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Late.java"), []byte("class Late {}"), 0644))
		select {
		case <-rec.calls:
			units := rec.snapshot()
			assert.Contains(t, units[len(units)-1].changed, "later/Late.java")
			return
		case <-time.After(200 * time.Millisecond):
		}
		if time.Now().After(deadline) {
			t.Fatal("write in new directory never triggered a regeneration")
		}
	}
}

func TestWatcher_RegenerationErrorsAreLogged(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	calls := make(chan struct{}, 4)
	regenerate := func(ctx context.Context, unit int, changed []string) error {
		defer func() { calls <- struct{}{} }()
		if unit == 1 {
			return errors.New("write failed")
		}
		panic("template exploded")
	}
	w := startWatcher(t, t.TempDir(), regenerate, logger)

	for i := 0; i < 2; i++ {
		w.Queue("demo/Foo.java")
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for regeneration")
		}
	}

	// give the loop a moment to log the second failure
	require.Eventually(t, func() bool {
		var failures int
		for _, e := range hook.AllEntries() {
			if e.Level == logrus.ErrorLevel && e.Message == "Regeneration failed" {
				failures++
			}
		}
		return failures == 2
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_RunTwice(t *testing.T) {
	w := startWatcher(t, t.TempDir(), nil, nil)

	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return w.running
	}, 5*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, w.Run(context.Background()), ErrAlreadyRunning)
}

func TestWatcher_LogsCarryUnit(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	calls := make(chan struct{}, 4)
	regenerate := func(ctx context.Context, unit int, changed []string) error {
		defer func() { calls <- struct{}{} }()
		observability.FromContext(ctx).Info("Generating core plugin")
		return nil
	}
	w := startWatcher(t, t.TempDir(), regenerate, logger)

	w.Queue("demo/Foo.java")
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
	}

	var messages []string
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.InfoLevel {
			continue
		}
		messages = append(messages, e.Message)
		assert.Equal(t, 1, e.Data["unit"], "entry %q", e.Message)
	}
	assert.Equal(t, []string{"Regenerating after 1 changed files", "Generating core plugin"}, messages)
}
