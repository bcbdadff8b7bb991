package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
)

type recorder struct {
	mu      sync.Mutex
	changes []string
	notify  chan string
}

func newRecorder() *recorder {
	return &recorder{notify: make(chan string, 16)}
}

func (r *recorder) onChange(path string) {
	r.mu.Lock()
	r.changes = append(r.changes, path)
	r.mu.Unlock()
	r.notify <- path
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.changes)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func start(t *testing.T, w *Watcher) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("Run did not return after cancel")
		}
	})
	return cancel
}

func TestNewRejectsMissingFile(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing.ngc")}, func(string) {}, Options{})
	require.Error(t, err)
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeNotFound))

	_, err = New(nil, func(string) {}, Options{})
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeInvalidInput))
}

func TestRunLogsWatcherContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.ngc")
	writeFile(t, path, "%\nG0 X0\n%\n")

	var buf bytes.Buffer
	logger := ngclog.NewWithConfig(ngclog.Config{Level: ngclog.LevelInfo, Format: ngclog.FormatLogfmt, Output: &buf})
	w, err := New([]string{path}, func(string) {}, Options{Logger: logger})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx))

	out := buf.String()
	assert.Contains(t, out, `message="Started watching"`)
	assert.Contains(t, out, `component="ngc-watch"`)
	assert.Contains(t, out, "dirs=1")
}

func TestWatcherReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.ngc")
	writeFile(t, path, "%\nG0 X0\n%\n")

	rec := newRecorder()
	w, err := New([]string{path}, rec.onChange, Options{Debounce: 50 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)

	abs, _ := filepath.Abs(path)
	assert.Equal(t, []string{abs}, w.Files())

	writeFile(t, path, "%\nG0 X1\n%\n")

	select {
	case got := <-rec.notify:
		assert.Equal(t, abs, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.ngc")
	writeFile(t, path, "")

	rec := newRecorder()
	w, err := New([]string{path}, rec.onChange, Options{Debounce: 300 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)

	for i := 0; i < 5; i++ {
		writeFile(t, path, "G0 X1\n")
	}

	select {
	case <-rec.notify:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.ngc")
	writeFile(t, path, "")

	rec := newRecorder()
	w, err := New([]string{path}, rec.onChange, Options{Debounce: 20 * time.Millisecond})
	require.NoError(t, err)
	start(t, w)

	writeFile(t, filepath.Join(dir, "other.ngc"), "G0 X1\n")

	select {
	case got := <-rec.notify:
		t.Fatalf("unexpected change for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.ngc")
	writeFile(t, path, "")

	w, err := New([]string{path}, func(string) {}, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx))
	assert.NoError(t, w.Close())
}
