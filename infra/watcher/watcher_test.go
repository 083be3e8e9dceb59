package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radhian/loan-reconciliation-mcp/infra/locker"
)

func startWatcher(t *testing.T, path string, debounce time.Duration, reload ReloadFunc) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w := New(path, debounce, locker.New(), reload)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give the watch a moment to register before the test writes.
	time.Sleep(100 * time.Millisecond)
	return cancel
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var reloads atomic.Int32
	startWatcher(t, path, 30*time.Millisecond, func() error {
		reloads.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))

	require.Eventually(t, func() bool { return reloads.Load() >= 1 },
		2*time.Second, 20*time.Millisecond)
}

func TestWatcherDebouncesWriteBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var reloads atomic.Int32
	startWatcher(t, path, 200*time.Millisecond, func() error {
		reloads.Add(1)
		return nil
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return reloads.Load() >= 1 },
		2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), reloads.Load())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var reloads atomic.Int32
	startWatcher(t, path, 30*time.Millisecond, func() error {
		reloads.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x\n"), 0o644))
	time.Sleep(200 * time.Millisecond)

	assert.Equal(t, int32(0), reloads.Load())
}

func TestWatcherSurvivesFailedReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	var reloads atomic.Int32
	startWatcher(t, path, 30*time.Millisecond, func() error {
		reloads.Add(1)
		return errors.New("malformed source")
	})

	require.NoError(t, os.WriteFile(path, []byte("a\nb\n"), 0o644))
	require.Eventually(t, func() bool { return reloads.Load() >= 1 },
		2*time.Second, 20*time.Millisecond)

	// The loop keeps watching after a failure.
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644))
	require.Eventually(t, func() bool { return reloads.Load() >= 2 },
		2*time.Second, 20*time.Millisecond)
}
