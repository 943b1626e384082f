package am

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) (*ConfigWatcher, chan *Config) {
	t.Helper()
	cw, err := NewConfigWatcher(path,
		WithDebounce(20*time.Millisecond),
		WithLoader(func() (*Config, error) { return LoadFromFile(path) }),
	)
	require.NoError(t, err)

	reloaded := make(chan *Config, 8)
	cw.OnReload(func(cfg *Config) error {
		reloaded <- cfg
		return nil
	})
	cw.Start()
	t.Cleanup(func() { _ = cw.Stop() })
	return cw, reloaded
}

func TestConfigWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, "[generate]\nworkers = 1\n")
	_, reloaded := startWatcher(t, path)

	writeFile(t, path, "[generate]\nworkers = 5\n")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, 5, cfg.Generate.Workers)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}
}

func TestConfigWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectConfigName)
	writeFile(t, path, "")
	_, reloaded := startWatcher(t, path)

	writeFile(t, filepath.Join(dir, "other.toml"), "x = 1\n")
	writeFile(t, path+".back1", "")

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCheckOwnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, "")
	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer cw.Stop()

	assert.False(t, cw.checkOwnWrite())
	cw.MarkOwnWrite()
	assert.True(t, cw.checkOwnWrite())
	assert.False(t, cw.checkOwnWrite(), "the flag covers a single write")
}

func TestConfigWatcherStopWithoutStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigName)
	writeFile(t, path, "")
	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, cw.Stop())
}
