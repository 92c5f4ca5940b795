package minigu_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	minigu "github.com/minigu-db/minigu-go"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     minigu.Config
		wantErr error
	}{
		{"defaults", minigu.DefaultConfig(), nil},
		{"zero threads", minigu.Config{ThreadCount: 0, CacheSize: 10}, minigu.ErrInvalidThreadCount},
		{"negative threads", minigu.Config{ThreadCount: -4, CacheSize: 10}, minigu.ErrInvalidThreadCount},
		{"negative cache", minigu.Config{ThreadCount: 1, CacheSize: -1}, minigu.ErrInvalidCacheSize},
		{"zero cache ok", minigu.Config{ThreadCount: 1, CacheSize: 0}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := minigu.DefaultConfig()
	assert.Equal(t, 1, cfg.ThreadCount)
	assert.Equal(t, 1000, cfg.CacheSize)
	assert.Empty(t, cfg.Path)
	assert.False(t, cfg.EnableLogging)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".minigu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: native\nthread_count: 4\n"), 0o644))

	cfg, err := minigu.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "native", cfg.Engine)
	assert.Equal(t, 4, cfg.ThreadCount)

	// Options absent from the file keep their defaults.
	assert.Equal(t, 1000, cfg.CacheSize)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".minigu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thread_count: 0\n"), 0o644))

	_, err := minigu.LoadConfigFile(path)
	require.ErrorIs(t, err, minigu.ErrInvalidThreadCount)
}

func TestFindConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	want := filepath.Join(root, ".minigu.yaml")
	require.NoError(t, os.WriteFile(want, []byte("thread_count: 2\n"), 0o644))

	got, err := minigu.FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	cfg, err := minigu.LoadConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ThreadCount)
}

func TestFindConfigPrefersNearest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(root, ".minigu.yaml"), []byte("thread_count: 1\n"), 0o644))

	want := filepath.Join(nested, ".minigu.yaml")
	require.NoError(t, os.WriteFile(want, []byte("thread_count: 8\n"), 0o644))

	got, err := minigu.FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := minigu.FindConfig(t.TempDir())
	require.ErrorIs(t, err, minigu.ErrConfigNotFound)
}
