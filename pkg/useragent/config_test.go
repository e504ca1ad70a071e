package useragent_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uaparser/pkg/useragent"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := useragent.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, useragent.DefaultMaxLength, cfg.MaxLength)
		assert.Equal(t, useragent.DefaultMatchTimeout, cfg.MatchTimeout)
		assert.Zero(t, cfg.CacheSize)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("USERAGENT_MAX_LENGTH", "256")
		t.Setenv("USERAGENT_MATCH_TIMEOUT", "250ms")
		t.Setenv("USERAGENT_CACHE_SIZE", "512")

		cfg, err := useragent.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 256, cfg.MaxLength)
		assert.Equal(t, 250*time.Millisecond, cfg.MatchTimeout)
		assert.Equal(t, 512, cfg.CacheSize)
	})

	t.Run("env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "useragent.env")
		require.NoError(t, os.WriteFile(path, []byte("USERAGENT_CACHE_SIZE=64\n"), 0o600))

		_, set := os.LookupEnv("USERAGENT_CACHE_SIZE")
		require.False(t, set, "USERAGENT_CACHE_SIZE must not be set for this test")
		t.Cleanup(func() { _ = os.Unsetenv("USERAGENT_CACHE_SIZE") })

		cfg, err := useragent.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 64, cfg.CacheSize)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := useragent.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, useragent.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("USERAGENT_MAX_LENGTH", "lots")

		_, err := useragent.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, useragent.ErrParsingConfig)
	})

	t.Run("negative value", func(t *testing.T) {
		t.Setenv("USERAGENT_CACHE_SIZE", "-1")

		_, err := useragent.LoadConfig()
		require.Error(t, err)
		assert.ErrorIs(t, err, useragent.ErrInvalidConfig)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     useragent.Config
		wantErr bool
	}{
		{name: "zero value", cfg: useragent.Config{}},
		{name: "defaults", cfg: useragent.Config{MaxLength: 1024, MatchTimeout: 100 * time.Millisecond}},
		{name: "negative max length", cfg: useragent.Config{MaxLength: -1}, wantErr: true},
		{name: "negative timeout", cfg: useragent.Config{MatchTimeout: -time.Second}, wantErr: true},
		{name: "negative cache size", cfg: useragent.Config{CacheSize: -10}, wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, useragent.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		p, err := useragent.NewFromConfig(useragent.Config{
			MaxLength:    512,
			MatchTimeout: time.Second,
			CacheSize:    16,
		})
		require.NoError(t, err)
		assert.Equal(t, "Chrome", p.Parse(chromeWindowsUA).BrowserName)
	})

	t.Run("options win over config", func(t *testing.T) {
		t.Parallel()
		p, err := useragent.NewFromConfig(useragent.Config{MaxLength: 10}, useragent.WithMaxLength(0))
		require.NoError(t, err)
		assert.Equal(t, "Windows", p.Parse("Mozilla/5.0 (Windows NT 6.1)").OSName)
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		p, err := useragent.NewFromConfig(useragent.Config{CacheSize: -1})
		require.ErrorIs(t, err, useragent.ErrInvalidConfig)
		assert.Nil(t, p)
	})
}
