package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/doccms/core/config"
)

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:"first"`
}

type parsedConfig struct {
	Root    string        `env:"CONFIG_TEST_ROOT" envDefault:"data"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
	List    []string      `env:"CONFIG_TEST_LIST" envSeparator:","`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

type fileConfig struct {
	Value string `env:"CONFIG_TEST_FROM_FILE"`
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_NAME", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Name)

	t.Setenv("CONFIG_TEST_CACHED_NAME", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Name, "second load must come from cache")
}

func TestParse(t *testing.T) {
	t.Setenv("CONFIG_TEST_ROOT", "/srv/docs")
	t.Setenv("CONFIG_TEST_LIST", "*.md,*.txt")

	var cfg parsedConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "/srv/docs", cfg.Root)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"*.md", "*.txt"}, cfg.List)
}

func TestParseRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Parse(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsing)

	assert.Panics(t, func() {
		var c requiredConfig
		config.MustLoad(&c)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONFIG_TEST_FROM_FILE=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CONFIG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnvFiles(path))

	var cfg fileConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "from-file", cfg.Value)

	require.NoError(t, config.LoadEnvFiles())
	assert.Error(t, config.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
}
