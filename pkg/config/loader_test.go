package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/config"
)

type workflowConfig struct {
	URL     string        `env:"TEST_WORKFLOW_URL,required"`
	Timeout time.Duration `env:"TEST_WORKFLOW_TIMEOUT" envDefault:"30s"`
	Retries int           `env:"TEST_WORKFLOW_RETRIES" envDefault:"3"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
}

type checkedConfig struct {
	Window time.Duration `env:"TEST_CHECKED_WINDOW" envDefault:"1m"`
}

func (c *checkedConfig) Validate() error {
	if c.Window <= 0 {
		return errors.New("window must be positive")
	}
	return nil
}

func TestParse(t *testing.T) {
	t.Run("reads values and defaults", func(t *testing.T) {
		t.Setenv("TEST_WORKFLOW_URL", "https://flow.example.com/run")
		t.Setenv("TEST_WORKFLOW_RETRIES", "5")

		var cfg workflowConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "https://flow.example.com/run", cfg.URL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 5, cfg.Retries)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg workflowConfig
		err := config.Parse(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("runs validation", func(t *testing.T) {
		t.Setenv("TEST_CHECKED_WINDOW", "-1s")
		var cfg checkedConfig
		err := config.Parse(&cfg)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[workflowConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_CACHED_VALUE", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	assert.Equal(t, "first", a.Value)

	t.Setenv("TEST_CACHED_VALUE", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	assert.Equal(t, "first", b.Value)
}

func TestMustLoadPanicsOnError(t *testing.T) {
	type brokenConfig struct {
		Port int `env:"TEST_BROKEN_PORT"`
	}
	t.Setenv("TEST_BROKEN_PORT", "not-a-number")

	assert.Panics(t, func() {
		var cfg brokenConfig
		config.MustLoad(&cfg)
	})
}
