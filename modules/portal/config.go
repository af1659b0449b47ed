package portal

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/atnchile/portal/pkg/environment"
	"github.com/atnchile/portal/pkg/httpserver"
	"github.com/atnchile/portal/pkg/redis"
)

// Config is loaded from the environment with config.Load.
type Config struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name string                  `env:"APP_NAME" envDefault:"atn-portal"`

	WorkflowURL        string        `env:"WORKFLOW_URL,required"`
	WorkflowTimeout    time.Duration `env:"WORKFLOW_TIMEOUT" envDefault:"30s"`
	WorkflowMaxRetries int           `env:"WORKFLOW_MAX_RETRIES" envDefault:"3"`
	BreakerThreshold   int           `env:"WORKFLOW_BREAKER_THRESHOLD" envDefault:"5"`
	BreakerRecovery    time.Duration `env:"WORKFLOW_BREAKER_RECOVERY" envDefault:"1m"`

	// DedupWindow is how long an identical submission is rejected as a duplicate.
	DedupWindow   time.Duration `env:"DEDUP_WINDOW" envDefault:"10m"`
	DedupCapacity int           `env:"DEDUP_CAPACITY" envDefault:"10000"`

	// AssetsDir replaces the embedded locales and reference data when set.
	AssetsDir       string `env:"ASSETS_DIR"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"es"`

	HTTP  httpserver.Config
	Redis redis.Config
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if u, err := url.Parse(c.WorkflowURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("%w: WORKFLOW_URL must be an absolute http(s) URL", ErrInvalidConfig))
	}
	if c.WorkflowTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: WORKFLOW_TIMEOUT must be positive", ErrInvalidConfig))
	}
	if c.WorkflowMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("%w: WORKFLOW_MAX_RETRIES must not be negative", ErrInvalidConfig))
	}
	if c.BreakerThreshold < 1 {
		errs = append(errs, fmt.Errorf("%w: WORKFLOW_BREAKER_THRESHOLD must be at least 1", ErrInvalidConfig))
	}
	if c.DedupWindow <= 0 || c.DedupCapacity < 1 {
		errs = append(errs, fmt.Errorf("%w: DEDUP_WINDOW and DEDUP_CAPACITY must be positive", ErrInvalidConfig))
	}
	if c.DefaultLanguage == "" {
		errs = append(errs, fmt.Errorf("%w: DEFAULT_LANGUAGE is empty", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
