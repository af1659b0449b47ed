package webhook

import (
	"log/slog"
	"net/http"
	"time"
)

// DeliveryResult describes one delivery attempt.
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Attempt    int
	Duration   time.Duration
	Error      error
}

// DeliveryHook is called after every attempt.
type DeliveryHook func(result DeliveryResult)

// Option configures a Sender.
type Option func(*Sender)

// WithTimeout bounds each attempt. Default is 10 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Sender) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a failed delivery is retried. Default is 3.
func WithMaxRetries(n int) Option {
	return func(s *Sender) {
		if n >= 0 {
			s.maxRetries = n
		}
	}
}

func WithNoRetry() Option {
	return WithMaxRetries(0)
}

func WithBackoff(strategy BackoffStrategy) Option {
	return func(s *Sender) {
		if strategy != nil {
			s.backoff = strategy
		}
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.client = client
		}
	}
}

// WithCircuitBreaker guards the endpoint with cb.
func WithCircuitBreaker(cb *CircuitBreaker) Option {
	return func(s *Sender) {
		s.breaker = cb
	}
}

func WithUserAgent(ua string) Option {
	return func(s *Sender) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Sender) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOnDelivery registers a hook called after every attempt, e.g. for metrics.
func WithOnDelivery(hook DeliveryHook) Option {
	return func(s *Sender) {
		s.onDelivery = hook
	}
}

// SendOption adjusts a single Send call.
type SendOption func(*sendOptions)

type sendOptions struct {
	headers map[string]string
}

// WithHeader sets a request header for one delivery.
func WithHeader(key, value string) SendOption {
	return func(o *sendOptions) {
		if key != "" && value != "" {
			o.headers[key] = value
		}
	}
}
