package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atnchile/portal/pkg/logger"
)

// Receipt summarizes a successful delivery.
type Receipt struct {
	StatusCode int
	Attempts   int
	Duration   time.Duration
}

// Sender posts JSON payloads to one HTTP endpoint with retries, backoff and
// an optional circuit breaker. Use NewSender to create one.
type Sender struct {
	endpoint   string
	client     *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    BackoffStrategy
	breaker    *CircuitBreaker
	userAgent  string
	logger     *slog.Logger
	onDelivery DeliveryHook
}

// NewSender validates endpoint and returns a Sender posting to it.
func NewSender(endpoint string, opts ...Option) (*Sender, error) {
	if err := validateURL(endpoint); err != nil {
		return nil, err
	}

	s := &Sender{
		endpoint:   endpoint,
		client:     defaultClient(),
		timeout:    10 * time.Second,
		maxRetries: 3,
		backoff:    DefaultBackoffStrategy(),
		userAgent:  "atn-portal/1.0",
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("webhook"))
	return s, nil
}

func defaultClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// Healthy reports whether deliveries are currently allowed by the circuit breaker.
func (s *Sender) Healthy() bool {
	return s.breaker == nil || s.breaker.State() != CircuitOpen
}

// Send marshals data to JSON and posts it. 4xx answers other than 408, 425
// and 429 are permanent and end the retries early.
func (s *Sender) Send(ctx context.Context, data any, opts ...SendOption) (Receipt, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if len(payload) == 0 || string(payload) == "null" {
		return Receipt{}, fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}

	options := &sendOptions{headers: make(map[string]string)}
	for _, opt := range opts {
		opt(options)
	}

	if s.breaker != nil && !s.breaker.Allow() {
		return Receipt{}, ErrCircuitOpen
	}

	start := time.Now()
	var lastErr error
	for attempt := 1; attempt <= s.maxRetries+1; attempt++ {
		if attempt > 1 {
			if err := sleep(ctx, s.backoff.NextInterval(attempt-1)); err != nil {
				return Receipt{Attempts: attempt - 1}, err
			}
		}

		result, err := s.attempt(ctx, payload, options.headers)
		result.Attempt = attempt
		if s.onDelivery != nil {
			s.onDelivery(result)
		}

		if s.breaker != nil {
			if err == nil {
				s.breaker.RecordSuccess()
			} else {
				s.breaker.RecordFailure()
			}
		}

		if err == nil {
			return Receipt{StatusCode: result.StatusCode, Attempts: attempt, Duration: time.Since(start)}, nil
		}

		lastErr = err
		s.logger.WarnContext(ctx, "webhook attempt failed",
			logger.RetryCount(attempt),
			slog.Int("status", result.StatusCode),
			logger.Duration(result.Duration),
			logger.Error(err),
		)

		if isPermanent(result.StatusCode) {
			return Receipt{StatusCode: result.StatusCode, Attempts: attempt}, fmt.Errorf("%w: %w", ErrPermanentFailure, err)
		}
		if ctx.Err() != nil {
			return Receipt{Attempts: attempt}, ctx.Err()
		}
	}

	return Receipt{Attempts: s.maxRetries + 1}, fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, s.maxRetries+1, lastErr)
}

func (s *Sender) attempt(ctx context.Context, payload []byte, headers map[string]string) (DeliveryResult, error) {
	start := time.Now()
	var result DeliveryResult

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		result.Error = err
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.client.Do(req)
	result.Duration = time.Since(start)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %w", ErrTimeout, err)
		} else {
			err = fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
		}
		result.Error = err
		return result, err
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if !result.Success {
		result.Error = statusError(resp.StatusCode, body)
		return result, result.Error
	}
	return result, nil
}

// statusError keeps the first 200 bytes of the body on one line so it is safe to log.
func statusError(code int, body []byte) error {
	msg := strings.Join(strings.Fields(string(body)), " ")
	if len(msg) > 200 {
		msg = msg[:200] + "..."
	}
	if msg == "" {
		return fmt.Errorf("webhook returned status %d", code)
	}
	return fmt.Errorf("webhook returned status %d: %s", code, msg)
}

func isPermanent(status int) bool {
	if status < 400 || status >= 500 {
		return false
	}
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	default:
		return true
	}
}

func validateURL(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
