package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atnchile/portal/pkg/webhook"
)

func fastRetry() webhook.Option {
	return webhook.WithBackoff(webhook.FixedBackoff{Interval: time.Millisecond})
}

func TestNewSenderValidatesURL(t *testing.T) {
	t.Parallel()

	for _, endpoint := range []string{"", "ftp://example.com/hook", "https://", "://bad"} {
		_, err := webhook.NewSender(endpoint)
		assert.ErrorIs(t, err, webhook.ErrInvalidURL, endpoint)
	}

	_, err := webhook.NewSender("https://prod.example.com/workflows/abc/triggers/manual/run?sig=x")
	assert.NoError(t, err)
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("posts json with headers", func(t *testing.T) {
		t.Parallel()
		var got map[string]any
		var header http.Header
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header = r.Header.Clone()
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		sender, err := webhook.NewSender(srv.URL, webhook.WithUserAgent("portal-test"))
		require.NoError(t, err)

		receipt, err := sender.Send(context.Background(), map[string]string{"tipoSolicitud": "otro"}, webhook.WithHeader("X-Submission-ID", "abc"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, receipt.StatusCode)
		assert.Equal(t, 1, receipt.Attempts)
		assert.Equal(t, "otro", got["tipoSolicitud"])
		assert.Equal(t, "application/json", header.Get("Content-Type"))
		assert.Equal(t, "portal-test", header.Get("User-Agent"))
		assert.Equal(t, "abc", header.Get("X-Submission-ID"))
	})

	t.Run("retries server errors", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		var mu sync.Mutex
		var attempts []webhook.DeliveryResult
		sender, err := webhook.NewSender(srv.URL, fastRetry(), webhook.WithOnDelivery(func(r webhook.DeliveryResult) {
			mu.Lock()
			attempts = append(attempts, r)
			mu.Unlock()
		}))
		require.NoError(t, err)

		receipt, err := sender.Send(context.Background(), map[string]int{"n": 1})
		require.NoError(t, err)
		assert.Equal(t, 3, receipt.Attempts)
		require.Len(t, attempts, 3)
		assert.Equal(t, http.StatusBadGateway, attempts[0].StatusCode)
		assert.False(t, attempts[1].Success)
		assert.True(t, attempts[2].Success)
		assert.Equal(t, 3, attempts[2].Attempt)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			http.Error(w, "flow\nunavailable", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		sender, err := webhook.NewSender(srv.URL, fastRetry(), webhook.WithMaxRetries(2))
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), map[string]int{"n": 1})
		require.ErrorIs(t, err, webhook.ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "status 503: flow unavailable")
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("client errors are permanent", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		sender, err := webhook.NewSender(srv.URL, fastRetry())
		require.NoError(t, err)

		receipt, err := sender.Send(context.Background(), map[string]int{"n": 1})
		assert.True(t, webhook.IsPermanent(err))
		assert.Equal(t, http.StatusBadRequest, receipt.StatusCode)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("rate limiting is retried", func(t *testing.T) {
		t.Parallel()
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		sender, err := webhook.NewSender(srv.URL, fastRetry())
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), map[string]int{"n": 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		sender, err := webhook.NewSender(srv.URL, webhook.WithNoRetry(), webhook.WithTimeout(20*time.Millisecond))
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), map[string]int{"n": 1})
		assert.ErrorIs(t, err, webhook.ErrTimeout)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		sender, err := webhook.NewSender("https://example.com/hook")
		require.NoError(t, err)

		_, err = sender.Send(context.Background(), make(chan int))
		assert.ErrorIs(t, err, webhook.ErrInvalidPayload)
		_, err = sender.Send(context.Background(), nil)
		assert.True(t, webhook.IsPermanent(err))
	})

	t.Run("context cancelled during backoff", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		sender, err := webhook.NewSender(srv.URL, webhook.WithBackoff(webhook.FixedBackoff{Interval: time.Hour}))
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		receipt, err := sender.Send(ctx, map[string]int{"n": 1})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, 1, receipt.Attempts)
	})
}

func TestSendCircuitBreaker(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cb := webhook.NewCircuitBreaker(2, 1, time.Hour)
	sender, err := webhook.NewSender(srv.URL, webhook.WithNoRetry(), webhook.WithCircuitBreaker(cb))
	require.NoError(t, err)
	assert.True(t, sender.Healthy())

	for range 2 {
		_, err = sender.Send(context.Background(), map[string]int{"n": 1})
		require.ErrorIs(t, err, webhook.ErrDeliveryFailed)
	}
	assert.False(t, sender.Healthy())

	_, err = sender.Send(context.Background(), map[string]int{"n": 1})
	assert.True(t, webhook.IsCircuitOpen(err))
	assert.EqualValues(t, 2, calls.Load())
}
