// Package webhook delivers JSON payloads to an HTTP endpoint, such as the
// workflow that files portal requests, with retries, exponential backoff and
// a circuit breaker.
//
//	sender, err := webhook.NewSender(workflowURL,
//		webhook.WithMaxRetries(3),
//		webhook.WithCircuitBreaker(webhook.NewCircuitBreaker(5, 2, 30*time.Second)),
//		webhook.WithLogger(log),
//	)
//	receipt, err := sender.Send(ctx, envelope, webhook.WithHeader("X-Submission-ID", id))
//
// Any 2xx answer is a success. 4xx answers except 408, 425 and 429 are
// permanent failures and are not retried; network errors, timeouts and 5xx
// answers are retried until the attempts run out.
package webhook
