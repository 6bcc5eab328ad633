package sources

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"catalog-api/internal/infrastructure/logger"
)

const (
	maxAttempts = 3
	baseBackoff = 1 * time.Second
	maxBackoff  = 10 * time.Second
)

// statusError carries the HTTP status of a failed upstream call so the retry
// loop can tell transient server errors from permanent client errors.
type statusError struct {
	status int
	url    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("upstream returned %d %s for %s", e.status, http.StatusText(e.status), e.url)
}

func newStatusError(status int, url string) error {
	return &statusError{status: status, url: url}
}

// isRetryable reports whether the error is worth another attempt. Timeouts
// and server-side failures are transient; auth and other client errors are
// not.
func isRetryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return retryableStatus(se.status)
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return retryableStatus(reqErr.HTTPStatusCode)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

// withRetry runs fn up to maxAttempts times with capped exponential backoff.
// Non-retryable errors and context cancellation end the loop immediately.
func withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) || attempt == maxAttempts {
			return err
		}

		backoff := baseBackoff << (attempt - 1)
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
		log := logger.GetLogger()
		log.Warn().
			Err(err).
			Str("op", op).
			Int("attempt", attempt).
			Dur("backoff", backoff).
			Msg("retrying upstream fetch")

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
