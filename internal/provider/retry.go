// Package provider holds what the HTTP collaborator clients share: the
// per-operation retry policy and the mapping of HTTP outcomes onto domain
// errors.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// RetryPolicy declares how often a request may be attempted.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// ReadPolicy retries idempotent reads up to attempts times with a doubling backoff.
func ReadPolicy(attempts int) RetryPolicy {
	if attempts < 1 {
		attempts = 1
	}
	return RetryPolicy{Attempts: attempts, Backoff: 200 * time.Millisecond}
}

// WritePolicy makes exactly one attempt.
func WritePolicy() RetryPolicy {
	return RetryPolicy{Attempts: 1}
}

// Do sends the request built by newReq, retrying on network errors and 5xx
// responses while attempts remain and ctx is live. The caller closes the
// returned body.
func (p RetryPolicy) Do(
	ctx context.Context,
	client *http.Client,
	log *slog.Logger,
	newReq func(ctx context.Context) (*http.Request, error),
) (*http.Response, error) {
	attempts := max(p.Attempts, 1)
	backoff := p.Backoff

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		req, err := newReq(ctx)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := client.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			drain(resp)
		}

		if ctx.Err() != nil || attempt == attempts {
			break
		}

		log.WarnContext(ctx, "retrying request",
			slog.String("url", req.URL.Redacted()),
			slog.Int("attempt", attempt),
			slog.String("reason", lastErr.Error()),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}

	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(lastErr, ctxErr) {
		return nil, ctxErr
	}
	return nil, fmt.Errorf("%w: %w", domain.ErrTransient, lastErr)
}

// StatusError maps a non-2xx response onto a domain error. what names the
// resource for the message.
func StatusError(resp *http.Response, what string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	detail := fmt.Sprintf("%s: status %d", what, resp.StatusCode)
	if len(body) > 0 {
		detail += ": " + string(body)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case resp.StatusCode == http.StatusBadRequest, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return fmt.Errorf("%s: %w", detail, domain.ErrTransient)
	}
	return errors.New(detail)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
