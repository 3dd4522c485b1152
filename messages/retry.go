package messages

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// backoff returns the delay before retry number attempt (0-based).
func (c RetryConfig) backoff(attempt int) time.Duration {
	delay := c.BaseDelay * time.Duration(1<<attempt)
	if delay > c.MaxDelay || delay <= 0 {
		delay = c.MaxDelay
	}
	return delay
}

// WithRetry executes fn with exponential backoff while it fails with a retryable error.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn func() (T, error)) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err
		if !IsRetryable(err) {
			return zero, err
		}

		if attempt < cfg.MaxRetries {
			timer := time.NewTimer(cfg.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, ctx.Err()
			case <-timer.C:
			}
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether err is a provider error flagged as retryable.
// Context errors are never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}

// RetryingProvider wraps a Provider with retry logic.
type RetryingProvider struct {
	provider Provider
	config   RetryConfig
}

// NewRetryingProvider creates a new provider with retry logic.
func NewRetryingProvider(provider Provider, cfg RetryConfig) *RetryingProvider {
	return &RetryingProvider{
		provider: provider,
		config:   cfg,
	}
}

// Translate implements Provider with retry logic.
func (p *RetryingProvider) Translate(ctx context.Context, req TranslateRequest) ([]string, error) {
	return WithRetry(ctx, p.config, func() ([]string, error) {
		return p.provider.Translate(ctx, req)
	})
}
