package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
	}
}

func TestWithRetry_Success(t *testing.T) {
	calls := 0
	result, err := WithRetry(context.Background(), fastRetry(), func() (string, error) {
		calls++
		return "success", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_RetryableError(t *testing.T) {
	calls := 0
	result, err := WithRetry(context.Background(), fastRetry(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		}
		return "success", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "success", result)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), fastRetry(), func() (string, error) {
		calls++
		return "", &ProviderError{Message: "invalid api key", Retryable: false}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_MaxRetriesExceeded(t *testing.T) {
	calls := 0
	_, err := WithRetry(context.Background(), fastRetry(), func() (string, error) {
		calls++
		return "", &ProviderError{Message: "temporary", Retryable: true}
	})

	var providerErr *ProviderError
	assert.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 4, calls, "initial attempt plus MaxRetries")
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := RetryConfig{MaxRetries: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}

	calls := 0
	_, err := WithRetry(ctx, cfg, func() (string, error) {
		calls++
		cancel()
		return "", &ProviderError{Message: "temporary", Retryable: true}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil", nil, false},
		{"retryable provider error", &ProviderError{Retryable: true}, true},
		{"fatal provider error", &ProviderError{Retryable: false}, false},
		{"wrapped", errors.Join(errors.New("ctx"), &ProviderError{Retryable: true}), true},
		{"canceled", context.Canceled, false},
		{"deadline", context.DeadlineExceeded, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryable(tt.err))
		})
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.BaseDelay)
	assert.Equal(t, 30*time.Second, cfg.MaxDelay)
	assert.Equal(t, 2*time.Second, cfg.backoff(1))
	assert.Equal(t, 30*time.Second, cfg.backoff(10))
}

func TestRetryingProvider(t *testing.T) {
	inner := &fakeProvider{failures: 2}
	p := NewRetryingProvider(inner, fastRetry())

	out, err := p.Translate(context.Background(), TranslateRequest{Texts: []string{"Hello"}, TargetLang: "pt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"[pt] Hello"}, out)
	assert.Equal(t, 3, inner.calls)
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Message: "OpenAI API call failed", Cause: errors.New("429")}
	assert.Equal(t, "provider error: OpenAI API call failed: 429", err.Error())

	err2 := &ProviderError{Message: "no response"}
	assert.Equal(t, "provider error: no response", err2.Error())

	mismatch := &CountMismatchError{Expected: 3, Got: 2}
	assert.Equal(t, "text count mismatch: expected 3, got 2", mismatch.Error())
}
