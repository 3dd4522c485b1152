// Package provider implements messages.Provider backends that produce missing
// UI texts.
package provider

import "github.com/ZaguanLabs/alltools/messages"

// TranslateRequest is an alias to the messages package type.
type TranslateRequest = messages.TranslateRequest

// New returns the OpenAI provider wrapped with rate limiting and retries, the
// way the CLI and server use it.
func New(cfg OpenAIConfig, limit messages.RateLimitConfig, retry messages.RetryConfig) messages.Provider {
	var p messages.Provider = NewOpenAIProvider(cfg)
	p = messages.NewRateLimitedProvider(p, limit)
	return messages.NewRetryingProvider(p, retry)
}
