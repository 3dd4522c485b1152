package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZaguanLabs/alltools/messages"
)

// MockProvider is a mock provider for testing and offline runs.
type MockProvider struct {
	mu           sync.Mutex
	Translations map[string]string // Map of source text to translation
	CallCount    int               // Number of times Translate was called
	LastRequest  *TranslateRequest // Last request received
}

// NewMockProvider creates a new mock provider with a few Portuguese texts.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Language":    "Idioma",
			"Clear":       "Limpar",
			"Upload file": "Carregar arquivo",
			"Merge PDF":   "Unir PDF",
		},
	}
}

// Translate returns the configured texts, or the source tagged with the target
// language when none is configured.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastRequest = &req

	results := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		if translation, ok := m.Translations[text]; ok {
			results[i] = translation
		} else {
			results[i] = fmt.Sprintf("[%s] %s", req.TargetLang, text)
		}
	}

	return results, nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastRequest = nil
}

var _ messages.Provider = (*MockProvider)(nil)
