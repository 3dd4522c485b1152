package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/messages"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = "gpt-4o-mini"

// OpenAIProvider implements messages.Provider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: DefaultModel)
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate produces the target-language version of a batch of UI texts.
func (p *OpenAIProvider) Translate(ctx context.Context, req TranslateRequest) ([]string, error) {
	if len(req.Texts) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: p.buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &messages.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &messages.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return p.parseResponse(resp.Choices[0].Message.Content, len(req.Texts))
}

func (p *OpenAIProvider) buildSystemPrompt(req TranslateRequest) string {
	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = alltools.English
	}

	sourceName := alltools.LanguageName(sourceLang)
	targetName := alltools.LanguageName(req.TargetLang)

	contextText := "The texts belong to a website user interface."
	if req.Context != "" {
		contextText = fmt.Sprintf("The texts belong to the user interface of %s.", req.Context)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `# Role
You localize website interface texts from %s to %s (language code %q) like a native copywriter.

# Context
%s

# Task
Write the %s version of each provided text.

# Style Guide
- **Brevity**: Titles, buttons and footer links must stay short. Keep the length close to the source.
- **Natural Flow**: Avoid literal translations. Use the wording a native site would use.
- **Keys**: Each text comes with its message key (e.g. "tools.merge-pdf.title"). Use it to tell titles, descriptions, buttons and legal text apart. Never output the key.
- **Brand**: Keep the name "AllTools" unchanged.
- **Formatting**: Preserve placeholders, URLs and email addresses. Use idiomatic punctuation for the target language.`,
		sourceName, targetName, string(req.TargetLang), contextText, targetName)

	if alltools.IsRTL(req.TargetLang) {
		b.WriteString("\n- **Direction**: The target language is written right to left. Do not add direction marks.")
	}

	if len(req.Glossary) > 0 {
		b.WriteString("\n\n# Glossary\nWhen you encounter these phrases, prefer these renderings:")
		sources := make([]string, 0, len(req.Glossary))
		for source := range req.Glossary {
			sources = append(sources, source)
		}
		sort.Strings(sources)
		for _, source := range sources {
			fmt.Fprintf(&b, "\n- \"%s\" → %s", source, req.Glossary[source])
		}
	}

	b.WriteString(`

# Format
Return a valid JSON object with a single key "translations" containing an array of strings in the exact same order as the input.
Example: { "translations": ["text 1", "text 2"] }
- Do NOT wrap in Markdown code blocks.`)

	return b.String()
}

func (p *OpenAIProvider) buildUserMessage(req TranslateRequest) string {
	if len(req.Keys) != len(req.Texts) {
		data, _ := json.Marshal(req.Texts)
		return string(data)
	}

	type item struct {
		Key  string `json:"key"`
		Text string `json:"text"`
	}

	items := make([]item, len(req.Texts))
	for i, text := range req.Texts {
		items[i] = item{Key: req.Keys[i], Text: text}
	}

	data, _ := json.Marshal(map[string][]item{"items": items})
	return string(data)
}

func (p *OpenAIProvider) parseResponse(content string, expectedCount int) ([]string, error) {
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if translations, ok := objResult["translations"]; ok {
			if arr, ok := translations.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}

		// Some models pick another key
		for _, v := range objResult {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	var arrResult []interface{}
	if err := json.Unmarshal([]byte(content), &arrResult); err == nil {
		return toStringSlice(arrResult, expectedCount)
	}

	return nil, &messages.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}

	if len(result) != expectedCount {
		return nil, &messages.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}

	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

var _ messages.Provider = (*OpenAIProvider)(nil)
