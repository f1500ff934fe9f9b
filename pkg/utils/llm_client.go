package utils

import (
	"context"
	"fmt"
	"strings"
)

// LLMClientInterface is the single seam to the hosted language model.
// Both implementations are constructed once at startup and shared.
type LLMClientInterface interface {
	// CompleteJSON asks for a JSON-only completion (object or array).
	CompleteJSON(ctx context.Context, system string, prompt string, temperature float32) (string, error)

	// Complete returns a short free-text completion.
	Complete(ctx context.Context, system string, prompt string, temperature float32, maxTokens int) (string, error)
}

// NewLLMClient builds an OpenAI or Gemini backed client based on config.
func NewLLMClient(provider, apiKey, model string) (LLMClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONResponse strips markdown fences some models wrap around JSON.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}
