package llm_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripdesk/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient)

// LLMConfig holds configuration for language-model clients
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideLLMClient creates a language-model client based on environment variables
func ProvideLLMClient() (utils.LLMClientInterface, error) {
	config := getLLMConfig()

	log.Printf("Initializing %s language-model client with model: %s", config.Provider, config.Model)
	if config.APIKey == "" {
		log.Printf("No API key configured for %s, AI calls will fail and fall back", config.Provider)
	}

	return utils.NewLLMClient(config.Provider, config.APIKey, config.Model)
}

func getLLMConfig() LLMConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
