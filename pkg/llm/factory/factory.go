package factory

import (
	"fmt"

	"mindwell-be/pkg/llm"
	"mindwell-be/pkg/llm/gemini"
	"mindwell-be/pkg/llm/ollama"
	"mindwell-be/pkg/llm/openai"
)

// NewLLMProvider builds a provider from config. An empty providerType
// means the deployment runs without a model; callers are expected to
// fall back to canned content in that case.
func NewLLMProvider(providerType, modelName, apiKey, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		if modelName == "" {
			modelName = "gemini-1.5-flash"
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		if modelName == "" {
			modelName = "gpt-4o-mini"
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
