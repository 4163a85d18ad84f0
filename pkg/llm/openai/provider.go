package openai

import (
	"context"
	"fmt"

	"mindwell-be/pkg/llm"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

type OpenAIProvider struct {
	client    *openai.Client
	modelName string
}

var _ llm.LLMProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName string) *OpenAIProvider {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIProvider{
		client:    &client,
		modelName: modelName,
	}
}

func (p *OpenAIProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	items := make([]responses.ResponseInputItemUnionParam, 0, len(history))
	for _, msg := range history {
		role := responses.EasyInputMessageRoleUser
		switch msg.Role {
		case "assistant", "model":
			role = responses.EasyInputMessageRoleAssistant
		case "system":
			role = responses.EasyInputMessageRoleSystem
		}
		items = append(items, responses.ResponseInputItemParamOfMessage(msg.Content, role))
	}

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	params := responses.ResponseNewParams{
		Model:       model,
		Temperature: openai.Float(options.Temperature),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: items,
		},
	}
	if options.MaxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(options.MaxTokens))
	}
	if options.TopP > 0 {
		params.TopP = openai.Float(options.TopP)
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("openai returned empty output")
	}
	return text, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
