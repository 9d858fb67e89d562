package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const deepseekBaseURL = "https://api.deepseek.com"

// openaiVendor talks to any OpenAI-compatible chat completion endpoint.
// DeepSeek exposes the same wire format, so both vendors share this adapter
// with different base URLs.
type openaiVendor struct {
	client openai.Client
	model  string
}

func newOpenAIVendor(apiKey, baseURL, model string) *openaiVendor {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openaiVendor{client: openai.NewClient(opts...), model: model}
}

func (v *openaiVendor) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := v.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(v.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no text content in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
