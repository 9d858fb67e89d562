package provider

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

type anthropicVendor struct {
	client *anthropic.Client
	model  string
}

func newAnthropicVendor(apiKey, model string) *anthropicVendor {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &anthropicVendor{client: &client, model: model}
}

func (v *anthropicVendor) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	message, err := v.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(v.model),
		MaxTokens:   8192,
		Temperature: param.NewOpt(0.8),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})
	if err != nil {
		return "", err
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in API response")
}
