package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiVendor struct {
	client *genai.Client
	model  string
}

func newGeminiVendor(ctx context.Context, apiKey, model string) (*geminiVendor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &geminiVendor{client: client, model: model}, nil
}

func (v *geminiVendor) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := v.client.Models.GenerateContent(ctx, v.model, genai.Text(userPrompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in generation response")
	}
	return text, nil
}
