package provider

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrNotConfigured means the requested provider has no credentials.
var ErrNotConfigured = errors.New("provider not configured")

// CallError wraps a transport or API failure from a specific vendor,
// including deadline expiry.
type CallError struct {
	Provider ID
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("provider %s call failed: %v", e.Provider, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Timeout reports whether the call failed by exceeding the configured
// per-call deadline.
func (e *CallError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// vendor adapts one LLM API behind a uniform text-in/text-out call.
type vendor interface {
	generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client routes prompt pairs to whichever vendors have credentials. It holds
// no mutable state after construction and is safe for concurrent use.
type Client struct {
	vendors map[ID]vendor
	order   []ID
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	c := &Client{vendors: make(map[ID]vendor), timeout: cfg.CallTimeout}

	if cfg.UseMock {
		c.vendors[Mock] = newMockVendor()
		c.order = []ID{Mock}
		log.Println("Provider client using mock vendor only")
		return c, nil
	}

	if cfg.OpenAIKey != "" {
		c.vendors[OpenAI] = newOpenAIVendor(cfg.OpenAIKey, "", cfg.OpenAIModel)
	}
	if cfg.GeminiKey != "" {
		v, err := newGeminiVendor(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("init gemini client: %w", err)
		}
		c.vendors[Gemini] = v
	}
	if cfg.DeepSeekKey != "" {
		// DeepSeek speaks the OpenAI chat-completion wire format.
		c.vendors[DeepSeek] = newOpenAIVendor(cfg.DeepSeekKey, deepseekBaseURL, cfg.DeepSeekModel)
	}
	if cfg.AnthropicKey != "" {
		c.vendors[Anthropic] = newAnthropicVendor(cfg.AnthropicKey, cfg.AnthropicModel)
	}

	for _, id := range priority {
		if _, ok := c.vendors[id]; ok {
			c.order = append(c.order, id)
		}
	}

	log.Printf("Provider client configured: %v", c.order)
	return c, nil
}

// Available returns the configured providers in fixed priority order.
func (c *Client) Available() []ID {
	out := make([]ID, len(c.order))
	copy(out, c.order)
	return out
}

// Configured reports whether the named provider has credentials.
func (c *Client) Configured(id ID) bool {
	_, ok := c.vendors[id]
	return ok
}

// Call sends one system+user prompt pair to the named provider and returns
// the raw text response. The configured per-call deadline applies; there are
// no internal retries — retry policy belongs to the caller.
func (c *Client) Call(ctx context.Context, id ID, systemPrompt, userPrompt string) (string, error) {
	v, ok := c.vendors[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotConfigured, id)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := v.generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", &CallError{Provider: id, Err: err}
	}
	return text, nil
}
