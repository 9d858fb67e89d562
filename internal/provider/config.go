package provider

import (
	"os"
	"strconv"
	"time"
)

// ID identifies an LLM vendor.
type ID string

const (
	OpenAI    ID = "openai"
	Gemini    ID = "gemini"
	DeepSeek  ID = "deepseek"
	Anthropic ID = "anthropic"
	Mock      ID = "mock"
)

// priority fixes the selection order when a request does not name a provider.
// The first configured entry wins; selection is deterministic for a given
// configuration.
var priority = []ID{OpenAI, Gemini, DeepSeek, Anthropic}

// Config carries every credential and knob the client needs. It is built once
// at startup and treated as immutable afterwards — the client never reads the
// environment on its own, so tests can inject fake credentials.
type Config struct {
	OpenAIKey      string
	OpenAIModel    string
	GeminiKey      string
	GeminiModel    string
	DeepSeekKey    string
	DeepSeekModel  string
	AnthropicKey   string
	AnthropicModel string

	// CallTimeout bounds every single provider call. There is no retry and
	// no cancellation beyond this deadline.
	CallTimeout time.Duration

	// UseMock replaces all vendors with the canned local client.
	UseMock bool
}

// ConfigFromEnv reads provider credentials and models from the environment.
func ConfigFromEnv() Config {
	timeout := 120 * time.Second
	if v := os.Getenv("PROVIDER_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o"),
		GeminiKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		DeepSeekKey:    os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekModel:  getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		CallTimeout:    timeout,
		UseMock:        os.Getenv("MOCK_PROVIDER") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
