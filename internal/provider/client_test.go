package provider

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

func testConfig(cfg Config) Config {
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = time.Second
	}
	return cfg
}

func TestNewClient_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []ID
	}{
		{
			name: "all configured",
			cfg:  Config{OpenAIKey: "k", GeminiKey: "k", DeepSeekKey: "k", AnthropicKey: "k"},
			want: []ID{OpenAI, Gemini, DeepSeek, Anthropic},
		},
		{
			name: "subset keeps relative order",
			cfg:  Config{DeepSeekKey: "k", GeminiKey: "k"},
			want: []ID{Gemini, DeepSeek},
		},
		{
			name: "none configured",
			cfg:  Config{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), testConfig(tt.cfg))
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			got := client.Available()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Available() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewClient_MockOverridesVendors(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{OpenAIKey: "k", UseMock: true}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if got := client.Available(); !reflect.DeepEqual(got, []ID{Mock}) {
		t.Errorf("expected mock-only availability, got %v", got)
	}
}

func TestCall_NotConfigured(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{OpenAIKey: "k"}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Call(context.Background(), Gemini, "system", "user")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got: %v", err)
	}
}

func TestMockVendor_Shapes(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{UseMock: true}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	tests := []struct {
		name       string
		userPrompt string
		want       string
	}{
		{"question", "Generate exactly one synonym question.", `"correct_answer"`},
		{"reading", "Generate one reading passage with exactly 4 questions.", `"passage"`},
		{"writing", "Generate one writing prompt.", `"prompt_text"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := client.Call(context.Background(), Mock, "system", tt.userPrompt)
			if err != nil {
				t.Fatalf("mock call: %v", err)
			}
			if !strings.Contains(text, tt.want) {
				t.Errorf("mock %s response missing %s: %.120s", tt.name, tt.want, text)
			}
		})
	}
}

func TestMockVendor_ConcurrentCalls(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{UseMock: true}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, err := client.Call(context.Background(), Mock, "system", "Generate exactly one synonym question.")
			if err != nil {
				t.Errorf("concurrent mock call: %v", err)
				return
			}
			if !strings.Contains(text, `"correct_answer"`) {
				t.Errorf("concurrent mock call returned wrong shape: %.120s", text)
			}
		}()
	}
	wg.Wait()
}

func TestProbe_Advisory(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{OpenAIKey: "k"}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	configured := client.Probe(OpenAI)
	if !configured.Available {
		t.Error("configured provider should probe as available")
	}
	if configured.CheckedAt.IsZero() {
		t.Error("probe should set checked_at")
	}

	missing := client.Probe(DeepSeek)
	if missing.Available {
		t.Error("unconfigured provider should probe as unavailable")
	}
	if missing.Error == "" {
		t.Error("unconfigured probe should carry an error message")
	}

	all := client.ProbeAll()
	if len(all) != len(priority) {
		t.Errorf("ProbeAll returned %d statuses, want %d", len(all), len(priority))
	}
}

func TestProbeAll_IncludesMockWhenConfigured(t *testing.T) {
	client, err := NewClient(context.Background(), testConfig(Config{UseMock: true}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	all := client.ProbeAll()
	if len(all) != len(priority)+1 {
		t.Fatalf("ProbeAll returned %d statuses, want %d", len(all), len(priority)+1)
	}
	if all[0].Name != string(Mock) || !all[0].Available {
		t.Errorf("expected the active mock vendor reported first and available, got %+v", all[0])
	}
}

func TestCallError_Timeout(t *testing.T) {
	timedOut := &CallError{Provider: OpenAI, Err: context.DeadlineExceeded}
	if !timedOut.Timeout() {
		t.Error("deadline-exceeded call should report Timeout")
	}

	plain := &CallError{Provider: OpenAI, Err: errors.New("connection refused")}
	if plain.Timeout() {
		t.Error("transport failure should not report Timeout")
	}

	if !errors.Is(timedOut, context.DeadlineExceeded) {
		t.Error("CallError should unwrap to its cause")
	}
}
