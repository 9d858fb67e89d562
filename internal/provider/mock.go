package provider

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// mockVendor returns canned, schema-valid JSON for local development. It
// picks the response shape by inspecting the user prompt the way the real
// vendors never need to.
type mockVendor struct {
	topics []string

	mu    sync.Mutex
	calls int
}

func newMockVendor() *mockVendor {
	return &mockVendor{
		topics: []string{
			"fractions and ratios", "synonyms in context", "animal habitats",
			"early American history", "geometry basics", "weather patterns",
		},
	}
}

func (m *mockVendor) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.mu.Lock()
	topic := m.topics[m.calls%len(m.topics)]
	m.calls++
	m.mu.Unlock()

	switch {
	case strings.Contains(userPrompt, "reading passage"):
		return m.passageJSON(topic), nil
	case strings.Contains(userPrompt, "writing prompt"):
		return fmt.Sprintf(`{"prompt_text":"[Mock] Write a story that begins with a discovery about %s. Use details to bring your story to life.","tags":["mock","%s"]}`,
			topic, strings.Fields(topic)[0]), nil
	default:
		return m.questionJSON(topic), nil
	}
}

func (m *mockVendor) questionJSON(topic string) string {
	return fmt.Sprintf(`{
  "category": "mock",
  "prompt_text": "[Mock] A practice question about %s. Which choice is correct?",
  "options": {
    "A": "[Mock] A plausible but incorrect statement about %s.",
    "B": "[Mock] The correct statement about %s.",
    "C": "[Mock] A common misconception about %s.",
    "D": "[Mock] An out-of-scope statement about %s."
  },
  "correct_answer": "B",
  "explanation": "[Mock] B is correct because it is the only choice consistent with the facts about %s."
}`, topic, topic, topic, topic, topic, topic)
}

func (m *mockVendor) passageJSON(topic string) string {
	questions := "["
	for i := 0; i < 4; i++ {
		if i > 0 {
			questions += ","
		}
		questions += fmt.Sprintf(`{
    "category": "reading",
    "prompt_text": "[Mock] Question %d about the passage on %s.",
    "options": {
      "A": "[Mock] An answer that distorts the passage.",
      "B": "[Mock] An answer that is too broad.",
      "C": "[Mock] The answer supported by the passage.",
      "D": "[Mock] An answer not discussed in the passage."
    },
    "correct_answer": "C",
    "explanation": "[Mock] C restates what the second paragraph says about %s."
  }`, i+1, topic, topic)
	}
	questions += "]"

	passage := strings.Repeat(fmt.Sprintf("[Mock] This paragraph discusses %s in detail, offering examples a student can reason about. ", topic), 6)
	return fmt.Sprintf(`{"passage": %q, "questions": %s}`, passage, questions)
}
