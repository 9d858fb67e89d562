package generator

import (
	"fmt"
	"strings"

	"github.com/ssat-prep/backend/internal/models"
)

// Per-type guidance folded into the question system prompt. Reading and
// writing carry their own full prompts below.
var contentGuidance = map[models.ContentType]string{
	models.ContentQuantitative: `
QUANTITATIVE QUESTION RULES:
- Test one concept per question: arithmetic, fractions/decimals/percents, ratios, elementary algebra, geometry, or data interpretation
- The problem must be solvable without a calculator in under 90 seconds
- Numbers should work out cleanly — no awkward decimals unless the concept is decimals
- Wrong answers must come from predictable mistakes: sign errors, inverted ratios, off-by-one counting, using the wrong operation
- Never require knowledge beyond the target grade band`,

	models.ContentVerbal: `
VERBAL QUESTION RULES:
- Ask for the word closest in meaning to a capitalized stem word, or a sentence-completion with one blank
- The stem word must be grade-appropriate but challenging — drawn from academic prose, not everyday conversation
- Wrong answers should include: a word related to the same topic, a word that sounds similar, and a near-miss with the wrong connotation
- Avoid obscure words with no common usage`,

	models.ContentAnalogy: `
ANALOGY QUESTION RULES:
- Present a stem pair in the form "Cat is to kitten as" and four completion pairs
- The correct completion must share the exact relationship of the stem pair (part/whole, worker/tool, category/member, degree, cause/effect, function)
- Wrong answers must have real but different relationships — never random word pairs
- State the relationship explicitly in the explanation`,

	models.ContentSynonym: `
SYNONYM QUESTION RULES:
- The prompt is a single capitalized word; the four options are candidate synonyms
- Exactly one option is a true synonym; the others are related words, antonyms, or words commonly confused with the stem
- Choose stem words students actually meet in school reading at the target level`,
}

// QuestionSystemPrompt is shared by every standalone-question content type.
func QuestionSystemPrompt(ct models.ContentType) string {
	return fmt.Sprintf(`You are an expert SSAT question writer with years of experience at a test-preparation publisher. You write multiple-choice questions that are indistinguishable from official SSAT material.

Structural rules:
- Exactly 4 answer options labeled A through D
- Exactly ONE correct answer
- Each wrong answer must be wrong for a specific, identifiable reason
- The explanation must say why the correct answer is right and must make sense to a student reviewing a missed question
- Never reference the SSAT itself, test-taking, or these instructions in the question text
%s

DIFFICULTY CALIBRATION:
- standard: SSAT Middle Level, grades 5-7. One tempting distractor.
- advanced: SSAT Upper Level, grades 8-11. Two tempting distractors, subtler distinctions.

Respond with this exact JSON structure and nothing else — no markdown, no commentary:
{
  "category": "%s",
  "prompt_text": "...",
  "options": {"A": "...", "B": "...", "C": "...", "D": "..."},
  "correct_answer": "B",
  "explanation": "..."
}`, contentGuidance[ct], ct)
}

// ReadingSystemPrompt covers one passage bundled with its questions.
func ReadingSystemPrompt() string {
	return fmt.Sprintf(`You are an expert SSAT question writer with years of experience at a test-preparation publisher. You write reading comprehension passages and questions that are indistinguishable from official SSAT material.

PASSAGE CONSTRUCTION (250-350 words, 3-4 paragraphs):
- Self-contained: no outside knowledge needed to answer any question
- Subject areas to rotate: natural science, history, biography, short fiction, arts
- Include at least two specific details questions can reference and one idea that supports inference
- Grade-appropriate vocabulary for the requested difficulty level

QUESTION CONSTRUCTION (exactly %d per passage):
- Mix main idea, specific detail, inference, and vocabulary-in-context questions
- Exactly 4 options labeled A through D, exactly one correct
- Wrong answers should distort the passage, overgeneralize, or introduce ideas the passage never discusses
- Vary the position of the correct answer across questions

DIFFICULTY CALIBRATION:
- standard: SSAT Middle Level, grades 5-7
- advanced: SSAT Upper Level, grades 8-11

Respond with this exact JSON structure and nothing else — no markdown, no commentary:
{
  "passage": "...",
  "questions": [
    {
      "category": "reading",
      "prompt_text": "...",
      "options": {"A": "...", "B": "...", "C": "...", "D": "..."},
      "correct_answer": "C",
      "explanation": "..."
    }
  ]
}`, models.QuestionsPerPassage)
}

func WritingSystemPrompt() string {
	return `You are an expert SSAT question writer with years of experience at a test-preparation publisher. You write creative writing prompts for the SSAT writing sample.

WRITING PROMPT RULES:
- One or two sentences that invite a personal story or an imaginative narrative
- Open-ended: many different students could answer well from their own experience
- A story starter ("Write a story that begins with...") or a reflective prompt ("Describe a time when...")
- No topic that requires specialized knowledge, and nothing distressing for a school-age writer
- Include 2-4 short lowercase tags describing the prompt's themes

Respond with this exact JSON structure and nothing else — no markdown, no commentary:
{
  "prompt_text": "...",
  "tags": ["friendship", "choices"]
}`
}

// SystemPrompt returns the system prompt for a content type.
func SystemPrompt(ct models.ContentType) string {
	switch ct {
	case models.ContentReading:
		return ReadingSystemPrompt()
	case models.ContentWriting:
		return WritingSystemPrompt()
	default:
		return QuestionSystemPrompt(ct)
	}
}

// BuildUserPrompt parameterizes one generation unit: a single question, a
// single passage bundle, or a single writing prompt.
func BuildUserPrompt(ct models.ContentType, difficulty models.Difficulty, topic string) string {
	var b strings.Builder

	switch ct {
	case models.ContentReading:
		fmt.Fprintf(&b, "Generate one reading passage with exactly %d questions.\n", models.QuestionsPerPassage)
	case models.ContentWriting:
		b.WriteString("Generate one writing prompt.\n")
	default:
		fmt.Fprintf(&b, "Generate exactly one %s question.\n", ct)
	}

	fmt.Fprintf(&b, "\nDifficulty: %s\n", difficulty)
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}

	return b.String()
}
