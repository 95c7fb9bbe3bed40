package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a science quiz writer creating multiple-choice questions for curious adults.

Rules:
- Generate a single multiple-choice question for the given topic and difficulty.
- Difficulty runs from 1 (common knowledge) to 10 (university level).
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible and reflect common misconceptions, not random facts.
- correctAnswer is the zero-based index of the correct option.
- The question must be self-contained: no references to images, charts, or earlier questions.
- The explanation should teach: one or two sentences on why the correct answer is right.
- Respond with a single JSON object only. No markdown fences, no commentary.`

// buildUserMessage constructs the user message from the request parameters.
func buildUserMessage(p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", p.Topic.Display())
	fmt.Fprintf(&b, "Difficulty: %d of %d\n", p.Difficulty, MaxDifficulty)

	return b.String()
}
