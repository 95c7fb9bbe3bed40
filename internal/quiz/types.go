package quiz

// Difficulty bounds for question generation.
const (
	MinDifficulty = 1
	MaxDifficulty = 10
)

// OptionCount is the number of choices every question carries.
const OptionCount = 4

// ClampDifficulty forces n into the valid difficulty range.
func ClampDifficulty(n int) int {
	if n < MinDifficulty {
		return MinDifficulty
	}
	if n > MaxDifficulty {
		return MaxDifficulty
	}
	return n
}

// Question is a generated multiple-choice question, immutable once
// returned by a Generator.
type Question struct {
	// Text is the question prompt displayed to the player.
	Text string

	// Options holds exactly 4 answer choices in display order.
	Options []string

	// CorrectAnswer is the zero-based index of the correct option (0-3).
	CorrectAnswer int

	// Explanation is a brief justification shown after the answer is
	// revealed. Always present.
	Explanation string

	// Topic is the subject area this question was requested for. Set
	// from the request, never from the LLM response.
	Topic Topic

	// Difficulty is the requested difficulty (1-10). Set from the
	// request, never from the LLM response.
	Difficulty int
}

// Params holds the request parameters for one generated question.
type Params struct {
	Topic      Topic
	Difficulty int
}
