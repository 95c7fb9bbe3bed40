package quiz

import "context"

// Generator produces science questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given parameters.
	// Returns a validated Question or an error. Exactly one request is
	// made per call; failures surface immediately without retry.
	Generate(ctx context.Context, p Params) (*Question, error)
}
