package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/sciquiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a single question for the given parameters.
// One request, no retries: any failure surfaces to the caller as-is.
func (g *LLMGenerator) Generate(ctx context.Context, p Params) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrMalformed{
			Content: resp.Content,
			Err:     fmt.Errorf("parse question payload: %w", err),
		}
	}

	// The question is tagged with the requested topic and difficulty;
	// the remote service is not trusted to echo these back.
	q := &Question{
		Text:          strings.TrimSpace(raw.Question),
		Options:       trimAll(raw.Options),
		CorrectAnswer: raw.CorrectAnswer,
		Explanation:   strings.TrimSpace(raw.Explanation),
		Topic:         p.Topic,
		Difficulty:    p.Difficulty,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

func trimAll(opts []string) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = strings.TrimSpace(o)
	}
	return out
}
