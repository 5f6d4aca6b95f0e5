package trivia

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/triviaz/internal/llm"
)

// Source produces raw questions. Results are validated by the Provider.
type Source interface {
	// Generate returns one question for input or an error.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)

	// Name identifies the source in logs and round events.
	Name() string
}

// GenerateInput holds the context for one question request.
type GenerateInput struct {
	// Subject is the subject the question should cover.
	Subject string

	// PriorQuestions holds the text of recently served questions, oldest
	// first. Sources that can avoid repeats use it.
	PriorQuestions []string
}

// LLMGenerator implements Source using an LLM provider.
type LLMGenerator struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
	maxPrior    int
}

// LLMOption customizes an LLMGenerator.
type LLMOption func(*LLMGenerator)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) LLMOption {
	return func(g *LLMGenerator) { g.temperature = t }
}

// WithMaxTokens sets the response token budget.
func WithMaxTokens(n int) LLMOption {
	return func(g *LLMGenerator) { g.maxTokens = n }
}

// WithMaxPriorQuestions caps how many prior questions go into the prompt.
func WithMaxPriorQuestions(n int) LLMOption {
	return func(g *LLMGenerator) { g.maxPrior = n }
}

// NewLLMGenerator creates an LLM-backed source. Temperature defaults to 0.8
// for variety between rounds.
func NewLLMGenerator(provider llm.Provider, opts ...LLMOption) *LLMGenerator {
	g := &LLMGenerator{
		provider:    provider,
		maxTokens:   512,
		temperature: 0.8,
		maxPrior:    10,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Subject            string   `json:"subject"`
	Explanation        string   `json:"explanation"`
}

func (g *LLMGenerator) Name() string {
	return SourceLLM + ":" + g.provider.ModelID()
}

// Generate produces a single question for the given input.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithSubject(llm.WithPurpose(ctx, llm.PurposeQuestion), input.Subject)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.maxPrior)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		kind := llm.FailureMalformedJSON
		if len(bytes.TrimSpace(resp.Content)) == 0 {
			kind = llm.FailureEmptyContent
		}
		return nil, fmt.Errorf("failed to parse LLM response: %w", &llm.ErrInvalidResponse{
			Kind:    kind,
			Content: resp.Content,
			Err:     err,
		})
	}

	subject := raw.Subject
	if subject == "" {
		subject = input.Subject
	}

	return &Question{
		Text:         raw.Question,
		Options:      raw.Options,
		CorrectIndex: raw.CorrectAnswerIndex,
		Subject:      subject,
		Explanation:  raw.Explanation,
		Source:       SourceLLM,
	}, nil
}
