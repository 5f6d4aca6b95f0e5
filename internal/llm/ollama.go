package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaProvider implements Provider against a local Ollama server through
// langchaingo. Ollama has no native JSON-schema constraint, so the schema is
// appended to the system prompt, JSON mode is requested, and the reply is
// validated like every other backend.
type OllamaProvider struct {
	client *ollama.LLM
	model  string
}

// NewOllamaProvider creates a provider for the given Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	client, err := ollama.New(
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithHTTPClient(&http.Client{
			Transport: &http.Transport{
				MaxIdleConns:    4,
				IdleConnTimeout: 30 * time.Second,
			},
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}

	return &OllamaProvider{client: client, model: cfg.Model}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	opts := []llms.CallOption{
		llms.WithTemperature(req.Temperature),
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Schema != nil {
		opts = append(opts, llms.WithJSONMode())
	}

	messages, err := buildOllamaMessages(req)
	if err != nil {
		return nil, err
	}

	result, err := p.client.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, mapOllamaError(err)
	}
	if len(result.Choices) == 0 {
		return nil, emptyContent("no choices in Ollama response")
	}

	choice := result.Choices[0]
	content := json.RawMessage(strings.TrimSpace(choice.Content))

	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content:    content,
		Usage:      ollamaUsage(choice.GenerationInfo),
		Model:      p.model,
		StopReason: mapOllamaStopReason(choice.StopReason),
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}

func buildOllamaMessages(req Request) ([]llms.MessageContent, error) {
	system := req.System
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		system = strings.TrimSpace(system + "\n\nRespond with a single JSON object matching this JSON Schema:\n" + string(def))
	}

	var messages []llms.MessageContent
	if system != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, system))
	}
	for _, m := range req.Messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, m.Content))
	}
	return messages, nil
}

// ollamaUsage reads the token counters langchaingo puts in GenerationInfo.
func ollamaUsage(info map[string]any) Usage {
	in := intFromInfo(info, "PromptTokens")
	out := intFromInfo(info, "CompletionTokens")
	total := intFromInfo(info, "TotalTokens")
	if total == 0 {
		total = in + out
	}
	return Usage{InputTokens: in, OutputTokens: out, TotalTokens: total}
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func mapOllamaStopReason(reason string) string {
	switch reason {
	case "length":
		return "max_tokens"
	default:
		return "end"
	}
}

func mapOllamaError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return &ErrProviderUnavailable{Err: err}
}
