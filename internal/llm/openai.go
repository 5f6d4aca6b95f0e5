package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openaiModels maps friendly names to OpenAI model IDs.
var openaiModels = map[string]string{
	"gpt-4o":      "gpt-4o",
	"gpt-4o-mini": "gpt-4o-mini",
}

// OpenAIProvider implements Provider using the OpenAI SDK.
// It also supports OpenRouter and other OpenAI-compatible APIs via BaseURL.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	client := openai.NewClientWithConfig(config)
	model := resolveModel(cfg.Model, openaiModels)

	return &OpenAIProvider{
		client: client,
		model:  model,
	}, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	messages := buildOpenAIMessages(req)

	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}

	// Strict mode answers optional fields with null, so replies are
	// checked against the strict variant rather than the original.
	var schema *Schema
	if req.Schema != nil {
		schema = &Schema{
			Name:        req.Schema.Name + "-strict",
			Description: req.Schema.Description,
			Definition:  strictSchema(req.Schema.Definition),
		}
		format, err := strictResponseFormat(req.Schema.Name, schema)
		if err != nil {
			return nil, err
		}
		chatReq.ResponseFormat = format
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, emptyContent("no choices in OpenAI response")
	}

	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, &ErrInvalidResponse{
			Kind: FailureRefused,
			Err:  fmt.Errorf("model refused: %s", choice.Message.Refusal),
		}
	}

	content := json.RawMessage(choice.Message.Content)
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}

	if err := validateResponse(schema, content); err != nil {
		return nil, err
	}

	return &Response{
		Content: content,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      resp.Model,
		StopReason: "end",
	}, nil
}

// strictResponseFormat builds a json_schema response format named name with
// strict mode on. s must already be in strict form.
func strictResponseFormat(name string, s *Schema) (*openai.ChatCompletionResponseFormat, error) {
	schemaBytes, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
		JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
			Name:        name,
			Description: s.Description,
			Schema:      json.RawMessage(schemaBytes),
			Strict:      true,
		},
	}, nil
}

// strictSchema returns a copy of def that strict mode accepts. Every object
// is closed and lists all of its properties as required; properties that
// were optional become nullable instead. Array length and integer bounds
// are restated in the description so that models which ignore the
// keywords still see them. The input is not modified.
func strictSchema(def map[string]any) map[string]any {
	out := make(map[string]any, len(def))
	for k, v := range def {
		out[k] = v
	}

	if props, ok := def["properties"].(map[string]any); ok {
		required := map[string]bool{}
		switch rs := def["required"].(type) {
		case []any:
			for _, r := range rs {
				if name, ok := r.(string); ok {
					required[name] = true
				}
			}
		case []string:
			for _, name := range rs {
				required[name] = true
			}
		}

		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)

		strictProps := make(map[string]any, len(props))
		allRequired := make([]any, 0, len(names))
		for _, name := range names {
			prop, ok := props[name].(map[string]any)
			if !ok {
				strictProps[name] = props[name]
				allRequired = append(allRequired, name)
				continue
			}
			prop = strictSchema(prop)
			if !required[name] {
				if t, ok := prop["type"].(string); ok {
					prop["type"] = []any{t, "null"}
				}
			}
			strictProps[name] = prop
			allRequired = append(allRequired, name)
		}

		out["properties"] = strictProps
		out["required"] = allRequired
		out["additionalProperties"] = false
	}

	if items, ok := def["items"].(map[string]any); ok {
		out["items"] = strictSchema(items)
	}

	if hint := boundsHint(def); hint != "" {
		if desc, _ := def["description"].(string); desc != "" {
			out["description"] = desc + " " + hint
		} else {
			out["description"] = hint
		}
	}

	return out
}

// boundsHint describes array length and numeric range keywords in prose.
func boundsHint(def map[string]any) string {
	minItems, hasMinItems := schemaInt(def["minItems"])
	maxItems, hasMaxItems := schemaInt(def["maxItems"])
	minimum, hasMin := schemaInt(def["minimum"])
	maximum, hasMax := schemaInt(def["maximum"])

	switch {
	case hasMinItems && hasMaxItems && minItems == maxItems:
		return fmt.Sprintf("Exactly %d items.", minItems)
	case hasMinItems && hasMaxItems:
		return fmt.Sprintf("Between %d and %d items.", minItems, maxItems)
	case hasMin && hasMax:
		return fmt.Sprintf("Value from %d to %d.", minimum, maximum)
	}
	return ""
}

func schemaInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func (p *OpenAIProvider) ModelID() string {
	return p.model
}

func buildOpenAIMessages(req Request) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage

	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	for _, m := range req.Messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	return messages
}

// mapOpenAIError converts SDK errors. A 400 naming response_format means
// the strict schema was rejected, which no retry can fix.
func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return &ErrRateLimit{Err: err}
		case apiErr.HTTPStatusCode == http.StatusBadRequest &&
			apiErr.Param != nil && strings.HasPrefix(*apiErr.Param, "response_format"):
			return &ErrInvalidResponse{Kind: FailureBadSchema, Err: err}
		}
	}
	return &ErrProviderUnavailable{Err: err}
}
