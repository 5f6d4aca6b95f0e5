package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	client := openai.NewClientWithConfig(config)

	return &OpenAIProvider{
		client: client,
		model:  "gpt-4o-mini",
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"question":"Which planet is known as the Red Planet?","correctAnswerIndex":1}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You write trivia questions.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate a question."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 {
		t.Fatalf("expected 40 input tokens, got %d", resp.Usage.InputTokens)
	}
	if resp.Usage.OutputTokens != 25 {
		t.Fatalf("expected 25 output tokens, got %d", resp.Usage.OutputTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "tokens",
				"message": "Rate limit exceeded",
				"code":    "rate_limit_exceeded",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "server_error",
				"message": "Internal server error",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "test"}},
		MaxTokens: 100,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if p.ModelID() != "gpt-4o-mini" {
		t.Fatalf("expected 'gpt-4o-mini', got %q", p.ModelID())
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	// Verify that the provider can be created with a custom BaseURL.
	cfg := OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	}
	p, err := NewOpenAIProvider(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "gpt-4o" {
		t.Fatalf("expected 'gpt-4o', got %q", p.ModelID())
	}
}

// chatReply writes a one-choice chat completion.
func chatReply(w http.ResponseWriter, message map[string]any, finish string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{"index": 0, "message": message, "finish_reason": finish},
		},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
}

func TestOpenAIProvider_SendsStrictQuestionSchema(t *testing.T) {
	var sent struct {
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name        string         `json:"name"`
				Description string         `json:"description"`
				Strict      bool           `json:"strict"`
				Schema      map[string]any `json:"schema"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	handler := func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		chatReply(w, map[string]any{
			"role":    "assistant",
			"content": `{"question":"2+2?","options":["1","2","3","4"],"correctAnswerIndex":3,"explanation":null}`,
		}, "stop")
	}

	p := newTestOpenAIProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Subject: Mathematics"}},
		Schema:   questionShape(),
	})
	require.NoError(t, err)
	assert.Equal(t, "end", resp.StopReason)

	format := sent.ResponseFormat
	assert.Equal(t, "json_schema", format.Type)
	assert.Equal(t, "test-question", format.JSONSchema.Name)
	assert.Equal(t, "A multiple-choice question", format.JSONSchema.Description)
	assert.True(t, format.JSONSchema.Strict)

	schema := format.JSONSchema.Schema
	assert.Equal(t, false, schema["additionalProperties"])
	assert.ElementsMatch(t,
		[]any{"correctAnswerIndex", "explanation", "options", "question"},
		schema["required"])

	props := schema["properties"].(map[string]any)
	options := props["options"].(map[string]any)
	assert.Equal(t, float64(4), options["minItems"])
	assert.Equal(t, float64(4), options["maxItems"])
	assert.Equal(t, "Exactly 4 items.", options["description"])

	index := props["correctAnswerIndex"].(map[string]any)
	assert.Equal(t, "integer", index["type"])
	assert.Equal(t, "Value from 0 to 3.", index["description"])

	explanation := props["explanation"].(map[string]any)
	assert.Equal(t, []any{"string", "null"}, explanation["type"])
}

func TestStrictSchema_LeavesInputUntouched(t *testing.T) {
	def := questionShape().Definition
	strictSchema(def)

	assert.Equal(t, []any{"question", "options", "correctAnswerIndex"}, def["required"])
	explanation := def["properties"].(map[string]any)["explanation"].(map[string]any)
	assert.Equal(t, "string", explanation["type"])
	assert.NotContains(t, def["properties"].(map[string]any)["options"], "description")
}

func TestOpenAIProvider_ReplyFailures(t *testing.T) {
	tests := []struct {
		name    string
		message map[string]any
		finish  string
		check   func(t *testing.T, err error)
	}{
		{
			name:    "empty content",
			message: map[string]any{"role": "assistant", "content": ""},
			finish:  "stop",
			check: func(t *testing.T, err error) {
				assert.Equal(t, FailureEmptyContent, invalidResponse(t, err).Kind)
				assert.True(t, RetryableResponse(err))
			},
		},
		{
			name:    "three options",
			message: map[string]any{"role": "assistant", "content": `{"question":"q","options":["a","b","c"],"correctAnswerIndex":0}`},
			finish:  "stop",
			check: func(t *testing.T, err error) {
				inv := invalidResponse(t, err)
				assert.Equal(t, FailureSchemaMismatch, inv.Kind)
				assert.Equal(t, "/options", inv.Field)
			},
		},
		{
			name:    "refusal",
			message: map[string]any{"role": "assistant", "content": "", "refusal": "I can't help with that."},
			finish:  "stop",
			check: func(t *testing.T, err error) {
				assert.Equal(t, FailureRefused, invalidResponse(t, err).Kind)
				assert.False(t, RetryableResponse(err))
			},
		},
		{
			name:    "truncated",
			message: map[string]any{"role": "assistant", "content": `{"question":"q","opt`},
			finish:  "length",
			check: func(t *testing.T, err error) {
				var maxTok *ErrMaxTokensExceeded
				require.True(t, errors.As(err, &maxTok), "got %T", err)
				assert.Equal(t, `{"question":"q","opt`, string(maxTok.Content))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
				chatReply(w, tt.message, tt.finish)
			})
			_, err := p.Generate(context.Background(), Request{
				Messages: []Message{{Role: RoleUser, Content: "Subject: Geography"}},
				Schema:   questionShape(),
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestOpenAIProvider_RejectedSchemaNotRetryable(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "invalid_request_error",
				"message": "Invalid schema for response_format 'test-question'",
				"param":   "response_format",
			},
		})
	}

	p := newTestOpenAIProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "test"}},
		Schema:   questionShape(),
	})
	require.Error(t, err)
	assert.Equal(t, FailureBadSchema, invalidResponse(t, err).Kind)
	assert.False(t, RetryableResponse(err))
}
