package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantModel string
		wantErr   bool
	}{
		{
			name:      "vendor model passed through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantModel: "google/gemini-2.0-flash-exp",
		},
		{
			name:      "friendly names are not mapped",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "gpt-4o-mini"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:    "missing key",
			cfg:     OpenRouterConfig{Model: "meta-llama/llama-3-8b"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, p.ModelID())
		})
	}
}

func TestOpenRouterProvider_QuestionRoundTrip(t *testing.T) {
	var path string
	var strict bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		var body struct {
			ResponseFormat struct {
				JSONSchema struct {
					Strict bool `json:"strict"`
				} `json:"json_schema"`
			} `json:"response_format"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		strict = body.ResponseFormat.JSONSchema.Strict

		chatReply(w, map[string]any{
			"role":    "assistant",
			"content": `{"question":"Which ocean is the largest?","options":["Atlantic","Indian","Arctic","Pacific"],"correctAnswerIndex":3,"explanation":null}`,
		}, "stop")
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "meta-llama/llama-3-8b",
		BaseURL: server.URL + "/api/v1",
	})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "Subject: Geography"}},
		Schema:   questionShape(),
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/chat/completions", path)
	assert.True(t, strict)

	var q struct {
		Options            []string `json:"options"`
		CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	}
	require.NoError(t, json.Unmarshal(resp.Content, &q))
	assert.Len(t, q.Options, 4)
	assert.Equal(t, "Pacific", q.Options[q.CorrectAnswerIndex])
}
