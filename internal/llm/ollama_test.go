package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestNewOllamaProvider(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{ServerURL: "http://localhost:11434", Model: "llama3.2"})
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", p.ModelID())

	_, err = NewOllamaProvider(OllamaConfig{Model: "llama3.2"})
	assert.Error(t, err)

	_, err = NewOllamaProvider(OllamaConfig{ServerURL: "http://localhost:11434"})
	assert.Error(t, err)
}

func TestBuildOllamaMessages_SchemaInSystemPrompt(t *testing.T) {
	msgs, err := buildOllamaMessages(Request{
		System:   "You write trivia questions.",
		Messages: []Message{{Role: RoleUser, Content: "Subject: Geography"}},
		Schema: &Schema{
			Name:       "test-object",
			Definition: map[string]any{"type": "object"},
		},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, llms.ChatMessageTypeSystem, msgs[0].Role)
	sys, ok := msgs[0].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, sys.Text, "You write trivia questions.")
	assert.Contains(t, sys.Text, `{"type":"object"}`)

	assert.Equal(t, llms.ChatMessageTypeHuman, msgs[1].Role)
}

func TestBuildOllamaMessages_NoSystem(t *testing.T) {
	msgs, err := buildOllamaMessages(Request{
		Messages: []Message{
			{Role: RoleUser, Content: "q"},
			{Role: RoleAssistant, Content: "a"},
		},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, llms.ChatMessageTypeAI, msgs[1].Role)
}

func TestOllamaUsage(t *testing.T) {
	u := ollamaUsage(map[string]any{"PromptTokens": 12, "CompletionTokens": 30})
	assert.Equal(t, Usage{InputTokens: 12, OutputTokens: 30, TotalTokens: 42}, u)

	assert.Equal(t, Usage{}, ollamaUsage(nil))
	assert.Equal(t, "max_tokens", mapOllamaStopReason("length"))
	assert.Equal(t, "end", mapOllamaStopReason("stop"))
}
