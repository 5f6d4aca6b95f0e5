package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	clearProviderEnv(t)

	base := DefaultConfig()
	cfg, ok := DiscoverConfig(base)
	assert.False(t, ok)
	assert.Equal(t, base, cfg)
}

func TestDiscoverConfig_Priority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")

	cfg, ok := DiscoverConfig(DefaultConfig())
	assert.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-oai", cfg.OpenAI.APIKey)
	assert.True(t, cfg.HasCredentials())

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok = DiscoverConfig(DefaultConfig())
	assert.True(t, ok)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestDiscoverConfig_KeepsBaseSettings(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "sk-or")

	base := DefaultConfig()
	base.OpenRouter.Model = "meta-llama/llama-3.1-8b-instruct"

	cfg, ok := DiscoverConfig(base)
	assert.True(t, ok)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", cfg.OpenRouter.Model)
}
