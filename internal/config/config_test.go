package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/trivia"
)

// isolate clears every variable Load consults so the host environment does
// not leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	for _, k := range []string{
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
		"TRIVIAZ_SOURCE", "TRIVIAZ_DB", "TRIVIAZ_LOG_LEVEL", "TRIVIAZ_LOG_FILE",
		"TRIVIAZ_LLM_PROVIDER", "TRIVIAZ_LLM_GEMINI_API_KEY", "TRIVIAZ_LLM_TIMEOUT",
		"TRIVIAZ_TRIVIA_MAX_ATTEMPTS", "TRIVIAZ_TRIVIA_DIFFICULTY", "TRIVIAZ_TRIVIA_SUBJECTS",
	} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceLLM, cfg.Source)
	assert.Empty(t, cfg.DBPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "state", "triviaz", "triviaz.log"), cfg.Log.File)
	assert.Equal(t, llm.ProviderGemini, cfg.LLM.Provider)
	assert.False(t, cfg.LLM.HasCredentials())
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, trivia.DefaultSubjects, cfg.Trivia.Subjects)
	assert.Equal(t, 2, cfg.Trivia.MaxAttempts)
	assert.Empty(t, cfg.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("TRIVIAZ_SOURCE", "OpenTDB")
	t.Setenv("TRIVIAZ_DB", "/tmp/x.db")
	t.Setenv("TRIVIAZ_LOG_LEVEL", "debug")
	t.Setenv("TRIVIAZ_LLM_PROVIDER", "gemini")
	t.Setenv("TRIVIAZ_LLM_GEMINI_API_KEY", "g-key")
	t.Setenv("TRIVIAZ_LLM_TIMEOUT", "5s")
	t.Setenv("TRIVIAZ_TRIVIA_DIFFICULTY", "hard")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, SourceOpenTDB, cfg.Source)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "g-key", cfg.LLM.Gemini.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "hard", cfg.Trivia.Difficulty)
	assert.True(t, cfg.LLM.HasCredentials())
}

func TestLoad_SubjectsFromEnvSplitOnCommas(t *testing.T) {
	isolate(t)
	t.Setenv("TRIVIAZ_TRIVIA_SUBJECTS", "Geography, History,,Space Exploration")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Geography", "History", "Space Exploration"}, cfg.Trivia.Subjects)
	assert.Equal(t, cfg.Trivia.Subjects, cfg.TriviaProviderConfig().Subjects)
}

func TestLoad_DiscoversProviderKey(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_ExplicitProviderSkipsDiscovery(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("TRIVIAZ_LLM_PROVIDER", "ollama")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, llm.ProviderOllama, cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Ollama.ServerURL)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "custom.yaml", `
source: opentdb
log:
  level: warn
  file: /tmp/triviaz-test.log
llm:
  provider: openai
  openai:
    api_key: sk-test
    model: gpt-4o
  retry:
    max_attempts: 5
trivia:
  subjects: ["Geography", "Mathematics"]
  max_attempts: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, SourceOpenTDB, cfg.Source)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/triviaz-test.log", cfg.Log.File)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 5, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, []string{"Geography", "Mathematics"}, cfg.Trivia.Subjects)

	tc := cfg.TriviaProviderConfig()
	assert.Equal(t, []string{"Geography", "Mathematics"}, tc.Subjects)
	assert.Equal(t, 3, tc.MaxAttempts)
	assert.Equal(t, 30*time.Second, tc.Timeout)
}

func TestLoad_ConfigFileFromXDG(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, filepath.Join("triviaz", "config.yaml"), "log:\n  level: error\n")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "triviaz", "config.yaml"), cfg.File)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "c.yaml", "log:\n  level: warn\n")
	t.Setenv("TRIVIAZ_LOG_LEVEL", "trace")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Source: SourceLLM,
			Log:    LogConfig{Level: "info"},
			LLM:    llm.DefaultConfig(),
			Trivia: TriviaConfig{MaxAttempts: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"opentdb", func(c *Config) { c.Source = SourceOpenTDB }, false},
		{"unknown source", func(c *Config) { c.Source = "wikipedia" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"zero attempts", func(c *Config) { c.Trivia.MaxAttempts = 0 }, true},
		{"negative timeout", func(c *Config) { c.LLM.Timeout = -time.Second }, true},
		{"bad difficulty", func(c *Config) { c.Trivia.Difficulty = "extreme" }, true},
		{"no credentials is fine", func(c *Config) { c.LLM.Provider = llm.ProviderOpenAI }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
