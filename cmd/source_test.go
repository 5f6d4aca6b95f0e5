package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/triviaz/internal/config"
	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/trivia"
)

func TestBuildSource(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		provider string
		wantType trivia.Source
		wantWarn bool
	}{
		{"llm with mock provider", config.SourceLLM, llm.ProviderMock, &trivia.LLMGenerator{}, false},
		{"llm without credentials", config.SourceLLM, llm.ProviderAnthropic, &trivia.OpenTDBSource{}, true},
		{"opentdb", config.SourceOpenTDB, llm.ProviderMock, &trivia.OpenTDBSource{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Source: tt.source, LLM: llm.DefaultConfig()}
			cfg.LLM.Provider = tt.provider

			var warn bytes.Buffer
			src := buildSource(context.Background(), cfg, nil, &warn)

			assert.IsType(t, tt.wantType, src)
			if tt.wantWarn {
				assert.Contains(t, warn.String(), "LLM provider not configured")
			} else {
				assert.Empty(t, warn.String())
			}
		})
	}
}
