package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/triviaz/internal/config"
	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/opentdb"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/trivia"
)

// openTDBTimeout bounds one Open Trivia DB request.
const openTDBTimeout = 10 * time.Second

// buildSource returns the configured question source. When the LLM source
// is selected but no provider can be built, a note goes to warn and Open
// Trivia DB is used instead. eventRepo may be nil.
func buildSource(ctx context.Context, cfg *config.Config, eventRepo store.EventRepo, warn io.Writer) trivia.Source {
	if cfg.Source == config.SourceLLM {
		provider, err := llm.NewProvider(ctx, cfg.LLM, eventRepo)
		if err == nil {
			return trivia.NewLLMGenerator(provider)
		}
		log.Warn().Err(err).Msg("LLM provider not configured, using Open Trivia DB")
		fmt.Fprintln(warn, "LLM provider not configured:", err)
		fmt.Fprintln(warn, "Using questions from the Open Trivia Database instead.")
	}

	client := opentdb.NewClient(&http.Client{Timeout: openTDBTimeout})
	return trivia.NewOpenTDBSource(client, cfg.Trivia.Difficulty)
}
