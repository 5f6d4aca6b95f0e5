package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/app"
	"github.com/abhisek/triviaz/internal/logging"
	"github.com/abhisek/triviaz/internal/trivia"
)

// runApp loads config, opens the store, builds the question provider and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logFile.Close()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	src := buildSource(ctx, cfg, eventRepo, os.Stderr)
	provider := trivia.NewProvider(src, cfg.TriviaProviderConfig())

	log.Info().
		Str("source", src.Name()).
		Str("config", cfg.File).
		Msg("triviaz starting")

	return app.Run(app.Options{
		Questions: provider,
		Scores:    st.HighScores(),
		Events:    eventRepo,
		Source:    src.Name(),
	})
}
