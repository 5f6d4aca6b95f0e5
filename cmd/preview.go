package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/game"
	"github.com/abhisek/triviaz/internal/logging"
	"github.com/abhisek/triviaz/internal/trivia"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play in the plain terminal without the TUI (no database)",
	Long: `Play a game line by line in the plain terminal.

This is a stateless developer tool: no database, no high score, no events.
Useful for evaluating question quality from a source or model.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("rounds", 0, "Stop after this many rounds (0 = until out of lives)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	rounds, _ := cmd.Flags().GetInt("rounds")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.SetupConsole(cfg.Log.Level, os.Stderr); err != nil {
		return err
	}

	ctx := cmd.Context()
	src := buildSource(ctx, cfg, nil, os.Stderr)
	provider := trivia.NewProvider(src, cfg.TriviaProviderConfig())

	fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n\n", src.Name())
	final := previewGame(ctx, provider, cmd.InOrStdin(), cmd.OutOrStdout(), rounds)

	fmt.Fprintf(cmd.OutOrStdout(), "── Game over: score %d, %d/%d correct ──\n",
		final.Score, final.Correct, final.Answered)
	return nil
}

// questionSource is the part of *trivia.Provider the preview needs.
type questionSource interface {
	FetchQuestion(ctx context.Context) trivia.Question
}

// previewGame plays rounds against in and out until lives run out, input
// closes or maxRounds answers were given (0 means no limit).
func previewGame(ctx context.Context, questions questionSource, in io.Reader, out io.Writer, maxRounds int) game.State {
	ctrl := game.New(0, nil)
	scanner := bufio.NewScanner(in)

	round, _ := ctrl.Start()
	for {
		q := questions.FetchQuestion(ctx)
		ctrl.Deliver(round, q)
		st := ctrl.State()

		fmt.Fprintf(out, "── Round %d  score %d  %s ──\n", st.Round, st.Score,
			components.Hearts(st.Lives, game.StartingLives))
		if q.Subject != "" {
			fmt.Fprintf(out, "[%s]\n", q.Subject)
		}
		fmt.Fprintln(out, q.Text)
		for i, opt := range q.Options {
			fmt.Fprintf(out, "  %s) %s\n", components.OptionLabels[i], opt)
		}

		choice, ok := readChoice(scanner, out, len(q.Options))
		if !ok {
			fmt.Fprintln(out, "\n(input closed)")
			return ctrl.State()
		}

		ctrl.Select(ctx, choice)
		st = ctrl.State()
		if st.Feedback == game.FeedbackCorrect {
			fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("✓ Correct! +%d", game.PointsPerCorrect)))
		} else {
			fmt.Fprintln(out, theme.Incorrect.Render("✗ Wrong.")+" Answer: "+q.CorrectOption())
		}
		if q.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", q.Explanation)
		}
		fmt.Fprintln(out)

		if maxRounds > 0 && st.Answered >= maxRounds {
			return st
		}

		next, _ := ctrl.Continue()
		if ctrl.State().Phase == game.PhaseGameOver {
			return ctrl.State()
		}
		round = next
	}
}

// readChoice prompts until a valid option is entered. It accepts 1-n and
// the option letters in either case.
func readChoice(scanner *bufio.Scanner, out io.Writer, n int) (int, bool) {
	for {
		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			return 0, false
		}
		if i, ok := parseChoice(scanner.Text(), n); ok {
			return i, true
		}
		fmt.Fprintf(out, "Enter 1-%d or %s-%s.\n", n,
			components.OptionLabels[0], components.OptionLabels[n-1])
	}
}

func parseChoice(s string, n int) (int, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		return i - 1, i >= 1 && i <= n
	}
	for i := 0; i < n; i++ {
		if s == components.OptionLabels[i] {
			return i, true
		}
	}
	return 0, false
}
