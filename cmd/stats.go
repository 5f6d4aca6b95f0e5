package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/triviaz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent games and accuracy by subject",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		best, err := s.HighScores().Best(ctx)
		if err != nil {
			return fmt.Errorf("read high score: %w", err)
		}
		games, err := s.EventRepo().QueryGames(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query games: %w", err)
		}
		subjects, err := s.EventRepo().SubjectAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("query subject accuracy: %w", err)
		}

		printStats(cmd.OutOrStdout(), best, games, subjects)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent games to show")
}

func printStats(w io.Writer, best int, games []store.GameEvent, subjects []store.SubjectAccuracy) {
	fmt.Fprintf(w, "High score: %d\n\n", best)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games played yet.")
		return
	}

	fmt.Fprintln(w, "Recent Games")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	fmt.Fprintf(w, "%-19s  %6s  %8s  %8s  %s\n", "Finished", "Score", "Answered", "Correct", "Best")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, g := range games {
		star := ""
		if g.NewHighScore {
			star = "★"
		}
		fmt.Fprintf(w, "%-19s  %6d  %8d  %8d  %s\n",
			g.Timestamp.Local().Format("2006-01-02 15:04:05"), g.Score, g.Rounds, g.Correct, star)
	}

	if len(subjects) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Accuracy by Subject")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	fmt.Fprintf(w, "%-28s  %8s  %8s  %6s\n", "Subject", "Answered", "Correct", "%")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, sub := range subjects {
		fmt.Fprintf(w, "%-28s  %8d  %8d  %5.0f%%\n",
			truncate(sub.Subject, 28), sub.Answered, sub.Correct, sub.Ratio()*100)
	}
}
