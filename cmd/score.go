package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show or reset the high score",
}

var scoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the high score",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		best, err := s.HighScores().Best(cmd.Context())
		if err != nil {
			return fmt.Errorf("read high score: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "High score: %d\n", best)
		return nil
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the high score",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		s, err := openStoreFromFlags(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.HighScores().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset high score: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "High score cleared.")
		return nil
	},
}

func init() {
	scoreResetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")

	scoreCmd.AddCommand(scoreShowCmd)
	scoreCmd.AddCommand(scoreResetCmd)
}
