package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/game"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	st := s.ctrl.State()
	switch st.Phase {
	case game.PhaseLoading:
		return s.renderLoading(st, width)
	case game.PhasePlaying:
		return s.renderPlaying(st, width)
	case game.PhaseGameOver:
		return renderGameOver(st, width)
	default:
		return ""
	}
}

// renderStatus renders the score, lives and round line shared by the
// loading and playing views.
func renderStatus(st game.State, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("  Score %d", st.Score))
	middle := components.Hearts(st.Lives, game.StartingLives)
	right := theme.Muted.Render(fmt.Sprintf("Round %d  ", st.Round))

	gap := max((width-lipgloss.Width(left)-lipgloss.Width(middle)-lipgloss.Width(right))/2, 1)
	line := left + strings.Repeat(" ", gap) + middle + strings.Repeat(" ", gap) + right

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")
	return b.String()
}

func (s *QuizScreen) renderLoading(st game.State, width int) string {
	var b strings.Builder
	b.WriteString(renderStatus(st, width))
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		s.spinner.View()+" Fetching a question..."))
	return b.String()
}

func (s *QuizScreen) renderPlaying(st game.State, width int) string {
	q := st.Question
	textWidth := min(width-8, 70)

	var b strings.Builder
	b.WriteString(renderStatus(st, width))
	b.WriteString("\n")

	if q.Subject != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Badge.Render(q.Subject)))
		b.WriteString("\n\n")
	}

	question := lipgloss.NewStyle().
		Width(textWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))

	if st.Selection.IsChosen() {
		b.WriteString("\n")
		b.WriteString(renderFeedback(st, width, textWidth))
	}
	return b.String()
}

// renderFeedback renders the verdict, the explanation and what Enter does
// next.
func renderFeedback(st game.State, width, textWidth int) string {
	q := st.Question

	var b strings.Builder
	if st.Feedback == game.FeedbackCorrect {
		b.WriteString(layout.Centered(theme.Correct, width,
			fmt.Sprintf("Correct! +%d", game.PointsPerCorrect)))
	} else {
		b.WriteString(layout.Centered(theme.Incorrect, width, "Not quite"))
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Muted, width,
			fmt.Sprintf("The answer was %s", q.CorrectOption())))
	}
	b.WriteString("\n\n")

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().Width(textWidth).Foreground(theme.Text).Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(exp)))
		b.WriteString("\n\n")
	}

	next := "Press Enter for the next question"
	if st.Lives == 0 {
		next = "Out of lives. Press Enter to see your score"
	}
	b.WriteString(layout.Centered(theme.Hint, width, next))
	return b.String()
}

func renderGameOver(st game.State, width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Title, width, "GAME OVER"))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(theme.Body.Bold(true), width,
		fmt.Sprintf("Final score: %d", st.Score)))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent), width,
		fmt.Sprintf("High score: %d", st.HighScore)))
	b.WriteString("\n")

	if st.NewHighScore {
		b.WriteString("\n")
		b.WriteString(layout.Centered(theme.Correct, width, "★ New high score! ★"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Muted, width,
		fmt.Sprintf("%d answered, %d correct", st.Answered, st.Correct)))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(theme.Hint, width, "Press Enter to play again or Esc for the menu"))
	return b.String()
}
