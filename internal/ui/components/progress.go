package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

// AccuracyBar shows a correct/answered ratio as a horizontal bar.
type AccuracyBar struct {
	Label    string
	Correct  int
	Answered int
	Width    int
}

// Ratio returns Correct/Answered clamped to [0, 1].
func (a AccuracyBar) Ratio() float64 {
	if a.Answered <= 0 {
		return 0
	}
	return min(max(float64(a.Correct)/float64(a.Answered), 0), 1)
}

// View renders "label  ██████░░░░  7/10  70%".
func (a AccuracyBar) View() string {
	var result string
	if a.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.Text).Render(a.Label) + "  "
	}

	counts := fmt.Sprintf("  %d/%d  %3d%%", a.Correct, a.Answered, int(a.Ratio()*100))
	barWidth := max(a.Width-lipgloss.Width(result)-len(counts), 4)

	filled := min(int(float64(barWidth)*a.Ratio()), barWidth)
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		theme.Muted.Render(counts)
	return result
}
