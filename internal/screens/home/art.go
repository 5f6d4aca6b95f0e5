package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/ui/theme"
)

const titleFull = ` ████████╗██████╗ ██╗██╗   ██╗██╗ █████╗ ███████╗
 ╚══██╔══╝██╔══██╗██║██║   ██║██║██╔══██╗╚══███╔╝
    ██║   ██████╔╝██║██║   ██║██║███████║  ███╔╝
    ██║   ██╔══██╗██║╚██╗ ██╔╝██║██╔══██║ ███╔╝
    ██║   ██║  ██║██║ ╚████╔╝ ██║██║  ██║███████╗
    ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝╚═╝  ╚═╝╚══════╝`

const titleCompact = "T · R · I · V · I · A · Z"

const mascot = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│  ?  │
└─────┘`

const mascotChampion = `┌─────┐
│ ★ ★ │
│  ▿  │
│  !  │
└─╥═╥─┘
  ╚═╝`

// contentWidth returns the uniform inner width used for all sections so
// the boxes line up.
func contentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(art))
}

// renderMascot shows the host. It wears a crown once a high score exists.
func renderMascot(best, cw int) string {
	art, fg := mascot, theme.Primary
	if best > 0 {
		art, fg = mascotChampion, theme.Accent
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(fg).Render(art))
}

// renderStatsBar shows the high score and where questions come from.
func renderStatsBar(best int, source string, cw int, compact bool) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	sourceStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

	var stats string
	if compact {
		stats = bestStyle.Render(fmt.Sprintf("★%d", best))
		if source != "" {
			stats += " " + sourceStyle.Render(source)
		}
	} else {
		stats = bestStyle.Render(fmt.Sprintf("★ HIGH SCORE %d", best))
		if source != "" {
			stats += "  " + sourceStyle.Render("? "+strings.ToUpper(source))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

const buttonWidth = 22

// renderButtons renders each menu item as a fixed-width button.
func renderButtons(labels []string, selected int, disabled map[int]bool, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Accent).
		BorderForeground(theme.Accent)
	normalBtn := base.Foreground(theme.Text).BorderForeground(theme.Border)
	disabledBtn := base.Foreground(theme.TextDim).BorderForeground(theme.Border)

	buttons := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderButtonsCompact renders menu items as plain lines for terminals
// where bordered buttons would overflow.
func renderButtonsCompact(labels []string, selected int, disabled map[int]bool, cw int) string {
	lines := make([]string, 0, len(labels))
	for i, label := range labels {
		switch {
		case disabled[i]:
			lines = append(lines, theme.Muted.Render("   "+label))
		case i == selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ "+label+" "))
		default:
			lines = append(lines, theme.Body.Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderCabinetFrame wraps content in a double border, centered both ways.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
