// Package reportcard lists past games and per-subject accuracy.
package reportcard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// gameLimit caps how many past games are listed.
const gameLimit = 50

type tab int

const (
	tabGames tab = iota
	tabSubjects
)

type reportLoadedMsg struct {
	Games    []store.GameEvent
	Subjects []store.SubjectAccuracy
	Err      error
}

// ReportCardScreen shows finished games and subject accuracy.
type ReportCardScreen struct {
	eventRepo store.EventRepo
	games     []store.GameEvent
	subjects  []store.SubjectAccuracy
	tab       tab
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ReportCardScreen)(nil)
var _ screen.KeyHintProvider = (*ReportCardScreen)(nil)

// New creates a ReportCardScreen.
func New(eventRepo store.EventRepo) *ReportCardScreen {
	return &ReportCardScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *ReportCardScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		games, err := repo.QueryGames(ctx, store.QueryOpts{Limit: gameLimit})
		if err != nil {
			return reportLoadedMsg{Err: err}
		}
		subjects, err := repo.SubjectAccuracy(ctx)
		if err != nil {
			return reportLoadedMsg{Err: err}
		}
		return reportLoadedMsg{Games: games, Subjects: subjects}
	}
}

func (s *ReportCardScreen) Title() string {
	return "Report Card"
}

func (s *ReportCardScreen) KeyHints() []layout.KeyHint {
	if s.tab == tabSubjects {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Games"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Subjects"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReportCardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Games
			s.subjects = msg.Subjects
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.tab == tabGames {
				s.tab = tabSubjects
			} else {
				s.tab = tabGames
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		case "enter":
			if s.tab == tabGames && len(s.games) > 0 {
				s.expanded[s.selected] = !s.expanded[s.selected]
			}
		}
	}
	return s, nil
}

func (s *ReportCardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading report card...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTabs(s.tab, width))
	b.WriteString("\n\n")

	if s.tab == tabSubjects {
		b.WriteString(s.renderSubjects(width))
	} else {
		b.WriteString(s.renderGames(width))
	}
	return b.String()
}

func renderTabs(active tab, width int) string {
	label := func(t tab, name string) string {
		if t == active {
			return theme.Selected.Render("[ " + name + " ]")
		}
		return theme.Muted.Render("  " + name + "  ")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		label(tabGames, "Games")+"   "+label(tabSubjects, "Subjects"))
}

func (s *ReportCardScreen) renderGames(width int) string {
	if len(s.games) == 0 {
		return layout.Centered(theme.Hint, width, "No games yet. Start a game from the menu!")
	}

	var b strings.Builder
	for i, g := range s.games {
		prefix := "  "
		style := theme.Unselected
		if i == s.selected {
			prefix = "> "
			style = theme.Selected
		}

		star := ""
		if g.NewHighScore {
			star = "  ★"
		}
		line := fmt.Sprintf("%s%s  score %3d  %2d answered  %3.0f%% correct%s",
			prefix, g.Timestamp.Local().Format("Jan 02, 2006 15:04"),
			g.Score, g.Rounds, percent(g.Correct, g.Rounds), star)
		b.WriteString(layout.Centered(style, width, line))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d correct, %d wrong, best at the time %d",
				g.Correct, g.Rounds-g.Correct, g.HighScore)
			b.WriteString(layout.Centered(theme.Hint, width, detail))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (s *ReportCardScreen) renderSubjects(width int) string {
	if len(s.subjects) == 0 {
		return layout.Centered(theme.Hint, width, "No answers recorded yet.")
	}

	labelWidth := 0
	for _, sub := range s.subjects {
		labelWidth = max(labelWidth, lipgloss.Width(sub.Subject))
	}

	barWidth := min(width-8, 70)
	var b strings.Builder
	for _, sub := range s.subjects {
		bar := components.AccuracyBar{
			Label:    fmt.Sprintf("%-*s", labelWidth, sub.Subject),
			Correct:  sub.Correct,
			Answered: sub.Answered,
			Width:    barWidth,
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
