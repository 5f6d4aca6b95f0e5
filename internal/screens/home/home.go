// Package home is the start screen: title, high score and the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/quiz"
	"github.com/abhisek/triviaz/internal/screens/reportcard"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
)

const (
	itemStart = iota
	itemReportCard
	itemExit
)

var menuLabels = []string{"START GAME", "REPORT CARD", "EXIT GAME"}

// Deps are the collaborators passed on to the screens the menu opens.
type Deps struct {
	Questions quiz.QuestionFetcher
	Scores    store.HighScoreRepo
	Events    store.EventRepo

	// Source names where questions come from, shown under the title.
	Source string
}

type bestLoadedMsg struct {
	Score int
	Err   error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	disabled map[int]bool
	best     int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. The high score is loaded on Init.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:     deps,
		disabled: map[int]bool{itemReportCard: deps.Events == nil},
	}

	items := make([]components.MenuItem, len(menuLabels))
	for i, label := range menuLabels {
		items[i] = components.MenuItem{Label: label, Disabled: h.disabled[i]}
	}
	items[itemStart].Action = h.startGame
	items[itemReportCard].Action = func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: reportcard.New(deps.Events)}
		}
	}
	items[itemExit].Action = func() tea.Cmd {
		return tea.Quit
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadBest()
}

// Resume reloads the high score when a game screen is popped.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadBest()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// Best returns the high score currently shown.
func (h *HomeScreen) Best() int {
	return h.best
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bestLoadedMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Msg("failed to load high score")
			return h, nil
		}
		h.best = msg.Score
		return h, func() tea.Msg { return screen.HighScoreMsg{Score: msg.Score} }

	case screen.HighScoreMsg:
		h.best = max(h.best, msg.Score)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back the header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascot(h.best, cw))
	}
	sections = append(sections, renderStatsBar(h.best, h.deps.Source, cw, compact))

	if height < 18 {
		sections = append(sections, renderButtonsCompact(menuLabels, h.menu.Selected, h.disabled, cw))
	} else {
		sections = append(sections, renderButtons(menuLabels, h.menu.Selected, h.disabled, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) startGame() tea.Cmd {
	deps := quiz.Deps{
		Questions: h.deps.Questions,
		Scores:    h.deps.Scores,
		Events:    h.deps.Events,
		Best:      h.best,
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(deps)}
	}
}

func (h *HomeScreen) loadBest() tea.Cmd {
	scores := h.deps.Scores
	if scores == nil {
		return nil
	}
	return func() tea.Msg {
		best, err := scores.Best(context.Background())
		return bestLoadedMsg{Score: best, Err: err}
	}
}
