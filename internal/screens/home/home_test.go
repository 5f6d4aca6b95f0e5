package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/quiz"
	"github.com/abhisek/triviaz/internal/screens/reportcard"
	"github.com/abhisek/triviaz/internal/store"
)

type fixedScores struct {
	best int
	err  error
}

func (f *fixedScores) Best(context.Context) (int, error)         { return f.best, f.err }
func (f *fixedScores) Record(context.Context, int) (bool, error) { return false, nil }
func (f *fixedScores) Reset(context.Context) error               { return nil }

type nopEvents struct {
	store.EventRepo
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyDown} }

func TestHome_LoadsBestOnInit(t *testing.T) {
	h := New(Deps{Scores: &fixedScores{best: 120}, Source: "opentdb"})

	cmd := h.Init()
	require.NotNil(t, cmd)

	_, next := h.Update(cmd())
	assert.Equal(t, 120, h.Best())
	require.NotNil(t, next)
	assert.Equal(t, screen.HighScoreMsg{Score: 120}, next())

	view := h.View(120, 40)
	assert.Contains(t, view, "HIGH SCORE 120")
	assert.Contains(t, view, "OPENTDB")
}

func TestHome_LoadErrorKeepsPreviousBest(t *testing.T) {
	scores := &fixedScores{best: 30}
	h := New(Deps{Scores: scores})
	h.Update(h.Init()())
	require.Equal(t, 30, h.Best())

	scores.err = errors.New("disk on fire")
	_, cmd := h.Update(h.Resume()())
	assert.Nil(t, cmd)
	assert.Equal(t, 30, h.Best())
}

func TestHome_NoScoresRepo(t *testing.T) {
	h := New(Deps{})
	assert.Nil(t, h.Init())
	assert.Nil(t, h.Resume())
	assert.Equal(t, 0, h.Best())
}

func TestHome_HighScoreMsgOnlyRaises(t *testing.T) {
	h := New(Deps{})
	h.Update(screen.HighScoreMsg{Score: 40})
	h.Update(screen.HighScoreMsg{Score: 20})
	assert.Equal(t, 40, h.Best())
}

func TestHome_StartGamePushesQuiz(t *testing.T) {
	h := New(Deps{Scores: &fixedScores{best: 70}, Events: nopEvents{}})
	h.Update(h.Init()())

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	q, ok := push.Screen.(*quiz.QuizScreen)
	require.True(t, ok)
	assert.Equal(t, 70, q.State().HighScore)
}

func TestHome_ReportCard(t *testing.T) {
	h := New(Deps{Events: nopEvents{}})

	h.Update(down())
	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &reportcard.ReportCardScreen{}, push.Screen)
}

func TestHome_ReportCardDisabledWithoutEvents(t *testing.T) {
	h := New(Deps{})

	h.Update(down()) // skips the disabled item
	assert.Equal(t, itemExit, h.menu.Selected)

	_, cmd := h.Update(enter())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHome_CompactView(t *testing.T) {
	h := New(Deps{})
	view := h.View(70, 16)
	assert.Contains(t, view, "T · R · I · V · I · A · Z")
	assert.Contains(t, view, "START GAME")
}
