package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/screens/quiz"
)

type fixedScores struct{ best int }

func (f fixedScores) Best(context.Context) (int, error)         { return f.best, nil }
func (f fixedScores) Record(context.Context, int) (bool, error) { return false, nil }
func (f fixedScores) Reset(context.Context) error               { return nil }

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestApp_HeaderShowsHighScore(t *testing.T) {
	m := newAppModel(Options{Scores: fixedScores{best: 90}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	// home loads the best score and announces it
	m, cmd := update(t, m, m.Init()())
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, 90, m.best)
	out := m.render()
	assert.Contains(t, out, "Triviaz")
	assert.Contains(t, out, "★ Best 90")
	assert.Contains(t, out, "Navigate")
}

func TestApp_HighScoreOnlyRises(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, screen.HighScoreMsg{Score: 50})
	m, _ = update(t, m, screen.HighScoreMsg{Score: 20})
	assert.Equal(t, 50, m.best)
}

func TestApp_EscPopsToHome(t *testing.T) {
	m := newAppModel(Options{})
	m, _ = update(t, m, router.PushScreenMsg{Screen: quiz.New(quiz.Deps{})})
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())

	// esc on the home screen does nothing
	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	assert.Empty(t, m.render())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
