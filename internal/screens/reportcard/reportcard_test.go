package reportcard

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/router"
	"github.com/abhisek/triviaz/internal/store"
)

type fakeEvents struct {
	store.EventRepo
	games    []store.GameEvent
	subjects []store.SubjectAccuracy
	err      error
	opts     store.QueryOpts
}

func (f *fakeEvents) QueryGames(_ context.Context, opts store.QueryOpts) ([]store.GameEvent, error) {
	f.opts = opts
	return f.games, f.err
}

func (f *fakeEvents) SubjectAccuracy(context.Context) ([]store.SubjectAccuracy, error) {
	return f.subjects, nil
}

func press(s *ReportCardScreen, k string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch k {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	}
	_, cmd := s.Update(msg)
	return cmd
}

func loaded(events *fakeEvents) *ReportCardScreen {
	s := New(events)
	s.Update(s.Init()())
	return s
}

func TestReportCard_LoadingAndEmpty(t *testing.T) {
	events := &fakeEvents{}
	s := New(events)
	assert.Contains(t, s.View(100, 30), "Loading report card")

	s.Update(s.Init()())
	assert.Equal(t, gameLimit, events.opts.Limit)
	assert.Contains(t, s.View(100, 30), "No games yet")

	press(s, "tab")
	assert.Contains(t, s.View(100, 30), "No answers recorded yet")
}

func TestReportCard_Games(t *testing.T) {
	events := &fakeEvents{games: []store.GameEvent{
		{
			Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			GameEventData: store.GameEventData{
				Score: 40, Rounds: 7, Correct: 4, HighScore: 40, NewHighScore: true,
			},
		},
		{
			Timestamp: time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC),
			GameEventData: store.GameEventData{
				Score: 0, Rounds: 3, Correct: 0, HighScore: 10,
			},
		},
	}}
	s := loaded(events)

	view := s.View(120, 30)
	assert.Contains(t, view, "score  40")
	assert.Contains(t, view, "57% correct")
	assert.Contains(t, view, "★")
	assert.NotContains(t, view, "best at the time")

	press(s, "down")
	press(s, "enter")
	view = s.View(120, 30)
	assert.Contains(t, view, "0 correct, 3 wrong, best at the time 10")

	press(s, "down") // already at the last game
	assert.Equal(t, 1, s.selected)
}

func TestReportCard_Subjects(t *testing.T) {
	s := loaded(&fakeEvents{subjects: []store.SubjectAccuracy{
		{Subject: "Geography", Answered: 10, Correct: 7},
		{Subject: "Science", Answered: 4, Correct: 1},
	}})

	press(s, "tab")
	view := s.View(100, 30)
	assert.Contains(t, view, "Geography")
	assert.Contains(t, view, "7/10")
	assert.Contains(t, view, "1/4")
	assert.Equal(t, "Games", s.KeyHints()[0].Description)
}

func TestReportCard_Error(t *testing.T) {
	s := loaded(&fakeEvents{err: errors.New("database is locked")})
	assert.Contains(t, s.View(100, 30), "Error: database is locked")
}

func TestReportCard_EscPops(t *testing.T) {
	s := loaded(&fakeEvents{})
	cmd := press(s, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
