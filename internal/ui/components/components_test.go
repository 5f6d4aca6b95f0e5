package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestOptionList_Cursor(t *testing.T) {
	o := NewOptionList([]string{"Earth", "Mars", "Jupiter", "Venus"})

	o.Up()
	assert.Equal(t, 0, o.Cursor)

	for range 10 {
		o.Down()
	}
	assert.Equal(t, 3, o.Cursor)

	view := o.View()
	assert.Contains(t, view, "A)  Earth")
	assert.Contains(t, view, "▸ D)  Venus")
}

func TestOptionList_Reveal(t *testing.T) {
	o := NewOptionList([]string{"Earth", "Mars", "Jupiter", "Venus"})
	o.Reveal(0, 1)

	view := o.View()
	assert.NotContains(t, view, "▸")
	assert.Contains(t, view, "Earth  ✗")
	assert.Contains(t, view, "Mars  ✓")
}

func TestHearts(t *testing.T) {
	assert.Equal(t, 2, strings.Count(Hearts(2, 3), "♥"))
	assert.Equal(t, 1, strings.Count(Hearts(2, 3), "♡"))
	assert.Equal(t, 3, strings.Count(Hearts(-1, 3), "♡"))
	assert.Equal(t, 3, strings.Count(Hearts(9, 3), "♥"))
}

func TestAccuracyBar(t *testing.T) {
	bar := AccuracyBar{Label: "Geography", Correct: 7, Answered: 10, Width: 40}
	assert.InDelta(t, 0.7, bar.Ratio(), 1e-9)
	assert.Contains(t, bar.View(), "7/10")
	assert.Contains(t, bar.View(), "70%")

	assert.Zero(t, AccuracyBar{}.Ratio())
}

func TestMenu_SkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "Play", Action: func() tea.Cmd { ran = "play"; return nil }},
		{Label: "Off", Disabled: true},
		{Label: "Quit", Action: func() tea.Cmd { ran = "quit"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "play", ran)
}
