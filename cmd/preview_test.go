package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/triviaz/internal/game"
	"github.com/abhisek/triviaz/internal/trivia"
)

type fallbackOnly struct{ calls int }

func (f *fallbackOnly) FetchQuestion(context.Context) trivia.Question {
	f.calls++
	return trivia.Fallback()
}

func TestPreviewGame_OutOfLives(t *testing.T) {
	fetcher := &fallbackOnly{}
	in := strings.NewReader("b\nx\n1\nc\nD\n")
	var out bytes.Buffer

	st := previewGame(context.Background(), fetcher, in, &out, 0)

	assert.Equal(t, game.PhaseGameOver, st.Phase)
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, 0, st.Lives)
	assert.Equal(t, 4, st.Answered)
	assert.Equal(t, 4, fetcher.calls)

	text := out.String()
	assert.Contains(t, text, "Which planet is known as the Red Planet?")
	assert.Contains(t, text, "✓ Correct! +10")
	assert.Contains(t, text, "Enter 1-4 or A-D.")
	assert.Contains(t, text, "Answer: Mars")
}

func TestPreviewGame_RoundLimitAndClosedInput(t *testing.T) {
	var out bytes.Buffer
	st := previewGame(context.Background(), &fallbackOnly{}, strings.NewReader("2\n2\n2\n"), &out, 2)
	assert.Equal(t, 2, st.Answered)
	assert.Equal(t, 20, st.Score)

	out.Reset()
	st = previewGame(context.Background(), &fallbackOnly{}, strings.NewReader(""), &out, 0)
	assert.Equal(t, game.PhasePlaying, st.Phase)
	assert.Contains(t, out.String(), "(input closed)")
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{" 4 ", 3, true},
		{"b", 1, true},
		{"D", 3, true},
		{"0", 0, false},
		{"5", 0, false},
		{"e", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseChoice(tt.in, 4)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
