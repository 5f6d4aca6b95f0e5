package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/triviaz/internal/store"
)

func TestPrintStats(t *testing.T) {
	var out bytes.Buffer
	printStats(&out, 0, nil, nil)
	assert.Contains(t, out.String(), "High score: 0")
	assert.Contains(t, out.String(), "No games played yet.")

	out.Reset()
	games := []store.GameEvent{{
		Timestamp:     time.Now(),
		GameEventData: store.GameEventData{Score: 30, Rounds: 6, Correct: 3, NewHighScore: true},
	}}
	subjects := []store.SubjectAccuracy{{Subject: "Geography", Answered: 4, Correct: 3}}
	printStats(&out, 30, games, subjects)

	text := out.String()
	assert.Contains(t, text, "High score: 30")
	assert.Contains(t, text, "★")
	assert.Contains(t, text, "Geography")
	assert.Contains(t, text, "75%")
}
