package quiz

import "github.com/abhisek/triviaz/internal/trivia"

// questionReadyMsg carries a fetched question back to the game it was
// requested for. SessionID and Round let the screen drop late results.
type questionReadyMsg struct {
	SessionID string
	Round     int
	Question  trivia.Question
}
