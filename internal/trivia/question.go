// Package trivia acquires multiple-choice questions for the game. Sources
// produce questions; the Provider validates them and always hands back a
// playable question, substituting a fixed fallback when a source fails.
package trivia

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Source names recorded on questions.
const (
	SourceLLM      = "llm"
	SourceOpenTDB  = "opentdb"
	SourceFallback = "fallback"
)

// Question is one multiple-choice trivia question.
type Question struct {
	// Text is the question prompt shown to the player.
	Text string

	// Options holds exactly OptionCount answers, displayed as A-D.
	Options []string

	// CorrectIndex is the position of the right answer in Options.
	CorrectIndex int

	// Subject is the curriculum area, e.g. "Geography".
	Subject string

	// Explanation is shown after the player answers.
	Explanation string

	// Source names where the question came from (SourceLLM, SourceOpenTDB
	// or SourceFallback).
	Source string
}

// IsCorrect reports whether index is the right answer.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectIndex
}

// IsFallback reports whether q is the substitute question served after a
// failed fetch.
func (q Question) IsFallback() bool {
	return q.Source == SourceFallback
}

// CorrectOption returns the text of the right answer.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// Fallback returns the question served whenever no valid question could be
// obtained. Each call returns a fresh copy.
func Fallback() Question {
	return Question{
		Text:         "Which planet is known as the Red Planet?",
		Options:      []string{"Earth", "Mars", "Jupiter", "Venus"},
		CorrectIndex: 1,
		Subject:      "Science",
		Explanation:  "Mars appears red because of iron oxide (rust) in its soil.",
		Source:       SourceFallback,
	}
}

// DefaultSubjects is the rotation of subjects questions are drawn from.
var DefaultSubjects = []string{
	"Mathematics",
	"Science (Biology, Physics, Earth Science)",
	"History (World & US)",
	"Geography",
	"English Language Arts (Grammar, Literature)",
	"General Knowledge",
}
