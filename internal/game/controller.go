// Package game holds the quiz session state machine. The Controller is not
// safe for concurrent use; the TUI event loop is its only mutator.
package game

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/triviaz/internal/trivia"
)

const (
	// StartingLives is the number of lives a session begins with.
	StartingLives = 3

	// PointsPerCorrect is added to the score for each right answer.
	PointsPerCorrect = 10
)

// Phase is the screen the session is on.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseLoading
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseLoading:
		return "LOADING"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Feedback is the outcome of the current round's answer.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// Selection is either "nothing chosen" or a chosen option index. The zero
// value is NoSelection.
type Selection struct {
	index  int
	chosen bool
}

// NoSelection is the empty selection.
var NoSelection = Selection{}

// Chosen returns the selection of option i.
func Chosen(i int) Selection {
	return Selection{index: i, chosen: true}
}

// Index returns the chosen index and true, or 0 and false when nothing is
// chosen.
func (s Selection) Index() (int, bool) {
	return s.index, s.chosen
}

// IsChosen reports whether an option has been chosen.
func (s Selection) IsChosen() bool {
	return s.chosen
}

// ScoreKeeper persists the high score. Record stores score if it beats the
// stored value and reports whether it did.
type ScoreKeeper interface {
	Record(ctx context.Context, score int) (bool, error)
}

// State is a read-only snapshot of the session.
type State struct {
	Phase     Phase
	Round     int
	Score     int
	Lives     int
	HighScore int

	// NewHighScore is set once the running score has beaten the high score
	// the session started with.
	NewHighScore bool

	Question  trivia.Question
	Selection Selection
	Feedback  Feedback

	// Answered and Correct count rounds in the current session.
	Answered int
	Correct  int
}

// Controller drives one player through repeated sessions.
type Controller struct {
	keeper ScoreKeeper
	state  State
}

// New creates a controller in the START phase. best is the persisted high
// score read at startup; keeper may be nil to keep the high score in memory.
func New(best int, keeper ScoreKeeper) *Controller {
	return &Controller{
		keeper: keeper,
		state: State{
			Phase:     PhaseStart,
			Lives:     StartingLives,
			HighScore: max(best, 0),
		},
	}
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	s := c.state
	s.Question.Options = append([]string(nil), c.state.Question.Options...)
	return s
}

// Start begins a new session from START or GAME_OVER. It returns the round
// whose question must now be fetched, and false if the call was ignored.
func (c *Controller) Start() (int, bool) {
	if c.state.Phase != PhaseStart && c.state.Phase != PhaseGameOver {
		return 0, false
	}

	c.state = State{
		Phase:     PhaseLoading,
		Round:     c.state.Round + 1,
		Lives:     StartingLives,
		HighScore: c.state.HighScore,
	}
	return c.state.Round, true
}

// PlayAgain restarts after GAME_OVER.
func (c *Controller) PlayAgain() (int, bool) {
	if c.state.Phase != PhaseGameOver {
		return 0, false
	}
	return c.Start()
}

// Deliver hands the fetched question for round to the session. Results for
// any round other than the one being loaded are dropped.
func (c *Controller) Deliver(round int, q trivia.Question) bool {
	if c.state.Phase != PhaseLoading || round != c.state.Round {
		log.Debug().
			Int("round", round).
			Int("current_round", c.state.Round).
			Str("phase", c.state.Phase.String()).
			Msg("dropping stale question")
		return false
	}

	c.state.Question = q
	c.state.Selection = NoSelection
	c.state.Feedback = FeedbackNone
	c.state.Phase = PhasePlaying
	return true
}

// Select answers the current question with option i. Only the first valid
// selection of a round counts.
func (c *Controller) Select(ctx context.Context, i int) bool {
	if c.state.Phase != PhasePlaying || c.state.Selection.IsChosen() {
		return false
	}
	if i < 0 || i >= len(c.state.Question.Options) {
		return false
	}

	c.state.Selection = Chosen(i)
	c.state.Answered++

	if c.state.Question.IsCorrect(i) {
		c.state.Feedback = FeedbackCorrect
		c.state.Score += PointsPerCorrect
		c.state.Correct++
		c.raiseHighScore(ctx)
	} else {
		c.state.Feedback = FeedbackIncorrect
		c.state.Lives = max(c.state.Lives-1, 0)
	}
	return true
}

// Continue moves past an answered round: to GAME_OVER when no lives remain,
// otherwise to LOADING for the next round. The returned round is the one to
// fetch; it is zero when the session ended.
func (c *Controller) Continue() (int, bool) {
	if c.state.Phase != PhasePlaying || !c.state.Selection.IsChosen() {
		return 0, false
	}

	if c.state.Lives == 0 {
		c.state.Phase = PhaseGameOver
		return 0, true
	}

	c.state.Round++
	c.state.Phase = PhaseLoading
	c.state.Question = trivia.Question{}
	c.state.Selection = NoSelection
	c.state.Feedback = FeedbackNone
	return c.state.Round, true
}

func (c *Controller) raiseHighScore(ctx context.Context) {
	if c.state.Score <= c.state.HighScore {
		return
	}
	c.state.HighScore = c.state.Score
	c.state.NewHighScore = true

	if c.keeper == nil {
		return
	}
	if _, err := c.keeper.Record(ctx, c.state.Score); err != nil {
		log.Warn().Err(err).Int("score", c.state.Score).Msg("failed to persist high score")
	}
}
