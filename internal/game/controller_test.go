package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/trivia"
)

type fakeKeeper struct {
	best    int
	records []int
	err     error
}

func (k *fakeKeeper) Record(_ context.Context, score int) (bool, error) {
	k.records = append(k.records, score)
	if k.err != nil {
		return false, k.err
	}
	if score <= k.best {
		return false, nil
	}
	k.best = score
	return true, nil
}

func question(text string, correct int) trivia.Question {
	return trivia.Question{
		Text:         text,
		Options:      []string{"A", "B", "C", "D"},
		CorrectIndex: correct,
		Subject:      "Mathematics",
	}
}

// startPlaying starts a session and delivers q for the first round.
func startPlaying(t *testing.T, c *Controller, q trivia.Question) {
	t.Helper()
	round, ok := c.Start()
	require.True(t, ok)
	require.True(t, c.Deliver(round, q))
}

func TestNew(t *testing.T) {
	c := New(40, nil)
	s := c.State()

	assert.Equal(t, PhaseStart, s.Phase)
	assert.Equal(t, StartingLives, s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 40, s.HighScore)
	assert.False(t, s.Selection.IsChosen())
	assert.Equal(t, FeedbackNone, s.Feedback)

	assert.Equal(t, 0, New(-5, nil).State().HighScore)
}

func TestStart(t *testing.T) {
	c := New(0, nil)

	round, ok := c.Start()
	require.True(t, ok)
	assert.Equal(t, 1, round)
	assert.Equal(t, PhaseLoading, c.State().Phase)

	// A second start while loading is ignored.
	_, ok = c.Start()
	assert.False(t, ok)
	assert.Equal(t, 1, c.State().Round)
}

func TestPlayAgainOnlyFromGameOver(t *testing.T) {
	c := New(0, nil)
	_, ok := c.PlayAgain()
	assert.False(t, ok)

	startPlaying(t, c, question("Q", 0))
	_, ok = c.PlayAgain()
	assert.False(t, ok)
}

func TestDeliver(t *testing.T) {
	c := New(0, nil)

	assert.False(t, c.Deliver(1, question("early", 0)), "no round is loading yet")

	round, _ := c.Start()
	assert.False(t, c.Deliver(round+1, question("wrong round", 0)))
	assert.Equal(t, PhaseLoading, c.State().Phase)

	assert.True(t, c.Deliver(round, question("Q1", 2)))
	s := c.State()
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, "Q1", s.Question.Text)

	assert.False(t, c.Deliver(round, question("duplicate", 0)), "already playing")
	assert.Equal(t, "Q1", c.State().Question.Text)
}

func TestSelect_Correct(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 2))

	require.True(t, c.Select(context.Background(), 2))
	s := c.State()

	idx, chosen := s.Selection.Index()
	assert.True(t, chosen)
	assert.Equal(t, 2, idx)
	assert.Equal(t, FeedbackCorrect, s.Feedback)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 1, s.Answered)
	assert.Equal(t, 1, s.Correct)
}

func TestSelect_Incorrect(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 2))

	require.True(t, c.Select(context.Background(), 0))
	s := c.State()

	assert.Equal(t, FeedbackIncorrect, s.Feedback)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 2, s.Lives)
	assert.Equal(t, 0, s.Correct)
}

func TestSelect_OnlyFirstAnswerCounts(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 1))

	require.True(t, c.Select(context.Background(), 0))
	before := c.State()

	assert.False(t, c.Select(context.Background(), 1))
	assert.False(t, c.Select(context.Background(), 0))
	assert.Equal(t, before, c.State())
}

func TestSelect_Ignored(t *testing.T) {
	c := New(0, nil)
	assert.False(t, c.Select(context.Background(), 0), "START")

	c.Start()
	assert.False(t, c.Select(context.Background(), 0), "LOADING")

	c.Deliver(1, question("Q", 0))
	assert.False(t, c.Select(context.Background(), -1))
	assert.False(t, c.Select(context.Background(), 4))
	assert.False(t, c.State().Selection.IsChosen())
}

func TestContinue_RequiresAnswer(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 0))

	_, ok := c.Continue()
	assert.False(t, ok)
	assert.Equal(t, PhasePlaying, c.State().Phase)
}

func TestContinue_NextRound(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 0))
	c.Select(context.Background(), 3)

	round, ok := c.Continue()
	require.True(t, ok)
	assert.Equal(t, 2, round)

	s := c.State()
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.False(t, s.Selection.IsChosen())
	assert.Equal(t, FeedbackNone, s.Feedback)
	assert.Equal(t, 2, s.Lives)
}

func TestStaleResultAfterRestart(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 0))
	for range 3 {
		c.Select(context.Background(), 1)
		if _, ok := c.Continue(); !ok {
			t.Fatal("continue rejected")
		}
		if c.State().Phase == PhaseLoading {
			c.Deliver(c.State().Round, question("Q", 0))
		}
	}
	require.Equal(t, PhaseGameOver, c.State().Phase)

	oldRound := c.State().Round
	round, ok := c.PlayAgain()
	require.True(t, ok)
	assert.Greater(t, round, oldRound)

	assert.False(t, c.Deliver(oldRound, question("stale", 0)))
	assert.True(t, c.Deliver(round, question("fresh", 0)))
	assert.Equal(t, "fresh", c.State().Question.Text)
}

func TestScenario_FallbackQuestionAnsweredCorrectly(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, trivia.Fallback())

	require.True(t, c.Select(context.Background(), 1))
	s := c.State()
	assert.Equal(t, FeedbackCorrect, s.Feedback)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 3, s.Lives)

	round, ok := c.Continue()
	require.True(t, ok)
	require.True(t, c.Deliver(round, question("What is 6 x 7?", 1)))

	s = c.State()
	assert.Equal(t, PhasePlaying, s.Phase)
	assert.Equal(t, "What is 6 x 7?", s.Question.Text)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 10, s.Score)
}

func TestScenario_ThreeWrongAnswersEndsGame(t *testing.T) {
	keeper := &fakeKeeper{best: 50}
	c := New(50, keeper)
	startPlaying(t, c, question("Q1", 0))

	// One right answer first so the final score is non-zero.
	c.Select(context.Background(), 0)
	round, _ := c.Continue()
	c.Deliver(round, question("Q2", 0))

	for i := 0; i < 3; i++ {
		require.True(t, c.Select(context.Background(), 3))
		assert.Equal(t, 2-i, c.State().Lives)

		round, ok := c.Continue()
		require.True(t, ok)
		if i < 2 {
			require.True(t, c.Deliver(round, question("Qn", 0)))
		} else {
			assert.Zero(t, round)
		}
	}

	s := c.State()
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 0, s.Lives)
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 50, s.HighScore)
	assert.False(t, s.NewHighScore)
	assert.Empty(t, keeper.records)

	_, ok := c.Continue()
	assert.False(t, ok, "continue is ignored after game over")
}

func TestHighScoreOnlyRises(t *testing.T) {
	keeper := &fakeKeeper{best: 10}
	c := New(10, keeper)
	startPlaying(t, c, question("Q", 0))

	c.Select(context.Background(), 0) // score 10, ties the best
	assert.Equal(t, 10, c.State().HighScore)
	assert.False(t, c.State().NewHighScore)

	round, _ := c.Continue()
	c.Deliver(round, question("Q", 0))
	c.Select(context.Background(), 0) // score 20

	s := c.State()
	assert.Equal(t, 20, s.HighScore)
	assert.True(t, s.NewHighScore)
	assert.Equal(t, []int{20}, keeper.records)
	assert.Equal(t, 20, keeper.best)

	// Lose the remaining lives and start over; the high score stays.
	for s.Phase != PhaseGameOver {
		if s.Phase == PhaseLoading {
			c.Deliver(s.Round, question("Q", 0))
		} else if !s.Selection.IsChosen() {
			c.Select(context.Background(), 1)
		} else {
			c.Continue()
		}
		s = c.State()
	}
	c.PlayAgain()

	s = c.State()
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 20, s.HighScore)
	assert.False(t, s.NewHighScore)
}

func TestHighScore_KeeperErrorAbsorbed(t *testing.T) {
	keeper := &fakeKeeper{err: errors.New("disk full")}
	c := New(0, keeper)
	startPlaying(t, c, question("Q", 0))

	require.True(t, c.Select(context.Background(), 0))
	assert.Equal(t, 10, c.State().HighScore)
	assert.Equal(t, []int{10}, keeper.records)
}

func TestStateIsSnapshot(t *testing.T) {
	c := New(0, nil)
	startPlaying(t, c, question("Q", 0))

	s := c.State()
	s.Question.Options[0] = "mutated"
	s.Score = 999

	assert.Equal(t, "A", c.State().Question.Options[0])
	assert.Equal(t, 0, c.State().Score)
}

func TestInvariantsUnderRandomActions(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	keeper := &fakeKeeper{}
	c := New(0, keeper)
	highest := 0

	for step := 0; step < 5000; step++ {
		before := c.State()

		switch rng.IntN(6) {
		case 0:
			c.Start()
		case 1:
			c.PlayAgain()
		case 2:
			// Sometimes deliver for the wrong round.
			c.Deliver(before.Round+rng.IntN(2), question("Q", rng.IntN(4)))
		case 3, 4:
			c.Select(context.Background(), rng.IntN(6)-1)
		case 5:
			c.Continue()
		}

		s := c.State()
		require.GreaterOrEqual(t, s.Lives, 0)
		require.LessOrEqual(t, s.Lives, StartingLives)
		require.GreaterOrEqual(t, s.Score, 0)
		require.Zero(t, s.Score%PointsPerCorrect)
		require.GreaterOrEqual(t, s.HighScore, highest, "high score dropped")
		require.GreaterOrEqual(t, s.HighScore, s.Score)
		highest = s.HighScore

		// Score and lives move by at most one step, and only on a new answer.
		if before.Phase == s.Phase && before.Round == s.Round && before.Selection == s.Selection {
			require.Equal(t, before.Score, s.Score)
			require.Equal(t, before.Lives, s.Lives)
		}
		if s.Phase == PhaseGameOver {
			require.Zero(t, s.Lives)
		}
	}
	assert.Equal(t, highest, keeper.best)
}

func TestPhaseAndFeedbackStrings(t *testing.T) {
	assert.Equal(t, "GAME_OVER", PhaseGameOver.String())
	assert.Equal(t, "LOADING", PhaseLoading.String())
	assert.Equal(t, "incorrect", FeedbackIncorrect.String())
	assert.Equal(t, "none", FeedbackNone.String())
}
