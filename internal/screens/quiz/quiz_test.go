package quiz

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/game"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/trivia"
)

type queueFetcher struct {
	mu        sync.Mutex
	questions []trivia.Question
	calls     int
}

func (f *queueFetcher) FetchQuestion(context.Context) trivia.Question {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if len(f.questions) == 0 {
		return trivia.Fallback()
	}
	q := f.questions[0]
	f.questions = f.questions[1:]
	return q
}

// recordingEvents captures game and round events. Other EventRepo methods
// are not used by the screen.
type recordingEvents struct {
	store.EventRepo
	mu     sync.Mutex
	games  []store.GameEventData
	rounds []store.RoundEventData
}

func (r *recordingEvents) AppendGameEvent(_ context.Context, data store.GameEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games = append(r.games, data)
	return nil
}

func (r *recordingEvents) AppendRoundEvent(_ context.Context, data store.RoundEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds = append(r.rounds, data)
	return nil
}

type memScores struct {
	best    int
	records []int
}

func (m *memScores) Best(context.Context) (int, error) { return m.best, nil }
func (m *memScores) Reset(context.Context) error       { m.best = 0; return nil }
func (m *memScores) Record(_ context.Context, score int) (bool, error) {
	m.records = append(m.records, score)
	if score <= m.best {
		return false, nil
	}
	m.best = score
	return true, nil
}

func mathQuestion(n int) trivia.Question {
	return trivia.Question{
		Text:         fmt.Sprintf("What is %d + %d?", n, n),
		Options:      []string{fmt.Sprint(n), fmt.Sprint(2 * n), fmt.Sprint(3 * n), fmt.Sprint(4 * n)},
		CorrectIndex: 1,
		Subject:      "Mathematics",
		Explanation:  "Doubling a number adds it to itself.",
		Source:       trivia.SourceLLM,
	}
}

type fixture struct {
	screen  *QuizScreen
	fetcher *queueFetcher
	events  *recordingEvents
	scores  *memScores
	other   []tea.Msg
}

func newFixture(best int, questions ...trivia.Question) *fixture {
	f := &fixture{
		fetcher: &queueFetcher{questions: questions},
		events:  &recordingEvents{},
		scores:  &memScores{best: best},
	}
	f.screen = New(Deps{
		Questions: f.fetcher,
		Scores:    f.scores,
		Events:    f.events,
		Best:      best,
	})
	ids := 0
	f.screen.newID = func() string {
		ids++
		return fmt.Sprintf("session-%d", ids)
	}
	return f
}

// run executes cmd and flattens batches into the produced messages.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle runs cmd, feeding fetched questions back into the screen. Other
// messages are kept for inspection; spinner ticks are not followed.
func (f *fixture) settle(cmd tea.Cmd) {
	for _, msg := range run(cmd) {
		if _, ok := msg.(questionReadyMsg); ok {
			_, next := f.screen.Update(msg)
			f.settle(next)
			continue
		}
		f.other = append(f.other, msg)
	}
}

func (f *fixture) start() {
	f.settle(f.screen.Init())
}

func (f *fixture) press(k string) {
	var msg tea.KeyPressMsg
	switch k {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		msg = tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		r := []rune(k)[0]
		msg = tea.KeyPressMsg{Code: r, Text: k}
	}
	_, cmd := f.screen.Update(msg)
	f.settle(cmd)
}

func (f *fixture) highScoreMsgs() []int {
	var out []int
	for _, m := range f.other {
		if hs, ok := m.(screen.HighScoreMsg); ok {
			out = append(out, hs.Score)
		}
	}
	return out
}

func TestQuizScreen_StartsLoadingThenPlays(t *testing.T) {
	f := newFixture(0, mathQuestion(2))

	cmd := f.screen.Init()
	assert.Equal(t, game.PhaseLoading, f.screen.State().Phase)
	assert.Contains(t, f.screen.View(80, 24), "Fetching a question")

	f.settle(cmd)
	st := f.screen.State()
	require.Equal(t, game.PhasePlaying, st.Phase)
	assert.Equal(t, "What is 2 + 2?", st.Question.Text)

	view := f.screen.View(80, 24)
	assert.Contains(t, view, "What is 2 + 2?")
	assert.Contains(t, view, "Mathematics")
	assert.Contains(t, view, "Score 0")

	require.Len(t, f.events.games, 1)
	assert.Equal(t, store.GameActionStart, f.events.games[0].Action)
	assert.Equal(t, "session-1", f.events.games[0].SessionID)
}

func TestQuizScreen_FallbackScenario(t *testing.T) {
	// No questions queued: the fetcher serves the fallback question.
	f := newFixture(0)
	f.start()
	require.True(t, f.screen.State().Question.IsFallback())

	f.press("b") // Mars
	st := f.screen.State()
	assert.Equal(t, game.FeedbackCorrect, st.Feedback)
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, 3, st.Lives)
	assert.Contains(t, f.screen.View(80, 30), "Correct! +10")

	assert.Equal(t, []int{10}, f.scores.records)
	assert.Equal(t, []int{10}, f.highScoreMsgs())

	require.Len(t, f.events.rounds, 1)
	round := f.events.rounds[0]
	assert.True(t, round.Correct)
	assert.True(t, round.Fallback)
	assert.Equal(t, 1, round.SelectedIndex)
	assert.Equal(t, trivia.SourceFallback, round.Source)

	f.fetcher.questions = []trivia.Question{mathQuestion(3)}
	f.press("enter")

	st = f.screen.State()
	assert.Equal(t, game.PhasePlaying, st.Phase)
	assert.Equal(t, "What is 3 + 3?", st.Question.Text)
	assert.Equal(t, 3, st.Lives)
	assert.False(t, st.Selection.IsChosen())
}

func TestQuizScreen_HighScoreMsgOnlyWhenRaised(t *testing.T) {
	f := newFixture(0, mathQuestion(1), mathQuestion(2), mathQuestion(3))
	f.start()

	f.press("2") // correct, new best of 10
	f.press("enter")
	f.press("1") // wrong, best unchanged
	require.Equal(t, game.FeedbackIncorrect, f.screen.State().Feedback)
	assert.Equal(t, []int{10}, f.highScoreMsgs())
	f.press("enter")

	f.press("2") // correct, best rises to 20
	assert.Equal(t, []int{10, 20}, f.highScoreMsgs())
	assert.Equal(t, []int{10, 20}, f.scores.records)
	assert.True(t, f.screen.State().NewHighScore)
}

func TestQuizScreen_ThreeWrongAnswersEndsGame(t *testing.T) {
	f := newFixture(50, mathQuestion(1), mathQuestion(2), mathQuestion(3))
	f.start()

	for i := 0; i < 3; i++ {
		f.press("1") // always wrong
		assert.Equal(t, game.FeedbackIncorrect, f.screen.State().Feedback)
		f.press("enter")
	}

	st := f.screen.State()
	require.Equal(t, game.PhaseGameOver, st.Phase)
	assert.Equal(t, 0, st.Lives)

	view := f.screen.View(80, 24)
	assert.Contains(t, view, "GAME OVER")
	assert.Contains(t, view, "Final score: 0")
	assert.Contains(t, view, "High score: 50")
	assert.NotContains(t, view, "New high score")

	require.Len(t, f.events.games, 2)
	end := f.events.games[1]
	assert.Equal(t, store.GameActionEnd, end.Action)
	assert.Equal(t, 3, end.Rounds)
	assert.Equal(t, 0, end.Correct)
	assert.Equal(t, 50, end.HighScore)
	assert.Empty(t, f.scores.records)
}

func TestQuizScreen_OnlyFirstAnswerCounts(t *testing.T) {
	f := newFixture(0, mathQuestion(5))
	f.start()

	f.press("a")
	f.press("b")
	f.press("c")

	st := f.screen.State()
	idx, _ := st.Selection.Index()
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, st.Lives)
	assert.Len(t, f.events.rounds, 1)
}

func TestQuizScreen_CursorAndEnter(t *testing.T) {
	f := newFixture(0, mathQuestion(4))
	f.start()

	f.press("down")
	f.press("down")
	f.press("up")
	f.press("enter")

	st := f.screen.State()
	idx, chosen := st.Selection.Index()
	require.True(t, chosen)
	assert.Equal(t, 1, idx)
	assert.Equal(t, game.FeedbackCorrect, st.Feedback)
}

func TestQuizScreen_KeysIgnoredWhileLoading(t *testing.T) {
	f := newFixture(0)
	f.screen.Init() // question never delivered

	f.press("a")
	f.press("enter")

	st := f.screen.State()
	assert.Equal(t, game.PhaseLoading, st.Phase)
	assert.False(t, st.Selection.IsChosen())
}

func TestQuizScreen_DropsQuestionsForOtherSessions(t *testing.T) {
	f := newFixture(0)
	f.screen.Init()

	f.screen.Update(questionReadyMsg{SessionID: "stale", Round: 1, Question: mathQuestion(1)})
	assert.Equal(t, game.PhaseLoading, f.screen.State().Phase)

	f.screen.Update(questionReadyMsg{SessionID: "session-1", Round: 2, Question: mathQuestion(1)})
	assert.Equal(t, game.PhaseLoading, f.screen.State().Phase)

	f.screen.Update(questionReadyMsg{SessionID: "session-1", Round: 1, Question: mathQuestion(1)})
	assert.Equal(t, game.PhasePlaying, f.screen.State().Phase)
}

func TestQuizScreen_PlayAgain(t *testing.T) {
	f := newFixture(0, mathQuestion(1))
	f.start()

	f.press("b") // correct, score 10
	for f.screen.State().Phase != game.PhaseGameOver {
		f.press("enter")
		f.press("a")
	}

	view := f.screen.View(80, 24)
	assert.Contains(t, view, "New high score")
	assert.Contains(t, view, "High score: 10")

	f.press("r")
	st := f.screen.State()
	assert.Equal(t, game.PhasePlaying, st.Phase)
	assert.Equal(t, 0, st.Score)
	assert.Equal(t, 3, st.Lives)
	assert.Equal(t, 10, st.HighScore)

	last := f.events.games[len(f.events.games)-1]
	assert.Equal(t, store.GameActionStart, last.Action)
	assert.Equal(t, "session-2", last.SessionID)
}

func TestQuizScreen_KeyHints(t *testing.T) {
	f := newFixture(0, mathQuestion(1))
	f.start()

	hints := f.screen.KeyHints()
	assert.Equal(t, "Answer", hints[1].Description)

	f.press("b")
	assert.Equal(t, "Continue", f.screen.KeyHints()[0].Description)
}

func TestQuizScreen_NoPersistence(t *testing.T) {
	s := New(Deps{})
	cmd := s.Init()
	for _, msg := range run(cmd) {
		if _, ok := msg.(questionReadyMsg); ok {
			s.Update(msg)
		}
	}

	st := s.State()
	require.Equal(t, game.PhasePlaying, st.Phase)
	assert.True(t, st.Question.IsFallback())
	assert.Equal(t, "Trivia", s.Title())
}
