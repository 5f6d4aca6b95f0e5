// Package quiz is the in-game screen. It drives a game.Controller through
// loading, playing and game-over, fetches questions in the background and
// records game and round events.
package quiz

import (
	"context"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/triviaz/internal/game"
	"github.com/abhisek/triviaz/internal/screen"
	"github.com/abhisek/triviaz/internal/store"
	"github.com/abhisek/triviaz/internal/trivia"
	"github.com/abhisek/triviaz/internal/ui/components"
	"github.com/abhisek/triviaz/internal/ui/layout"
	"github.com/abhisek/triviaz/internal/ui/theme"
)

// QuestionFetcher supplies one playable question per call.
// *trivia.Provider implements it.
type QuestionFetcher interface {
	FetchQuestion(ctx context.Context) trivia.Question
}

// Deps are the collaborators of the quiz screen. Scores and Events may be
// nil to play without persistence.
type Deps struct {
	Questions QuestionFetcher
	Scores    store.HighScoreRepo
	Events    store.EventRepo
	Best      int
}

// QuizScreen implements screen.Screen for one or more games in a row.
type QuizScreen struct {
	questions QuestionFetcher
	events    store.EventRepo
	ctrl      *game.Controller
	sessionID string
	spinner   spinner.Model
	options   components.OptionList
	keys      keyMap
	newID     func() string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen. The first game starts on Init.
func New(deps Deps) *QuizScreen {
	var keeper game.ScoreKeeper
	if deps.Scores != nil {
		keeper = deps.Scores
	}
	return &QuizScreen{
		questions: deps.Questions,
		events:    deps.Events,
		ctrl:      game.New(deps.Best, keeper),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
		keys:  defaultKeyMap(),
		newID: func() string { return uuid.New().String() },
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	round, ok := s.ctrl.Start()
	if !ok {
		return nil
	}
	return s.beginGame(round)
}

func (s *QuizScreen) Title() string {
	return "Trivia"
}

// State exposes the controller snapshot.
func (s *QuizScreen) State() game.State {
	return s.ctrl.State()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	st := s.ctrl.State()
	switch st.Phase {
	case game.PhasePlaying:
		if st.Selection.IsChosen() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Continue"},
				{Key: "Esc", Description: "Menu"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Move"},
			{Key: "Enter", Description: "Answer"},
			{Key: "A-D", Description: "Pick"},
			{Key: "Esc", Description: "Menu"},
		}
	case game.PhaseGameOver:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Menu"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s, s.handleQuestion(msg)

	case spinner.TickMsg:
		if s.ctrl.State().Phase != game.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleQuestion(msg questionReadyMsg) tea.Cmd {
	if msg.SessionID != s.sessionID {
		return nil
	}
	if !s.ctrl.Deliver(msg.Round, msg.Question) {
		return nil
	}
	s.options = components.NewOptionList(msg.Question.Options)
	return nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := s.ctrl.State()

	switch st.Phase {
	case game.PhasePlaying:
		if st.Selection.IsChosen() {
			if key.Matches(msg, s.keys.Continue) {
				return s.next()
			}
			return nil
		}
		switch {
		case key.Matches(msg, s.keys.Up):
			s.options.Up()
		case key.Matches(msg, s.keys.Down):
			s.options.Down()
		case key.Matches(msg, s.keys.Choose):
			return s.choose(s.options.Cursor)
		default:
			for i, b := range s.keys.Options {
				if key.Matches(msg, b) {
					return s.choose(i)
				}
			}
		}

	case game.PhaseGameOver:
		if key.Matches(msg, s.keys.Again) {
			round, ok := s.ctrl.PlayAgain()
			if ok {
				return s.beginGame(round)
			}
		}
	}
	return nil
}

// beginGame starts a new session ID and fetches the first question.
func (s *QuizScreen) beginGame(round int) tea.Cmd {
	id := s.newID()
	s.sessionID = id
	st := s.ctrl.State()

	log.Info().Str("session_id", id).Int("high_score", st.HighScore).Msg("game started")

	return tea.Batch(
		s.fetch(round),
		s.spinner.Tick,
		s.record("game start", func(ctx context.Context, ev store.EventRepo) error {
			return ev.AppendGameEvent(ctx, store.GameEventData{
				SessionID: id,
				Action:    store.GameActionStart,
				HighScore: st.HighScore,
			})
		}),
	)
}

func (s *QuizScreen) choose(i int) tea.Cmd {
	before := s.ctrl.State().HighScore
	if !s.ctrl.Select(context.Background(), i) {
		return nil
	}
	st := s.ctrl.State()
	q := st.Question
	s.options.Reveal(i, q.CorrectIndex)

	data := store.RoundEventData{
		SessionID:     s.sessionID,
		Round:         st.Round,
		Subject:       q.Subject,
		QuestionText:  q.Text,
		SelectedIndex: i,
		CorrectIndex:  q.CorrectIndex,
		Correct:       st.Feedback == game.FeedbackCorrect,
		Fallback:      q.IsFallback(),
		Source:        q.Source,
	}
	cmds := []tea.Cmd{
		s.record("round", func(ctx context.Context, ev store.EventRepo) error {
			return ev.AppendRoundEvent(ctx, data)
		}),
	}
	if st.HighScore > before {
		cmds = append(cmds, func() tea.Msg { return screen.HighScoreMsg{Score: st.HighScore} })
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) next() tea.Cmd {
	round, ok := s.ctrl.Continue()
	if !ok {
		return nil
	}

	st := s.ctrl.State()
	if st.Phase == game.PhaseGameOver {
		log.Info().
			Str("session_id", s.sessionID).
			Int("score", st.Score).
			Int("rounds", st.Answered).
			Bool("new_high_score", st.NewHighScore).
			Msg("game over")

		data := store.GameEventData{
			SessionID:    s.sessionID,
			Action:       store.GameActionEnd,
			Score:        st.Score,
			Rounds:       st.Answered,
			Correct:      st.Correct,
			HighScore:    st.HighScore,
			NewHighScore: st.NewHighScore,
		}
		return s.record("game end", func(ctx context.Context, ev store.EventRepo) error {
			return ev.AppendGameEvent(ctx, data)
		})
	}

	return tea.Batch(s.fetch(round), s.spinner.Tick)
}

// fetch asks for the question of round in the background.
func (s *QuizScreen) fetch(round int) tea.Cmd {
	fetcher, sessionID := s.questions, s.sessionID
	return func() tea.Msg {
		var q trivia.Question
		if fetcher == nil {
			q = trivia.Fallback()
		} else {
			q = fetcher.FetchQuestion(context.Background())
		}
		return questionReadyMsg{SessionID: sessionID, Round: round, Question: q}
	}
}

// record runs fn against the event repo in the background. Failures are
// logged and otherwise ignored.
func (s *QuizScreen) record(what string, fn func(ctx context.Context, ev store.EventRepo) error) tea.Cmd {
	if s.events == nil {
		return nil
	}
	ev := s.events
	return func() tea.Msg {
		if err := fn(context.Background(), ev); err != nil {
			log.Warn().Err(err).Str("event", what).Msg("failed to record event")
		}
		return nil
	}
}
