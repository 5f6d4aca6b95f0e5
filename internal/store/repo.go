package store

import (
	"context"
	"errors"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned when a lookup by ID matches no row.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Columns shared by every event table through the event mixin.
const (
	fieldSequence  = "sequence"
	fieldTimestamp = "timestamp"
)

// eventFilters turns o into predicates for any event entity. Ordering and
// the limit are applied by the caller on its typed query.
func eventFilters[P ~func(*entsql.Selector)](o QueryOpts) []P {
	var ps []P
	if o.After > 0 {
		ps = append(ps, P(entsql.FieldGT(fieldSequence, o.After)))
	}
	if o.Before > 0 {
		ps = append(ps, P(entsql.FieldLT(fieldSequence, o.Before)))
	}
	if !o.From.IsZero() {
		ps = append(ps, P(entsql.FieldGTE(fieldTimestamp, o.From.UnixMilli())))
	}
	if !o.To.IsZero() {
		ps = append(ps, P(entsql.FieldLTE(fieldTimestamp, o.To.UnixMilli())))
	}
	return ps
}

// HighScoreRepo persists the best score ever reached.
type HighScoreRepo interface {
	// Best returns the stored high score, or 0 when none was recorded.
	Best(ctx context.Context) (int, error)

	// Record stores score when it beats the stored value and reports
	// whether it did. Lower scores leave the stored value untouched.
	Record(ctx context.Context, score int) (bool, error)

	// Reset clears the stored high score.
	Reset(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls for one grouping key (purpose or model).
type LLMUsage struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Game lifecycle actions.
const (
	GameActionStart = "start"
	GameActionEnd   = "end"
)

// GameEventData records the start or end of one game.
type GameEventData struct {
	SessionID    string
	Action       string
	Score        int
	Rounds       int
	Correct      int
	HighScore    int
	NewHighScore bool
}

// GameEvent is a stored game lifecycle event.
type GameEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GameEventData
}

// RoundEventData records one answered question.
type RoundEventData struct {
	SessionID     string
	Round         int
	Subject       string
	QuestionText  string
	SelectedIndex int
	CorrectIndex  int
	Correct       bool
	Fallback      bool
	Source        string
}

// SubjectAccuracy summarizes answered rounds for one subject.
type SubjectAccuracy struct {
	Subject  string
	Answered int
	Correct  int
}

// Ratio returns the fraction of correct answers, or 0 when nothing was
// answered.
func (s SubjectAccuracy) Ratio() float64 {
	if s.Answered == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Answered)
}

// EventRepo provides append and query access to game and LLM events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendGameEvent records a game start or end.
	AppendGameEvent(ctx context.Context, data GameEventData) error
	// QueryGames returns finished games, newest first.
	QueryGames(ctx context.Context, opts QueryOpts) ([]GameEvent, error)

	// AppendRoundEvent records one answered question.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error
	SubjectAccuracy(ctx context.Context) ([]SubjectAccuracy, error)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
