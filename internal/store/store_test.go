package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/ent"
	"github.com/abhisek/triviaz/ent/gameevent"
	"github.com/abhisek/triviaz/ent/highscore"
	"github.com/abhisek/triviaz/ent/llmrequestevent"
	"github.com/abhisek/triviaz/ent/roundevent"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// newMockHighScoreRepo builds the repo on an ent client whose driver is a
// sqlmock connection.
func newMockHighScoreRepo(t *testing.T) (*highScoreRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	return newHighScoreRepo(client), mock
}

var highScoreColumns = []string{
	highscore.FieldID, highscore.FieldKey, highscore.FieldScore, highscore.FieldUpdatedAt,
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{highscore.Table, llmrequestevent.Table, gameevent.Table, roundevent.Table, "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestHighScore_EmptyIsZero(t *testing.T) {
	s := openTestStore(t)

	best, err := s.HighScores().Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, best)
}

func TestHighScore_OnlyRises(t *testing.T) {
	s := openTestStore(t)
	repo := s.HighScores()
	ctx := context.Background()

	steps := []struct {
		score    int
		improved bool
		best     int
	}{
		{10, true, 10},
		{30, true, 30},
		{20, false, 30},
		{30, false, 30},
		{40, true, 40},
	}

	for _, st := range steps {
		improved, err := repo.Record(ctx, st.score)
		require.NoError(t, err)
		assert.Equal(t, st.improved, improved, "record %d", st.score)

		best, err := repo.Best(ctx)
		require.NoError(t, err)
		assert.Equal(t, st.best, best, "after record %d", st.score)
	}
}

func TestHighScore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triviaz.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.HighScores().Record(ctx, 70)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	best, err := s.HighScores().Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 70, best)
}

func TestHighScore_Reset(t *testing.T) {
	s := openTestStore(t)
	repo := s.HighScores()
	ctx := context.Background()

	_, err := repo.Record(ctx, 50)
	require.NoError(t, err)
	require.NoError(t, repo.Reset(ctx))

	best, err := repo.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	improved, err := repo.Record(ctx, 10)
	require.NoError(t, err)
	assert.True(t, improved)
}

func TestHighScore_StoredThroughEntClient(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.HighScores().Record(ctx, 60)
	require.NoError(t, err)

	row, err := s.Client().HighScore.Query().
		Where(highscore.Key(highScoreKey)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, row.Score)
	assert.NotZero(t, row.UpdatedAt)

	_, err = s.Client().HighScore.Create().
		SetKey("other").
		SetScore(-1).
		SetUpdatedAt(1).
		Save(ctx)
	assert.True(t, ent.IsValidationError(err), "negative scores are rejected: %v", err)
}

func TestHighScore_ReadErrorPropagates(t *testing.T) {
	repo, mock := newMockHighScoreRepo(t)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Best(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read high score")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighScore_LowerScoreSkipsWrite(t *testing.T) {
	repo, mock := newMockHighScoreRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(highScoreColumns).AddRow(1, highScoreKey, 50, int64(1700000000000)))

	improved, err := repo.Record(context.Background(), 20)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighScore_RaiseUpdatesExistingRow(t *testing.T) {
	repo, mock := newMockHighScoreRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(highScoreColumns).AddRow(1, highScoreKey, 50, int64(1700000000000)))
	mock.ExpectExec("UPDATE `high_scores` SET").WillReturnResult(sqlmock.NewResult(0, 1))

	improved, err := repo.Record(context.Background(), 80)
	require.NoError(t, err)
	assert.True(t, improved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighScore_WriteErrorPropagates(t *testing.T) {
	repo, mock := newMockHighScoreRepo(t)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(highScoreColumns))
	mock.ExpectQuery("INSERT INTO `high_scores`").WillReturnError(errors.New("read-only database"))

	improved, err := repo.Record(context.Background(), 20)
	require.Error(t, err)
	assert.False(t, improved)
	assert.Contains(t, err.Error(), "write high score")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHighScore_ResetErrorPropagates(t *testing.T) {
	repo, mock := newMockHighScoreRepo(t)

	mock.ExpectExec("DELETE FROM `high_scores`").WillReturnError(errors.New("database is locked"))

	err := repo.Reset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset high score")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLLMEvents_AppendQueryGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "question-gen",
		InputTokens: 120, OutputTokens: 80, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nhi", ResponseBody: `{"question":"?"}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini-2.5-flash", Model: "gemini-2.5-flash", Purpose: "question-gen",
		LatencyMs: 300, Success: false, ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.True(t, events[1].Success)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.InputTokens)
	assert.Equal(t, `{"question":"?"}`, got.ResponseBody)
	assert.False(t, got.Timestamp.IsZero())

	_, err = repo.GetLLMEvent(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLLMEvents_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Model: "gpt-4o-mini", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: false},
		{Model: "gemini-2.5-flash", Purpose: "preview", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, "preview", byPurpose[0].Key)
	assert.Equal(t, "question-gen", byPurpose[1].Key)
	assert.Equal(t, 2, byPurpose[1].Calls)
	assert.Equal(t, 1, byPurpose[1].Failures)
	assert.Equal(t, 200, byPurpose[1].InputTokens)
	assert.Equal(t, int64(300), byPurpose[1].AvgLatencyMs)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Key)
	assert.Equal(t, 15, byModel[0].InputTokens+byModel[0].OutputTokens)
}

func TestGameEvents_OnlyFinishedGamesListed(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendGameEvent(ctx, GameEventData{SessionID: "a", Action: GameActionStart, HighScore: 10}))
	require.NoError(t, repo.AppendGameEvent(ctx, GameEventData{
		SessionID: "a", Action: GameActionEnd, Score: 40, Rounds: 7, Correct: 4, HighScore: 40, NewHighScore: true,
	}))
	require.NoError(t, repo.AppendGameEvent(ctx, GameEventData{SessionID: "b", Action: GameActionStart, HighScore: 40}))

	games, err := repo.QueryGames(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "a", games[0].SessionID)
	assert.Equal(t, 40, games[0].Score)
	assert.True(t, games[0].NewHighScore)

	err = repo.AppendGameEvent(ctx, GameEventData{SessionID: "c", Action: "pause"})
	assert.Error(t, err)
}

func TestRoundEvents_SubjectAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rounds := []RoundEventData{
		{SessionID: "a", Round: 1, Subject: "Geography", QuestionText: "q1", SelectedIndex: 0, CorrectIndex: 0, Correct: true},
		{SessionID: "a", Round: 2, Subject: "Geography", QuestionText: "q2", SelectedIndex: 1, CorrectIndex: 2, Correct: false},
		{SessionID: "a", Round: 3, Subject: "Science", QuestionText: "q3", SelectedIndex: 1, CorrectIndex: 1, Correct: true, Fallback: true},
	}
	for _, r := range rounds {
		require.NoError(t, repo.AppendRoundEvent(ctx, r))
	}

	stats, err := repo.SubjectAccuracy(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, SubjectAccuracy{Subject: "Geography", Answered: 2, Correct: 1}, stats[0])
	assert.Equal(t, SubjectAccuracy{Subject: "Science", Answered: 1, Correct: 1}, stats[1])
	assert.InDelta(t, 0.5, stats[0].Ratio(), 1e-9)
	assert.Zero(t, SubjectAccuracy{}.Ratio())
}

func TestEvents_QueryOptsFilterBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "ollama", Model: "llama3", Purpose: purpose, Success: true,
		}))
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	first, last := all[3].Sequence, all[0].Sequence

	between, err := repo.QueryLLMEvents(ctx, QueryOpts{After: first, Before: last})
	require.NoError(t, err)
	require.Len(t, between, 2)
	assert.Equal(t, "c", between[0].Purpose)
	assert.Equal(t, "b", between[1].Purpose)

	future, err := repo.QueryLLMEvents(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)

	past, err := repo.QueryLLMEvents(ctx, QueryOpts{To: time.Now().Add(time.Hour), Limit: 3})
	require.NoError(t, err)
	assert.Len(t, past, 3)
}

func TestGameEvents_StoredWithTypedAction(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.EventRepo().AppendGameEvent(ctx, GameEventData{SessionID: "a", Action: GameActionStart}))
	require.NoError(t, s.EventRepo().AppendGameEvent(ctx, GameEventData{SessionID: "a", Action: GameActionEnd, Score: 20}))

	starts, err := s.Client().GameEvent.Query().
		Where(gameevent.ActionEQ(gameevent.ActionStart)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, starts)

	end, err := s.Client().GameEvent.Query().
		Where(gameevent.ActionEQ(gameevent.ActionEnd)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, end.Score)
	assert.Greater(t, end.Sequence, int64(1))
}

func TestRoundEvents_IndexOutOfRangeRejected(t *testing.T) {
	s := openTestStore(t)

	err := s.EventRepo().AppendRoundEvent(context.Background(), RoundEventData{
		SessionID: "a", Round: 1, Subject: "Science", QuestionText: "q", SelectedIndex: 4, CorrectIndex: 0,
	})
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err))
}
