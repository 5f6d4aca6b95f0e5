package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question": "What is the capital of Australia?",
		"options": ["Sydney", "Canberra", "Melbourne", "Perth"],
		"correctAnswerIndex": 1,
		"subject": "Geography",
		"explanation": "Canberra was built to be the capital as a compromise between Sydney and Melbourne."
	}`)
}

func newTestProvider(source Source, cfg Config) *Provider {
	p := NewProvider(source, cfg)
	p.pick = func(int) int { return 3 } // Geography
	return p
}

// stubSource returns queued results in order.
type stubSource struct {
	results []stubResult
	inputs  []GenerateInput
}

type stubResult struct {
	q     *Question
	err   error
	panic bool
	block bool
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	s.inputs = append(s.inputs, input)
	if len(s.results) == 0 {
		return nil, errors.New("no more results")
	}
	r := s.results[0]
	s.results = s.results[1:]
	if r.panic {
		panic("boom")
	}
	if r.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return r.q, r.err
}

func TestFetchQuestion_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

	q := p.FetchQuestion(context.Background())

	assert.Equal(t, "What is the capital of Australia?", q.Text)
	assert.Equal(t, 1, q.CorrectIndex)
	assert.Equal(t, SourceLLM, q.Source)
	assert.False(t, q.IsFallback())

	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Subject: Geography")
	assert.Equal(t, 0.8, mock.Calls[0].Temperature)
	assert.Equal(t, QuestionSchema, mock.Calls[0].Schema)
}

func TestFetchQuestion_ProviderFailureServesFallback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

	q := p.FetchQuestion(context.Background())

	assert.Equal(t, Fallback(), q)
	assert.Equal(t, 1, mock.CallCount(), "transport errors are not retried here")
}

func TestFetchQuestion_MalformedPayloadsServeFallback(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"index out of range", `{"question":"Q?","options":["a","b","c","d"],"correctAnswerIndex":5,"subject":"Math","explanation":"e"}`},
		{"three options", `{"question":"Q?","options":["a","b","c"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`},
		{"empty question", `{"question":"","options":["a","b","c","d"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`},
		{"duplicate options", `{"question":"Q?","options":["a","A","c","d"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`},
		{"not json", `I am not JSON`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(
				llm.MockResponse{Content: json.RawMessage(tt.content)},
				llm.MockResponse{Content: json.RawMessage(tt.content)},
			)
			p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

			q := p.FetchQuestion(context.Background())
			assert.Equal(t, Fallback(), q)
		})
	}
}

func TestFetchQuestion_RetriesRetryableReplies(t *testing.T) {
	valid := string(validQuestionJSON())

	tests := []struct {
		name  string
		first string
	}{
		{"empty reply", ""},
		{"whitespace reply", "\n  "},
		{"prose reply", "Here's a fun one about Australia!"},
		{"three options", `{"question":"Q?","options":["a","b","c"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`},
		{"index 4", `{"question":"Q?","options":["a","b","c","d"],"correctAnswerIndex":4,"subject":"Math","explanation":"e"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewQueuedMockProvider(tt.first, valid)
			p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

			q := p.FetchQuestion(context.Background())

			assert.False(t, q.IsFallback())
			assert.Equal(t, "Canberra", q.CorrectOption())
			assert.Equal(t, 2, mock.CallCount())
			assert.Zero(t, mock.Pending())
		})
	}
}

func TestFetchQuestion_RetryableRepliesExhaustAttempts(t *testing.T) {
	short := `{"question":"Q?","options":["a","b"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`
	mock := llm.NewQueuedMockProvider(short, "", string(validQuestionJSON()))

	cfg := DefaultConfig()
	cfg.MaxAttempts = 2
	p := newTestProvider(NewLLMGenerator(mock), cfg)

	q := p.FetchQuestion(context.Background())

	assert.Equal(t, Fallback(), q)
	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, 1, mock.Pending(), "the third reply is never requested")
}

func TestFetchQuestion_RefusalNotRetried(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{Kind: llm.FailureRefused, Err: errors.New("declined")}},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

	q := p.FetchQuestion(context.Background())

	assert.Equal(t, Fallback(), q)
	assert.Equal(t, 1, mock.CallCount())
}

func TestFetchQuestion_RetriesInvalidThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"question":"Q?","options":["a","b"],"correctAnswerIndex":0,"subject":"Math","explanation":"e"}`)},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	p := newTestProvider(NewLLMGenerator(mock), DefaultConfig())

	q := p.FetchQuestion(context.Background())

	assert.False(t, q.IsFallback())
	assert.Equal(t, 2, mock.CallCount())
}

func TestFetchQuestion_NilSource(t *testing.T) {
	p := NewProvider(nil, DefaultConfig())
	assert.Equal(t, Fallback(), p.FetchQuestion(context.Background()))
	assert.Equal(t, SourceFallback, p.SourceName())
}

func TestFetchQuestion_PanickingSource(t *testing.T) {
	src := &stubSource{results: []stubResult{{panic: true}}}
	p := newTestProvider(src, DefaultConfig())

	assert.Equal(t, Fallback(), p.FetchQuestion(context.Background()))
}

func TestFetchQuestion_NilQuestionWithoutError(t *testing.T) {
	src := &stubSource{results: []stubResult{{}}}
	p := newTestProvider(src, DefaultConfig())

	assert.Equal(t, Fallback(), p.FetchQuestion(context.Background()))
}

func TestFetchQuestion_Timeout(t *testing.T) {
	src := &stubSource{results: []stubResult{{block: true}}}
	cfg := DefaultConfig()
	cfg.Timeout = 10 * time.Millisecond
	p := newTestProvider(src, cfg)

	start := time.Now()
	q := p.FetchQuestion(context.Background())

	assert.Equal(t, Fallback(), q)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchQuestion_RemembersServedQuestions(t *testing.T) {
	mk := func(text string) stubResult {
		return stubResult{q: &Question{
			Text:         text,
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
			Subject:      "Geography",
		}}
	}
	src := &stubSource{results: []stubResult{mk("Q1"), mk("Q2"), mk("Q3"), mk("Q4")}}
	cfg := DefaultConfig()
	cfg.History = 2
	p := newTestProvider(src, cfg)

	for i := 0; i < 4; i++ {
		q := p.FetchQuestion(context.Background())
		assert.Equal(t, "stub", q.Source)
	}

	require.Len(t, src.inputs, 4)
	assert.Empty(t, src.inputs[0].PriorQuestions)
	assert.Equal(t, []string{"Q1"}, src.inputs[1].PriorQuestions)
	assert.Equal(t, []string{"Q1", "Q2"}, src.inputs[2].PriorQuestions)
	assert.Equal(t, []string{"Q2", "Q3"}, src.inputs[3].PriorQuestions)
}

func TestFetchQuestion_FallbackNotRemembered(t *testing.T) {
	src := &stubSource{results: []stubResult{{err: errors.New("down")}, {err: errors.New("down")}}}
	p := newTestProvider(src, DefaultConfig())

	p.FetchQuestion(context.Background())
	p.FetchQuestion(context.Background())

	assert.Empty(t, src.inputs[1].PriorQuestions)
}

func TestFallback_IsFreshCopy(t *testing.T) {
	a := Fallback()
	a.Options[0] = "Pluto"

	b := Fallback()
	assert.Equal(t, "Earth", b.Options[0])
	assert.Equal(t, "Mars", b.CorrectOption())
	assert.True(t, b.IsCorrect(1))
	assert.False(t, b.IsCorrect(0))
	assert.True(t, strings.HasPrefix(b.Text, "Which planet"))
}
