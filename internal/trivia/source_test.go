package trivia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/llm"
	"github.com/abhisek/triviaz/internal/opentdb"
)

func TestLLMGenerator_ParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := NewLLMGenerator(mock, WithTemperature(0.5), WithMaxTokens(300))

	q, err := gen.Generate(context.Background(), GenerateInput{Subject: "Geography"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Sydney", "Canberra", "Melbourne", "Perth"}, q.Options)
	assert.Equal(t, "Geography", q.Subject)
	assert.Equal(t, SourceLLM, q.Source)
	assert.Equal(t, "llm:mock", gen.Name())

	req := mock.Calls[0]
	assert.Equal(t, 0.5, req.Temperature)
	assert.Equal(t, 300, req.MaxTokens)
	assert.Equal(t, systemPrompt, req.System)
}

func TestLLMGenerator_SubjectDefaultsToRequested(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"question":"Q?","options":["a","b","c","d"],"correctAnswerIndex":0,"subject":"","explanation":"e"}`,
	)})
	gen := NewLLMGenerator(mock)

	q, err := gen.Generate(context.Background(), GenerateInput{Subject: "Mathematics"})
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", q.Subject)
}

func TestLLMGenerator_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	gen := NewLLMGenerator(mock)

	_, err := gen.Generate(context.Background(), GenerateInput{Subject: "History"})
	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestLLMGenerator_PurposeLabel(t *testing.T) {
	var seen, subject string
	gen := NewLLMGenerator(purposeSpy{seen: &seen, subject: &subject})

	_, _ = gen.Generate(context.Background(), GenerateInput{Subject: "History"})
	assert.Equal(t, llm.PurposeQuestion, seen)
	assert.Equal(t, "History", subject)
}

func TestLLMGenerator_UnparsableReplyIsClassified(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    llm.Failure
	}{
		{"empty", "", llm.FailureEmptyContent},
		{"prose", "The answer is Mars.", llm.FailureMalformedJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})

			_, err := NewLLMGenerator(mock).Generate(context.Background(), GenerateInput{Subject: "Science"})
			var inv *llm.ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.kind, inv.Kind)
			assert.True(t, llm.RetryableResponse(err))
		})
	}
}

type purposeSpy struct{ seen, subject *string }

func (p purposeSpy) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	*p.seen = llm.PurposeFrom(ctx)
	*p.subject = llm.SubjectFrom(ctx)
	return nil, errors.New("spy")
}

func (p purposeSpy) ModelID() string { return "spy" }

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Subject: "Geography"}, 5)
	assert.Contains(t, msg, "Subject: Geography")
	assert.Contains(t, msg, "Already asked in this game:\nNone")

	msg = buildUserMessage(GenerateInput{
		Subject:        "History (World & US)",
		PriorQuestions: []string{"Q1", "Q2", "Q3"},
	}, 2)
	assert.NotContains(t, msg, "Q1")
	assert.Contains(t, msg, "1. Q2\n2. Q3")
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func openTDBStub(t *testing.T, body string, seen *http.Request) *opentdb.Client {
	t.Helper()
	return opentdb.NewClient(&http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		if seen != nil {
			*seen = *r
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(body))),
			Header:     make(http.Header),
		}, nil
	})})
}

func TestOpenTDBSource_BuildsQuestion(t *testing.T) {
	var seen http.Request
	client := openTDBStub(t, `{"response_code":0,"results":[{
		"type":"multiple","difficulty":"easy","category":"Geography",
		"question":"What is the capital of France?",
		"correct_answer":"Paris",
		"incorrect_answers":["Lyon","Marseille","Nice"]
	}]}`, &seen)

	src := NewOpenTDBSource(client, "easy")
	// Reverse instead of shuffling so the outcome is predictable.
	src.shuffle = func(n int, swap func(i, j int)) {
		for i := 0; i < n/2; i++ {
			swap(i, n-1-i)
		}
	}

	q, err := src.Generate(context.Background(), GenerateInput{Subject: "Geography (World)"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Nice", "Marseille", "Lyon", "Paris"}, q.Options)
	assert.Equal(t, 3, q.CorrectIndex)
	assert.Equal(t, "Paris", q.CorrectOption())
	assert.Equal(t, SourceOpenTDB, q.Source)
	assert.Equal(t, "Geography", q.Subject)
	assert.True(t, strings.Contains(q.Explanation, "Paris"))

	query := seen.URL.Query()
	assert.Equal(t, "22", query.Get("category"))
	assert.Equal(t, "multiple", query.Get("type"))
	assert.Equal(t, "easy", query.Get("difficulty"))
}

func TestOpenTDBSource_MissingCategoryKeepsSubject(t *testing.T) {
	client := openTDBStub(t, `{"response_code":0,"results":[{
		"type":"multiple","category":"",
		"question":"Which planet is known as the Red Planet?",
		"correct_answer":"Mars",
		"incorrect_answers":["Venus","Jupiter","Saturn"]
	}]}`, nil)

	q, err := NewOpenTDBSource(client, "").Generate(context.Background(), GenerateInput{Subject: "Astronomy"})
	require.NoError(t, err)
	assert.Equal(t, "Astronomy", q.Subject)
}

func TestOpenTDBSource_EmptyResults(t *testing.T) {
	src := NewOpenTDBSource(openTDBStub(t, `{"response_code":0,"results":[]}`, nil), "")

	_, err := src.Generate(context.Background(), GenerateInput{Subject: "Mathematics"})
	assert.Error(t, err)
}

func TestOpenTDBSource_ThroughProvider(t *testing.T) {
	client := openTDBStub(t, `{"response_code":0,"results":[{
		"type":"multiple","category":"Science: Mathematics",
		"question":"What is 7 x 8?",
		"correct_answer":"56",
		"incorrect_answers":["54","58","64"]
	}]}`, nil)

	p := newTestProvider(NewOpenTDBSource(client, ""), DefaultConfig())
	q := p.FetchQuestion(context.Background())

	assert.Equal(t, "What is 7 x 8?", q.Text)
	assert.Equal(t, "56", q.CorrectOption())
	assert.Len(t, q.Options, OptionCount)
	assert.Equal(t, "Science: Mathematics", q.Subject)
}

func TestOpenTDBSource_ProviderLabelsByReturnedCategory(t *testing.T) {
	var seen http.Request
	client := openTDBStub(t, `{"response_code":0,"results":[{
		"type":"multiple","category":"Science &amp; Nature",
		"question":"What is the chemical symbol for gold?",
		"correct_answer":"Au",
		"incorrect_answers":["Ag","Gd","Go"]
	}]}`, &seen)

	cfg := DefaultConfig()
	cfg.Subjects = []string{"Science (Biology, Physics, Earth Science)"}
	p := NewProvider(NewOpenTDBSource(client, ""), cfg)

	q := p.FetchQuestion(context.Background())
	assert.Equal(t, SourceOpenTDB, q.Source)
	assert.Equal(t, "Science & Nature", q.Subject)
	assert.Equal(t, "Au", q.CorrectOption())
	assert.Equal(t, "17", seen.URL.Query().Get("category"))
}

func TestCategoryFor(t *testing.T) {
	tests := map[string]int{
		"Mathematics": opentdb.CategoryMathematics,
		"Science (Biology, Physics, Earth Science)":   opentdb.CategoryScienceNature,
		"History (World & US)":                        opentdb.CategoryHistory,
		"Geography":                                   opentdb.CategoryGeography,
		"English Language Arts (Grammar, Literature)": opentdb.CategoryBooks,
		"General Knowledge":                           opentdb.CategoryGeneralKnowledge,
		"Astrology":                                   0,
	}
	for subject, want := range tests {
		assert.Equal(t, want, categoryFor(subject), subject)
	}
}
