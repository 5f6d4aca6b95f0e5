package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(&http.Client{Transport: rt})
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestFetchQuestionsUsesDefaultAmountWhenNonPositive(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(`{"response_code":0,"results":[]}`), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
	if seenAmount != "10" {
		t.Fatalf("expected default amount 10, got %q", seenAmount)
	}
}

func TestFetchSendsQueryParameters(t *testing.T) {
	var seen *http.Request

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return jsonResponse(`{"response_code":0,"results":[]}`), nil
	}))

	_, err := client.Fetch(context.Background(), Query{Amount: 1, Category: CategoryGeography, Difficulty: "easy", Type: "multiple"})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	q := seen.URL.Query()
	if q.Get("amount") != "1" || q.Get("category") != "22" || q.Get("difficulty") != "easy" || q.Get("type") != "multiple" {
		t.Fatalf("unexpected query: %s", seen.URL.RawQuery)
	}
}

func TestFetchDecodesHTMLEntities(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(`{"response_code":0,"results":[{
			"type":"multiple","difficulty":"easy","category":"Science &amp; Nature",
			"question":"What is the &quot;Red Planet&quot;?",
			"correct_answer":"Mars",
			"incorrect_answers":["Earth","Jupiter","Venus&#039;s twin"]
		}]}`), nil
	}))

	questions, err := client.Fetch(context.Background(), Query{Amount: 1})
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.Question != `What is the "Red Planet"?` {
		t.Fatalf("question not unescaped: %q", q.Question)
	}
	if q.Category != "Science & Nature" {
		t.Fatalf("category not unescaped: %q", q.Category)
	}
	if q.IncorrectAnswers[2] != "Venus's twin" {
		t.Fatalf("answer not unescaped: %q", q.IncorrectAnswers[2])
	}
}

func TestFetchQuestionsPropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		resp := http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     make(http.Header),
		}
		return &resp, nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 5); err == nil {
		t.Fatalf("expected error for non-200 status")
	}
}

func TestFetchQuestionsJSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse("not-json"), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), 3); err == nil {
		t.Fatalf("expected JSON decode error")
	}
}

func TestFetchQuestionsNonZeroResponseCode(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		payload := apiResponse{
			ResponseCode: CodeRateLimit,
			Results: []RawQuestion{
				{Question: "ignored"},
			},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		return jsonResponse(string(encoded)), nil
	}))

	_, err := client.FetchQuestions(context.Background(), 3)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != CodeRateLimit {
		t.Fatalf("expected code %d, got %d", CodeRateLimit, apiErr.Code)
	}
}

func TestFetchTransportError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))

	if _, err := client.FetchQuestions(context.Background(), 1); err == nil {
		t.Fatalf("expected transport error")
	}
}
