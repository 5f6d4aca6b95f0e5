// Package opentdb is a small client for the Open Trivia Database API.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultBaseURL is the public API endpoint.
	DefaultBaseURL = "https://opentdb.com/api.php"
	defaultAmount  = 10
)

// Response codes documented by the API.
const (
	CodeSuccess       = 0
	CodeNoResults     = 1
	CodeInvalidParam  = 2
	CodeTokenNotFound = 3
	CodeTokenEmpty    = 4
	CodeRateLimit     = 5
)

// Category IDs used by the question source.
const (
	CategoryGeneralKnowledge = 9
	CategoryBooks            = 10
	CategoryScienceNature    = 17
	CategoryMathematics      = 19
	CategoryGeography        = 22
	CategoryHistory          = 23
)

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

// APIError reports a non-zero response_code.
type APIError struct {
	Code int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("opentdb response_code=%d", e.Code)
}

// Query narrows a fetch. Zero values mean "any".
type Query struct {
	Amount     int
	Category   int
	Difficulty string // "easy", "medium" or "hard"
	Type       string // "multiple" or "boolean"
}

// Client talks to the Open Trivia Database.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a client using hc, or http.DefaultClient when hc is nil.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc, baseURL: DefaultBaseURL}
}

// WithBaseURL returns a copy of c that targets baseURL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	cp := *c
	cp.baseURL = baseURL
	return &cp
}

// FetchQuestions returns amount questions of any category and type.
func (c *Client) FetchQuestions(ctx context.Context, amount int) ([]RawQuestion, error) {
	return c.Fetch(ctx, Query{Amount: amount})
}

// Fetch returns questions matching q with HTML entities decoded.
func (c *Client) Fetch(ctx context.Context, q Query) ([]RawQuestion, error) {
	amount := q.Amount
	if amount <= 0 {
		amount = defaultAmount
	}

	params := url.Values{}
	params.Set("amount", strconv.Itoa(amount))
	if q.Category > 0 {
		params.Set("category", strconv.Itoa(q.Category))
	}
	if q.Difficulty != "" {
		params.Set("difficulty", q.Difficulty)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}

	if payload.ResponseCode != CodeSuccess {
		return nil, &APIError{Code: payload.ResponseCode}
	}

	for i := range payload.Results {
		payload.Results[i] = unescape(payload.Results[i])
	}
	return payload.Results, nil
}

// unescape decodes the HTML entities the API uses by default.
func unescape(q RawQuestion) RawQuestion {
	q.Category = html.UnescapeString(q.Category)
	q.Question = html.UnescapeString(q.Question)
	q.CorrectAnswer = html.UnescapeString(q.CorrectAnswer)
	incorrect := make([]string, len(q.IncorrectAnswers))
	for i, a := range q.IncorrectAnswers {
		incorrect[i] = html.UnescapeString(a)
	}
	q.IncorrectAnswers = incorrect
	return q
}
