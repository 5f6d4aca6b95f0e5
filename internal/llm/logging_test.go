package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/triviaz/internal/store"
)

// recordingRepo captures LLM events and ignores everything else.
type recordingRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"question":"?"}`),
		Usage:   Usage{InputTokens: 40, OutputTokens: 20, TotalTokens: 60},
	})
	p := WithLogging(mock, ProviderMock, repo)

	ctx := WithSubject(WithPurpose(context.Background(), PurposeQuestion), "History")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "Subject: History"}},
		Schema:   &Schema{Name: "test-object", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, PurposeQuestion, e.Purpose)
	assert.True(t, e.Success)
	assert.Equal(t, 40, e.InputTokens)
	assert.Equal(t, `{"question":"?"}`, e.ResponseBody)
	assert.Contains(t, e.RequestBody, "[system]\nsys")
	assert.Contains(t, e.RequestBody, "[user]\nSubject: History")
	assert.Contains(t, e.RequestBody, "[schema: test-object]")
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	assert.False(t, repo.events[0].Success)
	assert.Contains(t, repo.events[0].ErrorMessage, "down")
	assert.Equal(t, "unknown", repo.events[0].Purpose)
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("database is locked")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, nil)

	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: ProviderGemini}, nil)
	assert.Error(t, err)
}

func TestLogging_RecordsRejectedReply(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewQueuedMockProvider(`{"options":["A","B","C"]}`)
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{Schema: questionShape()})
	require.Error(t, err)

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.False(t, e.Success)
	assert.Equal(t, `{"options":["A","B","C"]}`, e.ResponseBody)
	assert.Contains(t, e.ErrorMessage, "schema-mismatch")
}
