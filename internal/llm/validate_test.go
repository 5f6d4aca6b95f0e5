package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// questionShape mirrors the multiple-choice question schema: four options
// and an answer index from 0 to 3.
func questionShape() *Schema {
	return &Schema{
		Name:        "test-question",
		Description: "A multiple-choice question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 4,
					"maxItems": 4,
				},
				"correctAnswerIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
				"explanation":        map[string]any{"type": "string"},
			},
			"required":             []any{"question", "options", "correctAnswerIndex"},
			"additionalProperties": false,
		},
	}
}

func invalidResponse(t *testing.T, err error) *ErrInvalidResponse {
	t.Helper()
	var inv *ErrInvalidResponse
	require.True(t, errors.As(err, &inv), "expected *ErrInvalidResponse, got %T (%v)", err, err)
	return inv
}

func TestValidateResponse_ValidQuestion(t *testing.T) {
	raw := json.RawMessage(`{"question":"Which planet is known as the Red Planet?","options":["Earth","Mars","Jupiter","Venus"],"correctAnswerIndex":1,"explanation":"Rust."}`)
	assert.NoError(t, validateResponse(questionShape(), raw))
}

func TestValidateResponse_OptionalFieldMayBeOmitted(t *testing.T) {
	raw := json.RawMessage(`{"question":"2+2?","options":["1","2","3","4"],"correctAnswerIndex":3}`)
	assert.NoError(t, validateResponse(questionShape(), raw))
}

func TestValidateResponse_Classifies(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		kind      Failure
		field     string
		retryable bool
	}{
		{
			name:      "three options",
			raw:       `{"question":"q","options":["a","b","c"],"correctAnswerIndex":0}`,
			kind:      FailureSchemaMismatch,
			field:     "/options",
			retryable: true,
		},
		{
			name:      "index past the last option",
			raw:       `{"question":"q","options":["a","b","c","d"],"correctAnswerIndex":4}`,
			kind:      FailureSchemaMismatch,
			field:     "/correctAnswerIndex",
			retryable: true,
		},
		{
			name:      "index as text",
			raw:       `{"question":"q","options":["a","b","c","d"],"correctAnswerIndex":"B"}`,
			kind:      FailureSchemaMismatch,
			field:     "/correctAnswerIndex",
			retryable: true,
		},
		{
			name:      "missing question",
			raw:       `{"options":["a","b","c","d"],"correctAnswerIndex":0}`,
			kind:      FailureSchemaMismatch,
			retryable: true,
		},
		{
			name:      "empty",
			raw:       ``,
			kind:      FailureEmptyContent,
			retryable: true,
		},
		{
			name:      "whitespace only",
			raw:       " \n\t",
			kind:      FailureEmptyContent,
			retryable: true,
		},
		{
			name:      "prose instead of JSON",
			raw:       `Sure! Here is a question about Mars.`,
			kind:      FailureMalformedJSON,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionShape(), json.RawMessage(tt.raw))
			inv := invalidResponse(t, err)
			assert.Equal(t, tt.kind, inv.Kind)
			assert.Equal(t, tt.field, inv.Field)
			assert.Equal(t, tt.retryable, RetryableResponse(err))
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestValidateResponse_BrokenSchemaNotRetryable(t *testing.T) {
	schema := &Schema{
		Name:       "test-broken",
		Definition: map[string]any{"type": "object", "minProperties": "two"},
	}

	err := validateResponse(schema, json.RawMessage(`{}`))
	inv := invalidResponse(t, err)
	assert.Equal(t, FailureBadSchema, inv.Kind)
	assert.False(t, RetryableResponse(err))
}

func TestValidateResponse_NilSchema(t *testing.T) {
	assert.NoError(t, validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)))
}

func TestFailure_StringAndRetryable(t *testing.T) {
	assert.Equal(t, "schema-mismatch", FailureSchemaMismatch.String())
	assert.Equal(t, "empty-content", FailureEmptyContent.String())
	assert.Equal(t, "refused", FailureRefused.String())
	assert.Equal(t, "unknown", Failure(0).String())

	assert.False(t, FailureRefused.Retryable())
	assert.False(t, Failure(0).Retryable())
	assert.False(t, RetryableResponse(&ErrRateLimit{Err: errors.New("429")}))
}

func TestErrInvalidResponse_MessageNamesField(t *testing.T) {
	err := &ErrInvalidResponse{Kind: FailureSchemaMismatch, Field: "/options", Err: errors.New("minItems")}
	assert.Equal(t, "invalid LLM response (schema-mismatch at /options): minItems", err.Error())
}
