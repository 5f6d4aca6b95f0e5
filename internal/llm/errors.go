package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// Failure classifies why a reply could not be used as a question.
type Failure int

const (
	// FailureSchemaMismatch is well-formed JSON that breaks the schema,
	// e.g. three options or an answer index of 4.
	FailureSchemaMismatch Failure = iota + 1

	// FailureEmptyContent is a reply with no usable text.
	FailureEmptyContent

	// FailureMalformedJSON is text that does not parse as JSON.
	FailureMalformedJSON

	// FailureRefused is a reply where the model declined the request.
	FailureRefused

	// FailureBadSchema means the request schema itself did not compile.
	FailureBadSchema
)

func (f Failure) String() string {
	switch f {
	case FailureSchemaMismatch:
		return "schema-mismatch"
	case FailureEmptyContent:
		return "empty-content"
	case FailureMalformedJSON:
		return "malformed-json"
	case FailureRefused:
		return "refused"
	case FailureBadSchema:
		return "bad-schema"
	default:
		return "unknown"
	}
}

// Retryable reports whether sampling the model again can produce a usable
// reply. Refusals and broken schemas repeat on every attempt.
func (f Failure) Retryable() bool {
	switch f {
	case FailureSchemaMismatch, FailureEmptyContent, FailureMalformedJSON:
		return true
	default:
		return false
	}
}

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Kind    Failure
	Content json.RawMessage

	// Field is the JSON pointer of the first offending value for
	// FailureSchemaMismatch, e.g. "/options". Empty for the root.
	Field string

	Err error
}

func (e *ErrInvalidResponse) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid LLM response (%s at %s): %v", e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("invalid LLM response (%s): %v", e.Kind, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// RetryableResponse reports whether err carries an invalid reply that a
// fresh attempt may fix.
func RetryableResponse(err error) bool {
	var inv *ErrInvalidResponse
	return errors.As(err, &inv) && inv.Kind.Retryable()
}

// emptyContent builds the error for a reply without content.
func emptyContent(format string, args ...any) *ErrInvalidResponse {
	return &ErrInvalidResponse{Kind: FailureEmptyContent, Err: fmt.Errorf(format, args...)}
}

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
