package trivia

import (
	"fmt"
	"strings"
)

// Validator checks a question before it reaches the player.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether asking the source again is likely to help
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators is the standard chain run on every fetched question.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&DistinctOptionsValidator{},
	}
}

// StructuralValidator checks the shape of a question: non-empty text,
// exactly OptionCount non-empty options and an in-range answer index.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if strings.TrimSpace(q.Text) == "" {
		return fail("question text is empty")
	}
	if len(q.Text) > 500 {
		return fail("question text exceeds 500 characters")
	}
	if len(q.Options) != OptionCount {
		return fail(fmt.Sprintf("expected %d options, got %d", OptionCount, len(q.Options)))
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fail(fmt.Sprintf("option %d is empty", i))
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return fail(fmt.Sprintf("correct answer index %d out of range 0-%d", q.CorrectIndex, OptionCount-1))
	}
	if len(q.Explanation) > 1000 {
		return fail("explanation exceeds 1000 characters")
	}
	return nil
}

// DistinctOptionsValidator rejects questions whose options repeat, which
// would make the correct answer ambiguous.
type DistinctOptionsValidator struct{}

func (v *DistinctOptionsValidator) Name() string { return "distinct-options" }

func (v *DistinctOptionsValidator) Validate(q *Question) *ValidationError {
	seen := make(map[string]int, len(q.Options))
	for i, o := range q.Options {
		key := strings.ToLower(strings.TrimSpace(o))
		if j, dup := seen[key]; dup {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("options %d and %d are the same (%q)", j, i, o),
				Retryable: true,
			}
		}
		seen[key] = i
	}
	return nil
}
