package trivia

import (
	"strings"
	"testing"
)

func validQuestion() *Question {
	return &Question{
		Text:         "Which ocean is the largest?",
		Options:      []string{"Atlantic", "Indian", "Arctic", "Pacific"},
		CorrectIndex: 3,
		Subject:      "Geography",
		Explanation:  "The Pacific covers about a third of Earth's surface.",
	}
}

func TestStructuralValidator(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		errMsg string
	}{
		{"valid", func(q *Question) {}, ""},
		{"empty text", func(q *Question) { q.Text = "  " }, "question text is empty"},
		{"long text", func(q *Question) { q.Text = strings.Repeat("x", 501) }, "exceeds 500"},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, "expected 4 options, got 3"},
		{"five options", func(q *Question) { q.Options = append(q.Options, "Southern") }, "expected 4 options, got 5"},
		{"blank option", func(q *Question) { q.Options[2] = "" }, "option 2 is empty"},
		{"negative index", func(q *Question) { q.CorrectIndex = -1 }, "out of range"},
		{"index too large", func(q *Question) { q.CorrectIndex = 4 }, "out of range"},
		{"long explanation", func(q *Question) { q.Explanation = strings.Repeat("x", 1001) }, "explanation exceeds"},
		{"empty explanation ok", func(q *Question) { q.Explanation = "" }, ""},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q)
			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.errMsg)
			}
			if !strings.Contains(err.Message, tt.errMsg) {
				t.Errorf("message = %q, want substring %q", err.Message, tt.errMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
			if err.Validator != "structural" {
				t.Errorf("validator = %q", err.Validator)
			}
		})
	}
}

func TestDistinctOptionsValidator(t *testing.T) {
	v := &DistinctOptionsValidator{}

	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := validQuestion()
	q.Options[1] = " pacific "
	err := v.Validate(q)
	if err == nil {
		t.Fatal("expected duplicate option error")
	}
	if !strings.Contains(err.Error(), "distinct-options") {
		t.Errorf("error = %q", err.Error())
	}
}
