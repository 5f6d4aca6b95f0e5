package trivia

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write trivia questions for a quiz game aimed at smart 5th graders.

Rules:
- Generate one challenging but fair multiple-choice question in the given subject.
- Provide exactly 4 options. Exactly one is correct; the other three are plausible distractors.
- correctAnswerIndex is the 0-based position of the correct option.
- Keep the question self-contained and under 200 characters.
- The explanation is one or two friendly sentences a 10-year-old would enjoy.
- Do not repeat any question from the "already asked" list.
- Return strict JSON only.`

// buildUserMessage constructs the user message for one generation request.
func buildUserMessage(input GenerateInput, maxPrior int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)

	b.WriteString("\nAlready asked in this game:\n")
	b.WriteString(buildDedup(input.PriorQuestions, maxPrior))

	return b.String()
}

// buildDedup formats prior questions for the prompt, keeping the newest max.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
