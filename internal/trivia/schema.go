package trivia

import "github.com/abhisek/triviaz/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "trivia-question",
	Description: "A single multiple-choice trivia question with four options and an explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The trivia question suitable for a 5th grader.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    OptionCount,
				"maxItems":    OptionCount,
				"description": "A list of 4 possible answers. One is correct, three are distractors.",
			},
			"correctAnswerIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     OptionCount - 1,
				"description": "The index (0-3) of the correct answer in the options array.",
			},
			"subject": map[string]any{
				"type":        "string",
				"description": "The subject of the question.",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A brief, fun explanation of why the answer is correct.",
			},
		},
		"required":             []any{"question", "options", "correctAnswerIndex", "subject", "explanation"},
		"additionalProperties": false,
	},
}
