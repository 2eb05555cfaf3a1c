package quiz

import "github.com/abhisek/smartlearn/internal/llm"

// QuestionsSchema constrains the generator's JSON output.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A titled set of multiple choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short, engaging quiz title",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, clear and unambiguous",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 distinct answer options, without A) B) prefixes",
						},
						"correct_option": map[string]any{
							"type":        "string",
							"description": "The full text of the correct option, copied exactly from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required":             []any{"question", "options", "correct_option", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}
