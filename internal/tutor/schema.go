package tutor

import "github.com/abhisek/smartlearn/internal/llm"

// AnswerSchema constrains the tutor's JSON output.
var AnswerSchema = &llm.Schema{
	Name:        "tutor-answer",
	Description: "A structured explanation with one practice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The full explanation with Key Points, Step-by-Step Explanation, Real-world Example, Common Mistakes and Additional Tips sections",
			},
			"practice_question": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{
						"type":        "string",
						"description": "A multiple choice question checking the concept just explained",
					},
					"options": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"minItems":    4,
						"maxItems":    4,
						"description": "Exactly 4 distinct options",
					},
					"correct_answer": map[string]any{
						"type":        "string",
						"description": "The full text of the correct option",
					},
				},
				"required":             []any{"question", "options", "correct_answer"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"answer", "practice_question"},
		"additionalProperties": false,
	},
}
