package exercise

import "github.com/mkeyran/language-tutor/internal/llm"

// ExerciseSchema defines the JSON schema for exercise generation
// responses.
var ExerciseSchema = &llm.Schema{
	Name:        "writing-exercise",
	Description: "A single writing exercise with optional hints",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exercise": map[string]any{
				"type":        "string",
				"description": "The exercise task shown to the learner",
			},
			"hints": map[string]any{
				"type":        "string",
				"description": "Optional markdown hints and useful phrases. Empty string if none.",
			},
		},
		"required":             []any{"exercise", "hints"},
		"additionalProperties": false,
	},
}

// HintsSchema defines the JSON schema for hint generation on custom
// exercises.
var HintsSchema = &llm.Schema{
	Name:        "exercise-hints",
	Description: "Hints and useful phrases for a writing exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hints": map[string]any{
				"type":        "string",
				"description": "Markdown hints and useful phrases. Empty string if none.",
			},
		},
		"required":             []any{"hints"},
		"additionalProperties": false,
	},
}

// FeedbackSchema defines the JSON schema for writing check responses.
var FeedbackSchema = &llm.Schema{
	Name:        "writing-feedback",
	Description: "Categorized feedback on a writing submission",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mistakes": map[string]any{
				"type":        "string",
				"description": "Markdown list of strict grammatical mistakes, each quoting the problematic text with an explanation. Empty string if none.",
			},
			"stylistic_errors": map[string]any{
				"type":        "string",
				"description": "Markdown list of stylistic issues, each quoting the problematic text with an explanation. Empty string if none.",
			},
			"recommendations": map[string]any{
				"type":        "string",
				"description": "Markdown list of improvement recommendations, including whether the writing follows the exercise requirements. Empty string if none.",
			},
		},
		"required":             []any{"mistakes", "stylistic_errors", "recommendations"},
		"additionalProperties": false,
	},
}
