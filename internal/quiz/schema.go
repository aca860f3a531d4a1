package quiz

// BankSchema defines the JSON schema every question bank file must satisfy.
// Loading rejects banks that fail validation before any question is used.
var BankSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Identifier, unique within the bank",
			},
			"topic": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Topic tag used for weakest-topic targeting",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "string",
				},
				"description": "Ordered answer choices, at least two",
			},
			"answer": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Text of the correct option, matched exactly",
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "topic", "difficulty", "question", "options", "answer", "explanation"},
		"additionalProperties": false,
	},
}
