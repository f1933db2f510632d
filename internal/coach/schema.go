package coach

import "github.com/enpeak/linglog/internal/llm"

// InsightSchema defines the JSON schema for LLM coaching responses.
var InsightSchema = &llm.Schema{
	Name:        "coach-insights",
	Description: "Short encouraging observations about a learner's recent study activity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"messages": map[string]any{
				"type":        "array",
				"minItems":    1,
				"maxItems":    3,
				"items":       map[string]any{"type": "string"},
				"description": "One to three short observations, each a single sentence",
			},
		},
		"required":             []any{"messages"},
		"additionalProperties": false,
	},
}
