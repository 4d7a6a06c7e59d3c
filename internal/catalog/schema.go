package catalog

// catalogSchema defines the JSON Schema a catalog file must satisfy before
// structural validation runs. Cross-reference rules (dangling ids, cycles,
// boss membership) are enforced by Validate, not here.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":    "string",
			"pattern": `^[0-9]+\.[0-9]+\.[0-9]+$`,
		},
		"units": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string", "minLength": 1},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"lesson", "quiz", "challenge", "game", "boss"},
					},
					"points":   map[string]any{"type": "integer", "minimum": 0},
					"maxScore": map[string]any{"type": "integer", "minimum": 1},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"reward": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
					},
				},
				"required":             []any{"id", "name", "kind"},
				"additionalProperties": false,
			},
		},
		"groups": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string", "minLength": 1},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"module", "sublevel", "majorlevel"},
					},
					"order": map[string]any{"type": "integer", "minimum": 0},
					"children": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"prerequisites": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string", "minLength": 1},
					},
					"bossId": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"id", "name", "kind", "children"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "units", "groups"},
	"additionalProperties": false,
}
