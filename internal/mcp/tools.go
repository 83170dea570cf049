package mcp

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolDefinitions contains all available MCP tools
var ToolDefinitions = []Tool{
	{
		Name:        "match_programs",
		Description: "Rank the summer programs that best fit a student. Resolves grade and subjects fuzzily against the catalog, filters by eligibility, and scores candidates by semantic similarity to the student's interests.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"grade_level": map[string]interface{}{
					"type":        "string",
					"description": "Student's grade level, free text (e.g. '10th grade')",
				},
				"subjects": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Subjects of interest, free text",
				},
				"interests": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of what the student enjoys",
				},
				"dislikes": map[string]interface{}{
					"type":        "string",
					"description": "Free-text description of what the student avoids",
				},
				"identity": map[string]interface{}{
					"type":        "string",
					"description": "Self-reported identity for eligibility filtering (optional)",
				},
				"identity_label": map[string]interface{}{
					"type":        "string",
					"description": "Clarifying label when identity is open/unspecified (optional)",
				},
			},
			"required": []string{"grade_level", "subjects"},
		},
	},
	{
		Name:        "list_programs",
		Description: "List programs in the imported catalog, optionally filtered by a normalized grade or subject token.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"grade": map[string]interface{}{
					"type":        "string",
					"description": "Only programs serving this grade token (e.g. '10')",
				},
				"subject": map[string]interface{}{
					"type":        "string",
					"description": "Only programs offering this subject token (e.g. 'math')",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (default: 20)",
				},
			},
		},
	},
	{
		Name:        "get_program",
		Description: "Get full details for one program by exact name (case-insensitive) or ID.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"identifier": map[string]interface{}{
					"type":        "string",
					"description": "Program name or ID",
				},
			},
			"required": []string{"identifier"},
		},
	},
	{
		Name:        "get_catalog_stats",
		Description: "Get aggregate catalog statistics: program counts per grade level and subject.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	},
}
