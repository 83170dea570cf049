package mcp

// Resource defines an MCP resource
type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MimeType    string `json:"mimeType,omitempty"`
}

// ResourceDefinitions lists all available resources
var ResourceDefinitions = []Resource{
	{
		URI:         "progmatch://catalog/summary",
		Name:        "Catalog Summary",
		Description: "Program counts and coverage overview for the imported catalog",
		MimeType:    "text/plain",
	},
	{
		URI:         "progmatch://catalog/grades",
		Name:        "Grade Levels",
		Description: "Every grade-level token in the catalog with program counts",
		MimeType:    "text/plain",
	},
	{
		URI:         "progmatch://catalog/subjects",
		Name:        "Subjects",
		Description: "Every subject token in the catalog with program counts",
		MimeType:    "text/plain",
	},
}

// resourcesListResult is the response for resources/list
type resourcesListResult struct {
	Resources []Resource `json:"resources"`
}

// readResourceParams is the params for resources/read
type readResourceParams struct {
	URI string `json:"uri"`
}

// readResourceResult is the response for resources/read
type readResourceResult struct {
	Contents []resourceContent `json:"contents"`
}

type resourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType,omitempty"`
	Text     string `json:"text,omitempty"`
}
