package src

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Well-known tool names the shell special-cases or decorates.
const (
	toolBash            = "Bash"
	toolEdit            = "Edit"
	toolWrite           = "Write"
	toolRead            = "Read"
	toolGlob            = "Glob"
	toolWebFetch        = "WebFetch"
	ToolAskUserQuestion = "AskUserQuestion"
)

// toolCatalog describes the assistant tools this shell knows how to present.
// The host decides what actually runs; the catalog only feeds dialog copy.
var toolCatalog = []mcp.Tool{
	{
		Name:        toolBash,
		Description: "Run a shell command in the project workspace",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"command": map[string]interface{}{
					"type":        "string",
					"description": "The command line to execute",
				},
				"timeout": map[string]interface{}{
					"type":        "integer",
					"description": "Optional timeout in milliseconds",
				},
			},
			Required: []string{"command"},
		},
	},
	{
		Name:        toolEdit,
		Description: "Replace text inside an existing file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Path of the file to modify",
				},
				"old_string": map[string]interface{}{
					"type":        "string",
					"description": "Text to replace",
				},
				"new_string": map[string]interface{}{
					"type":        "string",
					"description": "Replacement text",
				},
			},
			Required: []string{"file_path", "old_string", "new_string"},
		},
	},
	{
		Name:        toolWrite,
		Description: "Create or overwrite a file",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Path of the file to write",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Full file contents",
				},
			},
			Required: []string{"file_path", "content"},
		},
	},
	{
		Name:        toolRead,
		Description: "Read a file from the workspace",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_path": map[string]interface{}{
					"type":        "string",
					"description": "Path of the file to read",
				},
			},
			Required: []string{"file_path"},
		},
	},
	{
		Name:        toolGlob,
		Description: "Find files matching a glob pattern",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"pattern": map[string]interface{}{
					"type":        "string",
					"description": "Glob pattern, e.g. '**/*.go'",
				},
			},
			Required: []string{"pattern"},
		},
	},
	{
		Name:        toolWebFetch,
		Description: "Fetch a URL and return its contents",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "The URL to fetch",
				},
			},
			Required: []string{"url"},
		},
	},
	{
		Name:        ToolAskUserQuestion,
		Description: "Ask the user one or more multiple-choice questions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"questions": map[string]interface{}{
					"type":        "array",
					"description": "Questions with selectable options",
				},
			},
			Required: []string{"questions"},
		},
	},
}

// ToolDescription returns the catalog description for a tool name, or "" for
// tools the shell has never heard of. The dialog still renders those; it just
// has no subtitle for them.
func ToolDescription(name string) string {
	for _, t := range toolCatalog {
		if t.Name == name {
			return t.Description
		}
	}
	return ""
}

// KnownTools returns the catalog, for hosts that want to enumerate it.
func KnownTools() []mcp.Tool {
	out := make([]mcp.Tool, len(toolCatalog))
	copy(out, toolCatalog)
	return out
}
