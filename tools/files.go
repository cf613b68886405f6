package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FilesArgs defines the input parameters for the codectx_files tool.
type FilesArgs struct {
	Pattern    string `json:"pattern" jsonschema:"Doublestar glob matched against project-relative paths, e.g. **/*.py or src/**/test_*.py"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of files to return (default 100)"`
	NameOnly   bool   `json:"nameOnly,omitempty" jsonschema:"Return bare paths without metadata"`
}

// FilesHandler holds the dependencies for the file listing tool.
type FilesHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_files request.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	if args.Pattern == "" {
		h.Logger.Warn("codectx_files called with empty pattern")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: pattern parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	files, err := h.Index.Snapshot().Glob(args.Pattern, maxResults)
	if err != nil {
		h.Logger.Error("codectx_files failed", "pattern", args.Pattern, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Invalid pattern: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("codectx_files", "pattern", args.Pattern, "results", len(files))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatFileResults(files, args.NameOnly)}},
	}, nil, nil
}
