package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GrepArgs defines the input parameters for the codectx_grep tool.
type GrepArgs struct {
	Query        string `json:"query" jsonschema:"Search text. Use /pattern/ for regex or double quotes for an exact phrase"`
	FileGlob     string `json:"fileGlob,omitempty" jsonschema:"Optional glob to restrict matches, e.g. **/*.py"`
	MaxResults   int    `json:"maxResults,omitempty" jsonschema:"Maximum number of files to return (default 20)"`
	ContextLines int    `json:"contextLines,omitempty" jsonschema:"Lines of context around each match (default 0)"`
}

// GrepHandler holds the dependencies for the full-text content search tool.
type GrepHandler struct {
	Content *index.ContentIndex
	Logger  *slog.Logger
}

// Handle processes a codectx_grep request.
func (h *GrepHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args GrepArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("codectx_grep called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results, totalMatches, err := h.Content.Search(index.ContentSearchOptions{
		Query:        args.Query,
		FileGlob:     args.FileGlob,
		MaxResults:   args.MaxResults,
		ContextLines: args.ContextLines,
	})
	if err != nil {
		h.Logger.Error("codectx_grep failed", "query", args.Query, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("codectx_grep",
		"query", args.Query,
		"files", len(results),
		"matches", totalMatches,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatGrepResults(results, totalMatches)}},
	}, nil, nil
}
