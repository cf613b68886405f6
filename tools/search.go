package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchArgs defines the input parameters for the codectx_search tool.
type SearchArgs struct {
	Query      string `json:"query" jsonschema:"Search term matched against file paths, symbol names, and docstrings (case-insensitive)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of ranked results to return (default 10)"`
}

// SearchHandler holds the dependencies for the ranked search tool.
type SearchHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("codectx_search called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	results := h.Index.Snapshot().Search(args.Query, args.MaxResults)

	h.Logger.Info("codectx_search",
		"query", args.Query,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatSearchResults(args.Query, results)}},
	}, nil, nil
}
