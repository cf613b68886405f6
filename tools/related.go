package tools

import (
	"context"
	"log/slog"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RelatedArgs defines the input parameters for the codectx_related tool.
type RelatedArgs struct {
	Path  string `json:"path" jsonschema:"Project-relative file path to start traversal from"`
	Depth int    `json:"depth,omitempty" jsonschema:"Number of breadth-first hops over the import graph (default 2)"`
}

// RelatedHandler holds the dependencies for the relationship-traversal tool.
type RelatedHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_related request.
func (h *RelatedHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RelatedArgs) (*mcp.CallToolResult, any, error) {
	if args.Path == "" {
		h.Logger.Warn("codectx_related called with empty path")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: path parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	depth := args.Depth
	if depth <= 0 {
		depth = 2
	}

	related := h.Index.Snapshot().Related(args.Path, depth)

	h.Logger.Info("codectx_related",
		"path", args.Path,
		"depth", depth,
		"results", len(related),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatRelated(args.Path, depth, related)}},
	}, nil, nil
}
