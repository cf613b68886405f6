package tools

import (
	"context"
	"log/slog"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ContextArgs defines the input parameters for the codectx_context tool.
type ContextArgs struct {
	Path string `json:"path" jsonschema:"Project-relative file path to build a context digest for"`
}

// ContextHandler holds the dependencies for the per-file context tool.
type ContextHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_context request.
func (h *ContextHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ContextArgs) (*mcp.CallToolResult, any, error) {
	if args.Path == "" {
		h.Logger.Warn("codectx_context called with empty path")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: path parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	digest := h.Index.Snapshot().ContextForFile(args.Path)

	h.Logger.Info("codectx_context", "path", args.Path, "bytes", len(digest))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: digest}},
	}, nil, nil
}

// FullContextArgs defines the input parameters for the codectx_full_context tool.
type FullContextArgs struct {
	Query    string `json:"query,omitempty" jsonschema:"Optional search term. When set, per-file digests for the top matches are appended to the project overview"`
	MaxFiles int    `json:"maxFiles,omitempty" jsonschema:"Maximum number of matched files to expand (default 5)"`
}

// FullContextHandler holds the dependencies for the combined project digest tool.
type FullContextHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_full_context request.
func (h *FullContextHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FullContextArgs) (*mcp.CallToolResult, any, error) {
	digest := h.Index.Snapshot().FullContext(args.Query, args.MaxFiles)

	h.Logger.Info("codectx_full_context", "query", args.Query, "bytes", len(digest))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: digest}},
	}, nil, nil
}
