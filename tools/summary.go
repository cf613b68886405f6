package tools

import (
	"context"
	"log/slog"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SummaryArgs defines the input parameters for the codectx_summary tool (none required).
type SummaryArgs struct{}

// SummaryHandler holds the dependencies for the project overview tool.
type SummaryHandler struct {
	Index  *index.Index
	Logger *slog.Logger
}

// Handle processes a codectx_summary request.
func (h *SummaryHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SummaryArgs) (*mcp.CallToolResult, any, error) {
	snap := h.Index.Snapshot()
	text := snap.Summary()

	h.Logger.Info("codectx_summary", "files", snap.FileCount())

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}
