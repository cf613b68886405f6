package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_RelatedHandler_EmptyPath(t *testing.T) {
	ix := newPopulatedIndex(t, nil)
	h := &RelatedHandler{Index: ix, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, RelatedArgs{Path: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty path")
	}
}

func Test_RelatedHandler_TraversesImports(t *testing.T) {
	ix := newPopulatedIndex(t, map[string]string{
		"core/engine.py":  "from core import helpers\n",
		"core/helpers.py": "import json\n",
	})
	h := &RelatedHandler{Index: ix, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, RelatedArgs{Path: "core/engine.py", Depth: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "core") {
		t.Errorf("expected imported module in output, got:\n%s", text)
	}
}

func Test_RelatedHandler_UnknownFile(t *testing.T) {
	ix := newPopulatedIndex(t, map[string]string{
		"main.py": "import os\n",
	})
	h := &RelatedHandler{Index: ix, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, RelatedArgs{Path: "nope.py"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("unknown file is an empty result, not a tool error")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "No related files found") {
		t.Errorf("expected empty-set message, got:\n%s", text)
	}
}
