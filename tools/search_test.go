package tools

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// allowAll accepts every path during test indexing.
type allowAll struct{}

func (allowAll) ShouldIgnore(string) bool    { return false }
func (allowAll) ShouldIgnoreDir(string) bool { return false }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPopulatedIndex indexes the given relative-path/content pairs from a
// temp directory and returns the published handle.
func newPopulatedIndex(t *testing.T, files map[string]string) *index.Index {
	t.Helper()
	root := t.TempDir()
	for relPath, content := range files {
		full := filepath.Join(root, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	builder := &index.Builder{
		RootDir: root,
		Ignore:  allowAll{},
		Logger:  discardLogger(),
	}
	snap, _, err := builder.Build()
	if err != nil {
		t.Fatalf("indexing failed: %v", err)
	}

	ix := index.New()
	ix.Publish(snap)
	return ix
}

func Test_SearchHandler_EmptyQuery(t *testing.T) {
	h := &SearchHandler{Index: index.New(), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for empty query")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "query parameter is required") {
		t.Errorf("expected error message about empty query, got: %s", text)
	}
}

func Test_SearchHandler_PathMatchRanksFirst(t *testing.T) {
	ix := newPopulatedIndex(t, map[string]string{
		"src/auth.py":    "def check():\n    pass\n",
		"src/session.py": "def auth_token():\n    pass\n",
	})
	h := &SearchHandler{Index: ix, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: "auth"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	authAt := strings.Index(text, "src/auth.py")
	sessionAt := strings.Index(text, "src/session.py")
	if authAt == -1 || sessionAt == -1 {
		t.Fatalf("expected both files in output, got:\n%s", text)
	}
	if authAt > sessionAt {
		t.Errorf("expected path match ranked above symbol match, got:\n%s", text)
	}
}

func Test_SearchHandler_NoResults(t *testing.T) {
	ix := newPopulatedIndex(t, map[string]string{
		"main.py": "def main():\n    pass\n",
	})
	h := &SearchHandler{Index: ix, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Query: "nonexistent"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success (no error), got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "No results") {
		t.Errorf("expected empty-result message, got:\n%s", text)
	}
}
