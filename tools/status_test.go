package tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/codectx-dev/codectx/index"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_StatusHandler_ReportsCounts(t *testing.T) {
	ix := newPopulatedIndex(t, map[string]string{
		"main.py": "def main():\n    pass\n",
		"app.js":  "const x = 1;\n",
	})
	ci, err := index.NewContentIndex()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ci.Close() })

	h := &StatusHandler{
		Index:     ix,
		Content:   ci,
		StartTime: time.Now().Add(-90 * time.Second),
		RootDir:   "/tmp/project",
		Logger:    discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatusArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "Root directory: /tmp/project") {
		t.Errorf("expected root directory, got:\n%s", text)
	}
	if !strings.Contains(text, "Indexed files: 2") {
		t.Errorf("expected file count, got:\n%s", text)
	}
	if !strings.Contains(text, "python") || !strings.Contains(text, "javascript") {
		t.Errorf("expected language breakdown, got:\n%s", text)
	}
	if !strings.Contains(text, "Uptime: 1m30s") {
		t.Errorf("expected formatted uptime, got:\n%s", text)
	}
}

func Test_FormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{90 * time.Second, "1m30s"},
		{3*time.Hour + 15*time.Minute, "3h15m"},
	}
	for _, c := range cases {
		if got := formatDuration(c.in); got != c.want {
			t.Errorf("formatDuration(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}
