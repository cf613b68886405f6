package language

import "testing"

func Test_Detect_KnownExtensions(t *testing.T) {
	cases := map[string]string{
		"src/main.py":        "python",
		"lib/app.js":         "javascript",
		"lib/app.jsx":        "javascript",
		"lib/app.ts":         "typescript",
		"lib/App.tsx":        "typescript",
		"cmd/server/main.go": "go",
		"core/engine.rs":     "rust",
		"include/util.h":     "c",
		"include/util.hpp":   "cpp",
		"scripts/deploy.sh":  "bash",
		"db/schema.sql":      "sql",
	}

	for path, want := range cases {
		if got := Detect(path); got != want {
			t.Errorf("Detect(%q) = %q, want %q", path, got, want)
		}
	}
}

func Test_Detect_UnknownExtension(t *testing.T) {
	for _, path := range []string{"README.md", "data.csv", "Makefile", "image.png", "noext"} {
		if got := Detect(path); got != Unknown {
			t.Errorf("Detect(%q) = %q, want %q", path, got, Unknown)
		}
	}
}

func Test_Detect_CaseInsensitiveExtension(t *testing.T) {
	if got := Detect("legacy/MODULE.PY"); got != "python" {
		t.Errorf("expected python for uppercase extension, got %q", got)
	}
}

func Test_IsSourceFile(t *testing.T) {
	if !IsSourceFile("a/b/c.py") {
		t.Error("expected .py to be a source file")
	}
	if !IsSourceFile("x.go") {
		t.Error("expected .go to be a source file")
	}
	if IsSourceFile("notes.txt") {
		t.Error("expected .txt to be excluded")
	}
	if IsSourceFile("archive.tar.gz") {
		t.Error("expected .gz to be excluded")
	}
}
