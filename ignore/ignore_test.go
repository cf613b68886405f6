package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Matcher_IgnoreTokens(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(MatcherOptions{RootDir: root})

	ignored := []string{
		filepath.Join(root, ".git", "config"),
		filepath.Join(root, "node_modules", "lodash", "index.js"),
		filepath.Join(root, "src", "__pycache__", "mod.pyc"),
		filepath.Join(root, ".venv", "lib", "site.py"),
		filepath.Join(root, "dist", "bundle.js"),
	}
	for _, path := range ignored {
		if !m.ShouldIgnore(path) {
			t.Errorf("expected %s to be ignored", path)
		}
	}

	kept := []string{
		filepath.Join(root, "src", "main.py"),
		filepath.Join(root, "cmd", "server", "main.go"),
	}
	for _, path := range kept {
		if m.ShouldIgnore(path) {
			t.Errorf("expected %s to be kept", path)
		}
	}
}

func Test_Matcher_TokenAnywhereInPath(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(MatcherOptions{RootDir: root})

	// The token matches as a substring of any path component.
	if !m.ShouldIgnore(filepath.Join(root, "pkg.egg-info", "meta.py")) {
		t.Error("expected .egg-info path to be ignored")
	}
}

func Test_Matcher_ShouldIgnoreDir(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(MatcherOptions{RootDir: root})

	if !m.ShouldIgnoreDir(filepath.Join(root, "node_modules")) {
		t.Error("expected node_modules to be pruned")
	}
	if !m.ShouldIgnoreDir(filepath.Join(root, "deep", "nested", ".git")) {
		t.Error("expected .git to be pruned")
	}
	if m.ShouldIgnoreDir(filepath.Join(root, "src")) {
		t.Error("expected src to be descended into")
	}
}

func Test_Matcher_GitignoreRules(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n*.gen.go\n"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewMatcher(MatcherOptions{RootDir: root})

	if !m.ShouldIgnore(filepath.Join(root, "api.gen.go")) {
		t.Error("expected *.gen.go to be ignored via .gitignore")
	}
	if m.ShouldIgnore(filepath.Join(root, "api.go")) {
		t.Error("expected api.go to be kept")
	}
}

func Test_Matcher_CustomPatterns(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(MatcherOptions{
		RootDir:        root,
		CustomPatterns: []string{"*.tmp.py"},
	})

	if !m.ShouldIgnore(filepath.Join(root, "scratch.tmp.py")) {
		t.Error("expected custom pattern to apply")
	}
	if m.ShouldIgnore(filepath.Join(root, "scratch.py")) {
		t.Error("expected non-matching file to be kept")
	}
}

func Test_Matcher_Reload(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(MatcherOptions{RootDir: root})

	target := filepath.Join(root, "secrets.py")
	if m.ShouldIgnore(target) {
		t.Fatal("expected secrets.py to be kept before .gitignore exists")
	}

	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("secrets.py\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m.Reload()

	if !m.ShouldIgnore(target) {
		t.Error("expected secrets.py to be ignored after reload")
	}
}
