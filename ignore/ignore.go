package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a path should be excluded from indexing.
// It layers the fixed ignore-token set, .gitignore rules, .codectxignore
// rules, and custom patterns supplied on the command line.
// Thread-safe: Reload() acquires a write lock, the Should* methods a read lock.
type Matcher struct {
	mu             sync.RWMutex
	rootDir        string
	gitIgnore      gitignore.GitIgnore
	codectxIgnore  gitignore.GitIgnore
	customPatterns []string
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir        string
	CustomPatterns []string
}

// NewMatcher creates a matcher over the fixed token set plus any ignore
// files found at the project root.
func NewMatcher(options MatcherOptions) *Matcher {
	m := &Matcher{
		rootDir:        options.RootDir,
		customPatterns: options.CustomPatterns,
	}
	m.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	m.codectxIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".codectxignore"), options.RootDir)
	return m
}

// ShouldIgnore returns true if the given path should be excluded from indexing.
// A path is excluded when any ignore token appears anywhere in it as a
// substring, or when an ignore file or custom pattern matches it.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	if matchesToken(relativePath) {
		return true
	}

	isDir := false
	if info, err := os.Stat(absolutePath); err == nil {
		isDir = info.IsDir()
	}

	// Relative() matches without requiring the file to exist on disk.
	if m.gitIgnore != nil {
		if match := m.gitIgnore.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}
	if m.codectxIgnore != nil {
		if match := m.codectxIgnore.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	return m.matchesCustomPatterns(relativePath)
}

// ShouldIgnoreDir returns true if a directory must be pruned before descent.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	if matchesToken(filepath.Base(absolutePath)) {
		return true
	}
	return m.ShouldIgnore(absolutePath)
}

// matchesToken checks whether any fixed ignore token occurs in the path.
func matchesToken(path string) bool {
	for _, token := range DefaultIgnoreTokens {
		if strings.Contains(path, token) {
			return true
		}
	}
	return false
}

// matchesCustomPatterns checks user-provided exclude patterns against the
// relative path and its basename.
func (m *Matcher) matchesCustomPatterns(relativePath string) bool {
	for _, pattern := range m.customPatterns {
		if matched, err := filepath.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, filepath.Base(relativePath)); err == nil && matched {
			return true
		}
	}
	return false
}

// Reload re-reads the ignore files from disk. Used when the watcher detects
// changes to them.
func (m *Matcher) Reload() {
	newGitIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".gitignore"), m.rootDir)
	newCodectxIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".codectxignore"), m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gitIgnore = newGitIgnore
	m.codectxIgnore = newCodectxIgnore
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()
	return gitignore.New(f, baseDir, nil)
}
