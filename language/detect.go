package language

import (
	"path/filepath"
	"strings"
)

// Unknown is the sentinel language tag for extensions outside the table.
const Unknown = "unknown"

// sourceExtensions is the fixed allow-list of extensions (without dot) that
// the walker considers source code. Files outside this set are never indexed.
var sourceExtensions = map[string]bool{
	"py": true, "js": true, "ts": true, "jsx": true, "tsx": true,
	"java": true, "cpp": true, "c": true, "h": true, "hpp": true,
	"cs": true, "go": true, "rs": true, "rb": true, "php": true,
	"swift": true, "kt": true, "scala": true, "sh": true, "bash": true,
	"sql": true,
}

// extensionToLanguage maps file extensions (without dot) to language tags.
var extensionToLanguage = map[string]string{
	"py":    "python",
	"js":    "javascript",
	"jsx":   "javascript",
	"ts":    "typescript",
	"tsx":   "typescript",
	"java":  "java",
	"cpp":   "cpp",
	"hpp":   "cpp",
	"c":     "c",
	"h":     "c",
	"cs":    "csharp",
	"go":    "go",
	"rs":    "rust",
	"rb":    "ruby",
	"php":   "php",
	"swift": "swift",
	"kt":    "kotlin",
	"scala": "scala",
	"sh":    "bash",
	"bash":  "bash",
	"sql":   "sql",
}

// Detect returns the language tag for a file path based on its extension.
// Detection is a pure table lookup; there is no content sniffing.
func Detect(filePath string) string {
	if lang, ok := extensionToLanguage[extOf(filePath)]; ok {
		return lang
	}
	return Unknown
}

// IsSourceFile reports whether the path carries an allow-listed source extension.
func IsSourceFile(filePath string) bool {
	return sourceExtensions[extOf(filePath)]
}

func extOf(filePath string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
}
