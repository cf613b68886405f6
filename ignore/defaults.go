package ignore

// DefaultIgnoreTokens are substrings whose presence anywhere in a path
// excludes that path from indexing. The set covers version control,
// virtual environments, dependency trees, build and cache artifacts,
// and OS metadata.
var DefaultIgnoreTokens = []string{
	// Version control
	".git",
	".svn",
	".hg",

	// Virtual environments
	".venv",
	"venv",
	".env",

	// Dependencies
	"node_modules",
	"bower_components",
	".egg-info",

	// Build output
	"dist",
	"build",

	// Caches
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".cache",

	// Compiled artifacts
	".pyc",
	".so",
	".dylib",

	// OS metadata
	".DS_Store",
	"Thumbs.db",
}
