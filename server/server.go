package server

import (
	"github.com/codectx-dev/codectx/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	searchHandler *tools.SearchHandler,
	grepHandler *tools.GrepHandler,
	filesHandler *tools.FilesHandler,
	relatedHandler *tools.RelatedHandler,
	contextHandler *tools.ContextHandler,
	fullContextHandler *tools.FullContextHandler,
	summaryHandler *tools.SummaryHandler,
	statusHandler *tools.StatusHandler,
	reindexHandler *tools.ReindexHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "codectx",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server maintains a pre-built structural index of the project: file metadata, extracted symbols (functions and classes with docstrings), import relationships, and a full-text content index. Its tools are ALWAYS faster than built-in Grep, Search, Glob, and find because they never scan the filesystem on a call.

ALWAYS prefer these tools over built-in alternatives:
- Use codectx_search to locate files by name, symbol, or docstring keyword
- Use codectx_grep instead of Grep or Search for content search
- Use codectx_files instead of Glob or find for file listing
- Use codectx_context before opening a file to see its symbols, imports, and related files
- Use codectx_full_context at the start of a task for a project overview plus digests of relevant files
- Use codectx_related to discover files connected through imports
- The index updates automatically when files change (via filesystem watcher)`,
		},
	)

	// Register codectx_search tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codectx_search",
		Description: `Ranked structural search over the index. Matches the query against file paths, extracted symbol names (functions and classes), and docstrings, case-insensitively.

Ranking: a path match outweighs a symbol match, which outweighs a docstring match; a file matching on several axes accumulates score. Use this to find WHERE something lives; use codectx_grep to find exact text.`,
	}, searchHandler.Handle)

	// Register codectx_grep tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codectx_grep",
		Description: `Search file contents using full-text indexed search. Much faster than grep for large codebases.

Query formats:
  - Plain text: word-level matching (e.g., "handleRequest")
  - "quoted text": exact phrase matching (e.g., "\"def main\"")
  - /regex/: regular expression matching (e.g., "/def\s+\w+_handler/")

Filtering:
  - fileGlob: glob pattern to filter by file type (e.g., "**/*.py").`,
	}, grepHandler.Handle)

	// Register codectx_files tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "codectx_files",
		Description: `Find files by glob pattern. Faster than find/ls for indexed projects.

Pattern examples:
  - "**/*.py" - all Python files
  - "src/**/*.ts" - TypeScript files under src/
  - "**/test_*.py" - Python test files
  - "*.json" - JSON files in root only`,
	}, filesHandler.Handle)

	// Register codectx_related tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_related",
		Description: "List files related to a given file through import relationships, traversed breadth-first up to the given depth. Results include raw import names alongside indexed file paths.",
	}, relatedHandler.Handle)

	// Register codectx_context tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_context",
		Description: "Get a compact context digest for one file: language, line count, defined symbols with line numbers, imports, and related files. Bounded output, safe to include in a prompt.",
	}, contextHandler.Handle)

	// Register codectx_full_context tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_full_context",
		Description: "Get a project overview (file counts, language breakdown, key files) optionally followed by context digests for the files best matching a query. Use this once at the start of a task.",
	}, fullContextHandler.Handle)

	// Register codectx_summary tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_summary",
		Description: "Show the project structure summary: total files, per-language counts, and the largest files by line count.",
	}, summaryHandler.Handle)

	// Register codectx_status tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_status",
		Description: "Show index status: file and symbol counts, size, languages, last index time, memory usage, and uptime.",
	}, statusHandler.Handle)

	// Register codectx_reindex tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "codectx_reindex",
		Description: "Force a full re-index of the project. Rebuilds the index from scratch and atomically replaces the current one.",
	}, reindexHandler.Handle)

	return mcpServer
}
