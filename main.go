package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/codectx-dev/codectx/ignore"
	"github.com/codectx-dev/codectx/index"
	"github.com/codectx-dev/codectx/register"
	"github.com/codectx-dev/codectx/server"
	"github.com/codectx-dev/codectx/tools"
	"github.com/codectx-dev/codectx/watcher"
)

const serverName = "codectx"

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	// Subcommand dispatch before flag parsing
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run(serverName, os.Args[2:])
		return
	}

	// Optional .env next to the binary's working directory; flags still win.
	_ = godotenv.Load()

	var rootDir string
	var indexFile string
	var logLevel string
	var logFile string
	var noWatch bool
	var noPersist bool
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", envDefault("CODECTX_ROOT", ""), "Project root directory (default: current working directory)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.StringVar(&indexFile, "index-file", envDefault("CODECTX_INDEX_FILE", ""), "Index persistence path (default: <root>/"+index.DefaultIndexFileName+")")
	flag.StringVar(&logLevel, "log-level", envDefault("CODECTX_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", envDefault("CODECTX_LOG_FILE", ""), "Log file path (default: <root>/codectx.log)")
	flag.BoolVar(&noWatch, "no-watch", false, "Disable the filesystem watcher")
	flag.BoolVar(&noPersist, "no-persist", false, "Do not save or load the index file")
	flag.Parse()

	// Resolve root directory
	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	if indexFile == "" {
		indexFile = filepath.Join(rootDir, index.DefaultIndexFileName)
	}
	if logFile == "" {
		logFile = filepath.Join(rootDir, "codectx.log")
	}

	// Logger goes to file or stderr, never stdout - stdout is for MCP stdio.
	logger := setupLogger(logLevel, logFile)

	logger.Info("starting codectx",
		"root", rootDir,
		"indexFile", indexFile,
		"watch", !noWatch,
	)

	startTime := time.Now()

	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:        rootDir,
		CustomPatterns: excludes,
	})

	ix := index.New()
	contentIndex, err := index.NewContentIndex()
	if err != nil {
		logger.Error("failed to create content index", "error", err)
		os.Exit(1)
	}
	defer contentIndex.Close()

	// rebuild runs one full indexing pass and atomically replaces the
	// published snapshot. Serialized so the watcher and the reindex tool
	// cannot run passes concurrently.
	var rebuildMu sync.Mutex
	rebuild := func() (*index.Snapshot, index.BuildSummary, error) {
		rebuildMu.Lock()
		defer rebuildMu.Unlock()

		ignoreMatcher.Reload()
		if err := contentIndex.Clear(); err != nil {
			return nil, index.BuildSummary{}, fmt.Errorf("clearing content index: %w", err)
		}

		builder := &index.Builder{
			RootDir: rootDir,
			Ignore:  ignoreMatcher,
			Content: contentIndex,
			Logger:  logger,
		}
		snap, summary, err := builder.Build()
		if err != nil {
			return nil, index.BuildSummary{}, err
		}
		ix.Publish(snap)

		if !noPersist {
			if err := index.SaveSnapshot(snap, indexFile); err != nil {
				logger.Warn("failed to save index", "path", indexFile, "error", err)
			}
		}
		return snap, summary, nil
	}

	// A cached index makes tools answerable immediately; the fresh pass
	// still runs to pick up changes made while the server was down and to
	// populate the content index.
	cachedLoaded := false
	if !noPersist {
		cached, err := index.LoadSnapshot(indexFile)
		switch {
		case err != nil:
			logger.Warn("ignoring unreadable index file", "path", indexFile, "error", err)
		case cached != nil:
			ix.Publish(cached)
			cachedLoaded = true
			logger.Info("loaded cached index",
				"path", indexFile,
				"files", cached.FileCount(),
				"builtAt", cached.BuiltAt(),
			)
		}
	}

	if cachedLoaded {
		go func() {
			if _, _, err := rebuild(); err != nil {
				logger.Error("background reindex failed", "error", err)
			}
		}()
	} else {
		if _, _, err := rebuild(); err != nil {
			logger.Error("initial indexing failed", "error", err)
			os.Exit(1)
		}
	}

	// Start file watcher
	if !noWatch {
		fileWatcher, err := watcher.NewWatcher(rootDir, ignoreMatcher, logger)
		if err != nil {
			logger.Warn("failed to start file watcher, continuing without live updates", "error", err)
		} else {
			go fileWatcher.Start()
			go func() {
				for batch := range fileWatcher.Changes() {
					logger.Info("file changes detected", "count", len(batch))
					if _, _, err := rebuild(); err != nil {
						logger.Error("reindex after file change failed", "error", err)
					}
				}
			}()
			defer fileWatcher.Close()
		}
	}

	// Create tool handlers
	searchHandler := &tools.SearchHandler{Index: ix, Logger: logger}
	grepHandler := &tools.GrepHandler{Content: contentIndex, Logger: logger}
	filesHandler := &tools.FilesHandler{Index: ix, Logger: logger}
	relatedHandler := &tools.RelatedHandler{Index: ix, Logger: logger}
	contextHandler := &tools.ContextHandler{Index: ix, Logger: logger}
	fullContextHandler := &tools.FullContextHandler{Index: ix, Logger: logger}
	summaryHandler := &tools.SummaryHandler{Index: ix, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Index:     ix,
		Content:   contentIndex,
		StartTime: startTime,
		RootDir:   rootDir,
		Logger:    logger,
	}
	reindexHandler := &tools.ReindexHandler{
		Logger: logger,
		DoReindex: func() (int, int64, string, error) {
			start := time.Now()
			snap, summary, err := rebuild()
			if err != nil {
				return 0, 0, "", err
			}
			elapsed := time.Since(start).Round(time.Millisecond).String()
			return summary.TotalFiles, snap.TotalSizeBytes(), elapsed, nil
		},
	}

	// Setup and run MCP server on stdio
	mcpServer := server.Setup(
		searchHandler,
		grepHandler,
		filesHandler,
		relatedHandler,
		contextHandler,
		fullContextHandler,
		summaryHandler,
		statusHandler,
		reindexHandler,
	)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// envDefault returns the environment value for key, or fallback when unset.
func envDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
