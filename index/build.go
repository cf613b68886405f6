package index

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/codectx-dev/codectx/language"
	"github.com/codectx-dev/codectx/symbols"
)

// Builder runs one full indexing pass over a project tree. Each pass
// produces a brand-new Snapshot; nothing is merged into a previous
// generation.
type Builder struct {
	RootDir string
	Ignore  IgnoreChecker
	Content *ContentIndex // optional full-text index, rebuilt alongside
	Logger  *slog.Logger
	Workers int // file-extraction parallelism, default 8
}

// Build walks the tree, extracts every candidate file, and assembles the
// result into a Snapshot. Errors on individual files are logged and the
// file skipped; a single bad file never aborts the pass.
func (b *Builder) Build() (*Snapshot, BuildSummary, error) {
	start := time.Now()
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := b.Workers
	if workers <= 0 {
		workers = 8
	}

	files := make(map[string]*IndexedFile)
	var mu sync.Mutex

	jobs := make(chan candidate, 100)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				file, content, err := extractFile(job, logger)
				if err != nil {
					logger.Debug("skipped file", "path", job.relPath, "error", err)
					continue
				}
				mu.Lock()
				files[file.Path] = file
				mu.Unlock()

				if b.Content != nil {
					if err := b.Content.IndexFile(file.Path, content, file.Language); err != nil {
						logger.Debug("content indexing failed", "path", file.Path, "error", err)
					}
				}
			}
		}()
	}

	walkErr := walkTree(b.RootDir, b.Ignore, func(c candidate) {
		jobs <- c
	})
	close(jobs)
	wg.Wait()

	if walkErr != nil {
		return nil, BuildSummary{}, fmt.Errorf("walking %s: %w", b.RootDir, walkErr)
	}

	builtAt := time.Now()
	snap := newSnapshot(files, builtAt)

	summary := BuildSummary{
		TotalFiles:   snap.FileCount(),
		TotalSymbols: snap.SymbolCount(),
		Languages:    snap.LanguageCounts(),
		BuiltAt:      builtAt,
		Duration:     time.Since(start),
	}

	logger.Info("indexing complete",
		"root", b.RootDir,
		"files", summary.TotalFiles,
		"symbols", summary.TotalSymbols,
		"duration", summary.Duration,
	)

	return snap, summary, nil
}

// extractFile reads one candidate and produces its IndexedFile. Unreadable
// or undecodable content is an error (the caller skips the file); a parse
// failure degrades to empty symbol and import lists for this file only.
func extractFile(c candidate, logger *slog.Logger) (*IndexedFile, string, error) {
	content, err := os.ReadFile(c.absPath)
	if err != nil {
		return nil, "", fmt.Errorf("reading file: %w", err)
	}
	if !language.IsValidText(content) {
		return nil, "", fmt.Errorf("binary or undecodable content")
	}

	lang := language.Detect(c.relPath)

	syms := []symbols.Symbol{}
	imports := []string{}
	if extractor, ok := symbols.For(lang); ok {
		extracted, extractedImports, err := extractor.Extract(content)
		if err != nil {
			logger.Debug("parse failure, indexing without symbols", "path", c.relPath, "error", err)
		} else {
			if extracted != nil {
				syms = extracted
			}
			if extractedImports != nil {
				imports = extractedImports
			}
		}
	} else if patternImports := symbols.PatternImports(content); patternImports != nil {
		imports = patternImports
	}

	hash := sha256.Sum256(content)
	contentStr := string(content)

	return &IndexedFile{
		Path:      c.relPath,
		SizeBytes: int64(len(content)),
		LineCount: strings.Count(contentStr, "\n") + 1,
		Language:  lang,
		Hash:      hex.EncodeToString(hash[:]),
		Modified:  c.info.ModTime(),
		Symbols:   syms,
		Imports:   imports,
	}, contentStr, nil
}
