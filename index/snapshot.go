package index

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

// digestCacheSize bounds the per-snapshot memo of rendered file contexts.
const digestCacheSize = 256

// Snapshot is one immutable index generation: the file map, the derived
// symbol table and relationship graph, and the build timestamp. A Snapshot
// is never mutated after publication, so all query methods are safe to call
// concurrently.
type Snapshot struct {
	files         map[string]*IndexedFile
	sortedPaths   []string            // deterministic iteration order
	symbolTable   map[string][]string // symbol name → declaring paths
	relationships map[string][]string // path → raw import strings
	builtAt       time.Time

	digestCache *lru.Cache[string, string]
}

// newSnapshot assembles a Snapshot from a freshly built file map. The
// derived tables are rebuilt fully; nothing from a previous generation
// leaks in.
func newSnapshot(files map[string]*IndexedFile, builtAt time.Time) *Snapshot {
	s := &Snapshot{
		files:         files,
		symbolTable:   make(map[string][]string),
		relationships: make(map[string][]string),
		builtAt:       builtAt,
	}

	s.sortedPaths = make([]string, 0, len(files))
	for path := range files {
		s.sortedPaths = append(s.sortedPaths, path)
	}
	sort.Strings(s.sortedPaths)

	for _, path := range s.sortedPaths {
		file := files[path]
		for _, sym := range file.Symbols {
			s.symbolTable[sym.Name] = append(s.symbolTable[sym.Name], path)
		}
		s.relationships[path] = file.Imports
	}

	// Cache creation only fails on a non-positive size.
	s.digestCache, _ = lru.New[string, string](digestCacheSize)
	return s
}

// emptySnapshot is the generation an Index holds before the first build.
func emptySnapshot() *Snapshot {
	return newSnapshot(make(map[string]*IndexedFile), time.Time{})
}

// File returns the metadata for a relative path, or nil if not indexed.
func (s *Snapshot) File(path string) *IndexedFile {
	return s.files[normalizePath(path)]
}

// FileCount returns the number of indexed files.
func (s *Snapshot) FileCount() int {
	return len(s.files)
}

// TotalLines returns the line count summed over all indexed files.
func (s *Snapshot) TotalLines() int {
	total := 0
	for _, file := range s.files {
		total += file.LineCount
	}
	return total
}

// TotalSizeBytes returns the content size summed over all indexed files.
func (s *Snapshot) TotalSizeBytes() int64 {
	var total int64
	for _, file := range s.files {
		total += file.SizeBytes
	}
	return total
}

// LanguageCounts returns per-language file counts.
func (s *Snapshot) LanguageCounts() map[string]int {
	counts := make(map[string]int)
	for _, file := range s.files {
		counts[file.Language]++
	}
	return counts
}

// SymbolCount returns the number of distinct symbol names.
func (s *Snapshot) SymbolCount() int {
	return len(s.symbolTable)
}

// FindSymbol returns the paths declaring a symbol of the given name, in
// the snapshot's deterministic path order.
func (s *Snapshot) FindSymbol(name string) []string {
	return s.symbolTable[name]
}

// AllFiles returns all indexed files in deterministic path order.
func (s *Snapshot) AllFiles() []*IndexedFile {
	result := make([]*IndexedFile, 0, len(s.sortedPaths))
	for _, path := range s.sortedPaths {
		result = append(result, s.files[path])
	}
	return result
}

// BuiltAt returns the completion time of the build that produced this
// generation, or the zero time if nothing has been indexed.
func (s *Snapshot) BuiltAt() time.Time {
	return s.builtAt
}

// Glob returns files whose relative path matches a doublestar pattern, in
// deterministic path order, capped at maxResults.
func (s *Snapshot) Glob(pattern string, maxResults int) ([]*IndexedFile, error) {
	if maxResults <= 0 {
		maxResults = 50
	}
	pattern = normalizePath(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var results []*IndexedFile
	for _, path := range s.sortedPaths {
		if len(results) >= maxResults {
			break
		}
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			results = append(results, s.files[path])
		}
	}
	return results, nil
}

func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Index is the process-wide handle to the current Snapshot. Rebuilds
// construct a complete new generation and publish it with a single atomic
// pointer swap, so readers never observe a partially built structure.
type Index struct {
	current atomic.Pointer[Snapshot]
}

// New creates an Index holding an empty generation.
func New() *Index {
	ix := &Index{}
	ix.current.Store(emptySnapshot())
	return ix
}

// Snapshot returns the current generation. The returned value stays valid
// and self-consistent even if a rebuild publishes a newer one.
func (ix *Index) Snapshot() *Snapshot {
	return ix.current.Load()
}

// Publish atomically replaces the current generation.
func (ix *Index) Publish(s *Snapshot) {
	ix.current.Store(s)
}
