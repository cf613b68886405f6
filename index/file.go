package index

import (
	"time"

	"github.com/codectx-dev/codectx/symbols"
)

// IndexedFile is the extracted metadata for one tracked source file.
// Symbols and Imports are always present (possibly empty), never nil.
// JSON field names follow the persisted index document format.
type IndexedFile struct {
	Path      string           `json:"path"`     // project-relative, forward slashes, unique key
	SizeBytes int64            `json:"size"`     // content length at index time
	LineCount int              `json:"lines"`    // newline count + 1
	Language  string           `json:"language"` // extension-derived tag, "unknown" sentinel
	Hash      string           `json:"hash"`     // sha256 hex of raw content
	Modified  time.Time        `json:"modified"` // filesystem mtime at index time
	Symbols   []symbols.Symbol `json:"symbols"`
	Imports   []string         `json:"imports"`
}

// SearchResult is one ranked hit from Snapshot.Search, carrying the full
// file payload for downstream rendering.
type SearchResult struct {
	Path  string
	Score int
	File  *IndexedFile
}

// BuildSummary reports the outcome of one indexing pass.
type BuildSummary struct {
	TotalFiles   int
	TotalSymbols int            // distinct symbol names
	Languages    map[string]int // per-language file counts
	BuiltAt      time.Time
	Duration     time.Duration
}
