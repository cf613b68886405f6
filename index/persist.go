package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codectx-dev/codectx/symbols"
)

// DefaultIndexFileName is the conventional on-disk location of the cached
// index, relative to the project root.
const DefaultIndexFileName = ".codectx_index.json"

// persistedIndex is the on-disk document. The derived tables are stored
// alongside the file map so a load needs no recomputation, and the format
// round-trips: a loaded snapshot answers queries identically to the one
// that was saved.
type persistedIndex struct {
	Index             map[string]*IndexedFile `json:"index"`
	FileRelationships map[string][]string     `json:"file_relationships"`
	SymbolsMap        map[string][]string     `json:"symbols_map"`
	LastIndexed       *time.Time              `json:"last_indexed"`
}

// SaveSnapshot serializes the snapshot to one JSON document at path,
// replacing any existing file. The document is written to a temp file in
// the same directory and renamed into place so a concurrent reader never
// observes a half-written index.
func SaveSnapshot(s *Snapshot, path string) error {
	doc := persistedIndex{
		Index:             s.files,
		FileRelationships: s.relationships,
		SymbolsMap:        s.symbolTable,
	}
	if !s.builtAt.IsZero() {
		builtAt := s.builtAt
		doc.LastIndexed = &builtAt
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".codectx-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, path, err)
	}
	return nil
}

// LoadSnapshot restores a snapshot from the document at path. A missing
// file is not an error: it returns (nil, nil) so callers fall back to a
// fresh build. A malformed document is a recoverable error the caller
// should log and treat the same way.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc persistedIndex
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Index == nil {
		return nil, fmt.Errorf("parsing %s: missing index section", path)
	}

	// Guarantee the always-present invariant on the way in; older or
	// hand-edited documents may carry nulls.
	for filePath, file := range doc.Index {
		if file == nil {
			delete(doc.Index, filePath)
			continue
		}
		if file.Symbols == nil {
			file.Symbols = []symbols.Symbol{}
		}
		if file.Imports == nil {
			file.Imports = []string{}
		}
	}

	builtAt := time.Time{}
	if doc.LastIndexed != nil {
		builtAt = *doc.LastIndexed
	}

	// Rebuilding the derived tables from the file map is equivalent to
	// trusting the persisted copies and guarantees internal consistency.
	return newSnapshot(doc.Index, builtAt), nil
}
