// Package symbols extracts lightweight structural facts from source files:
// named declarations and raw import strings. Extraction is intentionally
// shallow; there is no resolution, type checking, or cross-file analysis.
package symbols

import (
	"errors"
	"sync"
)

// Symbol kinds. The extractor vocabulary is deliberately small: anything
// callable is a function, anything type-like is a class.
const (
	KindFunction = "function"
	KindClass    = "class"
)

// Symbol is a named function or class declaration extracted from a source
// file, with its 1-based declaration line and optional doc comment.
type Symbol struct {
	Kind string `json:"type"`
	Name string `json:"name"`
	Line int    `json:"line"`
	Doc  string `json:"docstring,omitempty"`
}

// ErrParse indicates the source could not be structurally parsed. Callers
// degrade to empty symbol and import lists; files under active edit are
// transiently invalid and must not poison an indexing pass.
var ErrParse = errors.New("symbols: parse failure")

// Extractor is the structural-extraction capability for one language.
type Extractor interface {
	// Extract returns the declarations and raw import strings found in
	// content. A parse failure is reported as an error wrapping ErrParse.
	Extract(content []byte) ([]Symbol, []string, error)
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Extractor)
)

// Register installs an extractor for a language tag. Later registrations
// for the same tag replace earlier ones.
func Register(lang string, e Extractor) {
	mu.Lock()
	defer mu.Unlock()
	registry[lang] = e
}

// For returns the extractor registered for a language tag. Absence is not
// an error: languages without a structural parser take the empty-result
// path, with only the pattern-based import fallback applied.
func For(lang string) (Extractor, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := registry[lang]
	return e, ok
}
