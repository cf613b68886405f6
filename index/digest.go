package index

import (
	"fmt"
	"sort"
	"strings"
)

// Digest rendering bounds.
const (
	summaryKeyFiles    = 5
	contextMaxSymbols  = 10
	contextMaxImports  = 10
	contextMaxRelated  = 5
	defaultContextFans = 5
)

// Summary renders a fixed-shape project report: totals, per-language
// counts, and the largest files by line count.
func (s *Snapshot) Summary() string {
	if s.FileCount() == 0 {
		return "Project not indexed yet."
	}

	langCounts := s.LanguageCounts()
	langNames := make([]string, 0, len(langCounts))
	for lang := range langCounts {
		langNames = append(langNames, lang)
	}
	sort.Strings(langNames)

	langParts := make([]string, 0, len(langNames))
	for _, lang := range langNames {
		langParts = append(langParts, fmt.Sprintf("%s (%d)", lang, langCounts[lang]))
	}

	var b strings.Builder
	b.WriteString("Project Structure:\n")
	fmt.Fprintf(&b, "- Total files: %d\n", s.FileCount())
	fmt.Fprintf(&b, "- Total lines: %d\n", s.TotalLines())
	fmt.Fprintf(&b, "- Languages: %s\n", strings.Join(langParts, ", "))
	fmt.Fprintf(&b, "- Total symbols: %d\n", s.SymbolCount())
	b.WriteString("\nKey files identified:\n")

	// Largest files by line count; ties keep the deterministic path order.
	largest := s.AllFiles()
	sort.SliceStable(largest, func(i, j int) bool {
		return largest[i].LineCount > largest[j].LineCount
	})
	if len(largest) > summaryKeyFiles {
		largest = largest[:summaryKeyFiles]
	}
	for _, file := range largest {
		fmt.Fprintf(&b, "- %s (%d lines, %s)\n", file.Path, file.LineCount, file.Language)
	}

	return b.String()
}

// ContextForFile renders the digest for one file: language, line count,
// up to ten symbols, up to ten imports, and up to five related identifiers
// at traversal depth 1. Renderings are memoized per snapshot.
func (s *Snapshot) ContextForFile(path string) string {
	path = normalizePath(path)
	if cached, ok := s.digestCache.Get(path); ok {
		return cached
	}

	file := s.files[path]
	if file == nil {
		return fmt.Sprintf("File %s not found in index.", path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nFile: %s\n", path)
	fmt.Fprintf(&b, "Language: %s\n", file.Language)
	fmt.Fprintf(&b, "Lines: %d\n", file.LineCount)

	if len(file.Symbols) > 0 {
		b.WriteString("\nSymbols defined:\n")
		for i, sym := range file.Symbols {
			if i >= contextMaxSymbols {
				break
			}
			fmt.Fprintf(&b, "- %s %s (line %d)\n", sym.Kind, sym.Name, sym.Line)
		}
	}

	if len(file.Imports) > 0 {
		imports := file.Imports
		if len(imports) > contextMaxImports {
			imports = imports[:contextMaxImports]
		}
		fmt.Fprintf(&b, "\nImports: %s\n", strings.Join(imports, ", "))
	}

	if related := setToSorted(s.Related(path, 1)); len(related) > 0 {
		if len(related) > contextMaxRelated {
			related = related[:contextMaxRelated]
		}
		fmt.Fprintf(&b, "\nRelated files: %s\n", strings.Join(related, ", "))
	}

	rendered := b.String()
	s.digestCache.Add(path, rendered)
	return rendered
}

// FullContext concatenates the project summary with the per-file digests
// of the top maxFiles search hits for query. An empty query omits the
// per-file section entirely.
func (s *Snapshot) FullContext(query string, maxFiles int) string {
	if maxFiles <= 0 {
		maxFiles = defaultContextFans
	}

	var b strings.Builder
	b.WriteString(s.Summary())

	if query == "" {
		return b.String()
	}

	results := s.Search(query, maxFiles)
	if len(results) > 0 {
		b.WriteString("\n\nRelevant files for your query:\n")
		for _, result := range results {
			b.WriteString("\n")
			b.WriteString(s.ContextForFile(result.Path))
		}
	}

	return b.String()
}

func setToSorted(set map[string]struct{}) []string {
	items := make([]string, 0, len(set))
	for item := range set {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
