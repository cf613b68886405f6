package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codectx-dev/codectx/index"
)

// FormatSearchResults formats ranked search results as human-readable text,
// one line per hit with its score and a short symbol preview.
func FormatSearchResults(query string, results []index.SearchResult) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results for %q.", query)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d results for %q:\n\n", len(results), query))

	for _, result := range results {
		builder.WriteString(fmt.Sprintf("  %s  (score %d, %s, %d lines)\n",
			result.Path,
			result.Score,
			result.File.Language,
			result.File.LineCount,
		))
		for i, sym := range result.File.Symbols {
			if i >= 3 {
				builder.WriteString(fmt.Sprintf("      ... and %d more symbols\n", len(result.File.Symbols)-i))
				break
			}
			builder.WriteString(fmt.Sprintf("      %s %s (line %d)\n", sym.Kind, sym.Name, sym.Line))
		}
	}

	return builder.String()
}

// FormatGrepResults formats content search results grouped by file with line
// numbers and optional context.
func FormatGrepResults(results []index.ContentSearchResult, totalMatches int) string {
	if len(results) == 0 {
		return "No matches found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches in %d files:\n\n", totalMatches, len(results)))

	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s ──\n", result.RelativePath))

		for _, match := range result.Matches {
			for _, ctxLine := range match.ContextBefore {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
			builder.WriteString(fmt.Sprintf("  %d: %s\n", match.LineNumber, match.LineText))
			for _, ctxLine := range match.ContextAfter {
				builder.WriteString(fmt.Sprintf("  %s\n", ctxLine))
			}
		}
	}

	return builder.String()
}

// FormatFileResults formats glob results as human-readable text.
func FormatFileResults(files []*index.IndexedFile, nameOnly bool) string {
	if len(files) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d files:\n\n", len(files)))

	for _, file := range files {
		if nameOnly {
			builder.WriteString(file.Path)
			builder.WriteString("\n")
		} else {
			builder.WriteString(fmt.Sprintf("  %s  (%s, %s, %d lines)\n",
				file.Path,
				file.Language,
				formatFileSize(file.SizeBytes),
				file.LineCount,
			))
		}
	}

	return builder.String()
}

// FormatRelated renders a related-file set in deterministic order.
func FormatRelated(startPath string, depth int, related map[string]struct{}) string {
	if len(related) == 0 {
		return fmt.Sprintf("No related files found for %s within %d hops.", startPath, depth)
	}

	names := make([]string, 0, len(related))
	for name := range related {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Files related to %s (within %d hops):\n\n", startPath, depth))
	for _, name := range names {
		builder.WriteString(fmt.Sprintf("  %s\n", name))
	}

	return builder.String()
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
