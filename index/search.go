package index

import (
	"sort"
	"strings"
)

// Search scoring weights.
const (
	pathMatchScore    = 10
	symbolMatchScore  = 5
	docstringHitScore = 2
)

// Search scores every indexed file against the query: path substring hits
// weigh 10, symbol-name hits 5 each, docstring hits 2 each, all
// case-insensitive. Files scoring zero are excluded. Results are sorted by
// descending score and capped at limit; tie order follows the snapshot's
// deterministic path order within a single run but is not contractually
// meaningful.
func (s *Snapshot) Search(query string, limit int) []SearchResult {
	if limit <= 0 {
		limit = 10
	}
	queryLower := strings.ToLower(query)

	var results []SearchResult
	for _, path := range s.sortedPaths {
		file := s.files[path]
		score := 0

		if strings.Contains(strings.ToLower(path), queryLower) {
			score += pathMatchScore
		}
		for _, sym := range file.Symbols {
			if strings.Contains(strings.ToLower(sym.Name), queryLower) {
				score += symbolMatchScore
			}
			if sym.Doc != "" && strings.Contains(strings.ToLower(sym.Doc), queryLower) {
				score += docstringHitScore
			}
		}

		if score > 0 {
			results = append(results, SearchResult{Path: path, Score: score, File: file})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
