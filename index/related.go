package index

// Related returns the raw import identifiers reachable from startPath
// within depth breadth-first hops over the relationship graph. Each hop
// follows a file's recorded import strings verbatim: identifiers are NOT
// resolved back to indexed file paths, so traversal typically fans out to
// names absent from the index. This raw-string behavior is deliberate (it
// keeps the graph language-agnostic) and callers must treat the returned
// identifiers as opaque, not as verified sibling files.
//
// depth 0 returns the empty set. A visited set over expanded source paths
// guards against cycles; returned identifiers are never deduplicated
// against it.
func (s *Snapshot) Related(startPath string, depth int) map[string]struct{} {
	related := make(map[string]struct{})
	startPath = normalizePath(startPath)
	if _, ok := s.relationships[startPath]; !ok {
		return related
	}

	frontier := map[string]struct{}{startPath: {}}
	explored := make(map[string]struct{})

	for hop := 0; hop < depth; hop++ {
		next := make(map[string]struct{})
		for current := range frontier {
			if _, seen := explored[current]; seen {
				continue
			}
			explored[current] = struct{}{}

			for _, imp := range s.relationships[current] {
				related[imp] = struct{}{}
				next[imp] = struct{}{}
			}
		}
		frontier = next
	}

	return related
}
