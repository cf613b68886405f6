package symbols

import "regexp"

// importFromPattern matches the `import ... from "..."` shape used by the
// JavaScript/TypeScript module syntax. It is a best-effort text match with
// no semantic filtering: commented-out imports are matched too, and false
// positives are tolerated.
var importFromPattern = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)

// PatternImports scans content for import-like syntax. It is the fallback
// for languages without a registered structural extractor.
func PatternImports(content []byte) []string {
	var imports []string
	for _, match := range importFromPattern.FindAllSubmatch(content, -1) {
		imports = append(imports, string(match[1]))
	}
	return imports
}
