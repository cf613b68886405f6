package symbols

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

func init() {
	Register("go", GoExtractor{})
}

// GoExtractor extracts declarations and imports from Go source using the
// language's own parser. Functions and methods map to KindFunction, type
// declarations to KindClass.
type GoExtractor struct{}

// Extract parses a single Go file. Parse failures wrap ErrParse.
func (GoExtractor) Extract(content []byte) ([]Symbol, []string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", content, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var syms []Symbol
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			syms = append(syms, Symbol{
				Kind: KindFunction,
				Name: d.Name.Name,
				Line: fset.Position(d.Pos()).Line,
				Doc:  docText(d.Doc),
			})
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := ts.Doc
				if doc == nil {
					doc = d.Doc
				}
				syms = append(syms, Symbol{
					Kind: KindClass,
					Name: ts.Name.Name,
					Line: fset.Position(ts.Pos()).Line,
					Doc:  docText(doc),
				})
			}
		}
	}

	var imports []string
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		imports = append(imports, path)
	}

	return syms, imports, nil
}

func docText(cg *ast.CommentGroup) string {
	if cg == nil {
		return ""
	}
	return strings.TrimSpace(cg.Text())
}
