package symbols

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

func init() {
	Register("python", PythonExtractor{})
}

// PythonExtractor extracts function and class definitions (with leading
// docstrings) and imported module paths from Python source via tree-sitter.
type PythonExtractor struct{}

// Extract parses a single Python file. Tree-sitter always produces a tree;
// a tree containing ERROR nodes is treated as a parse failure so that files
// with syntax errors degrade to empty lists.
func (PythonExtractor) Extract(content []byte) ([]Symbol, []string, error) {
	root, err := sitter.ParseCtx(context.Background(), content, python.GetLanguage())
	if err != nil || root == nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if root.HasError() {
		return nil, nil, fmt.Errorf("%w: syntax error", ErrParse)
	}

	var syms []Symbol
	var imports []string

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		switch n.Type() {
		case "function_definition", "class_definition":
			if name := n.ChildByFieldName("name"); name != nil {
				kind := KindFunction
				if n.Type() == "class_definition" {
					kind = KindClass
				}
				syms = append(syms, Symbol{
					Kind: kind,
					Name: name.Content(content),
					Line: int(n.StartPoint().Row) + 1,
					Doc:  pythonDocstring(n, content),
				})
			}
		case "import_statement":
			// import a.b, c as d
			for i := 0; i < int(n.NamedChildCount()); i++ {
				child := n.NamedChild(i)
				switch child.Type() {
				case "dotted_name":
					imports = append(imports, child.Content(content))
				case "aliased_import":
					if name := child.ChildByFieldName("name"); name != nil {
						imports = append(imports, name.Content(content))
					}
				}
			}
		case "import_from_statement":
			// from a.b import c — record the dotted module path only
			if module := n.ChildByFieldName("module_name"); module != nil {
				imports = append(imports, module.Content(content))
			}
		}

		for i := 0; i < int(n.NamedChildCount()); i++ {
			walk(n.NamedChild(i))
		}
	}
	walk(root)

	return syms, imports, nil
}

// pythonDocstring returns the docstring of a function or class definition:
// the string expression that opens its body, with quotes stripped.
func pythonDocstring(def *sitter.Node, content []byte) string {
	body := def.ChildByFieldName("body")
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return ""
	}
	return strings.TrimSpace(trimPythonQuotes(str.Content(content)))
}

// trimPythonQuotes removes string prefixes (r, b, u, f) and the surrounding
// quote pair from a Python string literal.
func trimPythonQuotes(s string) string {
	s = strings.TrimLeft(s, "rRbBuUfF")
	for _, quote := range []string{`"""`, "'''", `"`, "'"} {
		if strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) && len(s) >= 2*len(quote) {
			return s[len(quote) : len(s)-len(quote)]
		}
	}
	return s
}
