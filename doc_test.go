package manyvecs

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

// TestReexportsDocumented checks the re-export files in every tag
// configuration, since only one of them is compiled at a time.
func TestReexportsDocumented(t *testing.T) {
	for _, name := range []string{"legacy.go", "macroed.go"} {
		f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}

		for _, decl := range f.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || !fn.Name.IsExported() {
				continue
			}
			if fn.Doc == nil {
				t.Errorf("%s: %s has no doc comment", name, fn.Name.Name)
				continue
			}
			if strings.HasPrefix(fn.Name.Name, "Normalize") && !strings.Contains(fn.Doc.Text(), "NaN") {
				t.Errorf("%s: %s doc does not mention the zero-vector NaN result", name, fn.Name.Name)
			}
		}
	}
}
