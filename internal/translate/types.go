package translate

import (
	"go/ast"
	"go/token"
	"slices"

	"github.com/sirkon/castvalue/internal/cir"
)

// Types records class relations declared in the file. Embedded fields of a
// struct are its bases.
func (t *Translator) Types(file *ast.File) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts := spec.(*ast.TypeSpec)
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			for _, field := range st.Fields.List {
				if len(field.Names) != 0 {
					continue
				}

				base := typeRef(field.Type).Name
				if base == "" || slices.Contains(t.classes[ts.Name.Name], base) {
					continue
				}
				t.classes[ts.Name.Name] = append(t.classes[ts.Name.Name], base)
			}
		}
	}
}

// Classes returns class relations of all files seen so far.
func (t *Translator) Classes() cir.Hierarchy {
	return t.classes
}
