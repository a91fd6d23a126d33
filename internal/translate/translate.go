package translate

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strconv"

	"github.com/sirkon/castvalue/internal/cir"
)

// Translator turns function declarations into [cir.Function].
type Translator struct {
	fset  *token.FileSet
	debug *knownDebugFuncs

	// imports maps local package names of the current file to import paths.
	imports map[string]string

	// spans of the function being translated.
	spans []cir.Span

	// classes collected from type declarations of all files.
	classes cir.Hierarchy
}

// New creates a translator. debugPkg is the import path of inspection
// helpers, empty means [DefaultDebugPackage].
func New(fset *token.FileSet, debugPkg string) *Translator {
	return &Translator{
		fset:    fset,
		debug:   newKnownDebugFuncs(debugPkg),
		imports: map[string]string{},
		classes: cir.Hierarchy{},
	}
}

// ParseFile parses and translates a single source file.
func ParseFile(fset *token.FileSet, filename string, src any, debugPkg string) (*cir.Program, error) {
	return New(fset, debugPkg).Parse(filename, src)
}

// Parse parses and translates a source file. src follows [parser.ParseFile]
// rules: nil means reading the file.
func (t *Translator) Parse(filename string, src any) (*cir.Program, error) {
	file, err := parser.ParseFile(t.fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	return t.File(file), nil
}

// File translates every function with a body. Class relations declared in
// the file are added to [Translator.Classes].
func (t *Translator) File(file *ast.File) *cir.Program {
	t.Imports(file)
	t.Types(file)

	prog := &cir.Program{File: t.fset.Position(file.Pos()).Filename}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		if f, ok := t.Function(fn); ok {
			prog.Functions = append(prog.Functions, f)
		}
	}

	return prog
}

// Imports sets the file whose import table resolves package names of the
// following [Translator.Function] calls.
func (t *Translator) Imports(file *ast.File) {
	clear(t.imports)
	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := path.Base(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}
		switch name {
		case "_", ".":
			continue
		}

		t.imports[name] = p
	}
}

// Function translates a function declaration. Declarations without a body
// are skipped.
func (t *Translator) Function(decl *ast.FuncDecl) (*cir.Function, bool) {
	if decl.Body == nil {
		return nil, false
	}

	t.spans = nil
	fn := &cir.Function{
		At:   decl.Pos(),
		End:  decl.End(),
		Name: decl.Name.Name,
	}

	for _, field := range decl.Type.Params.List {
		typ := typeRef(field.Type)
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}

			fn.Params = append(fn.Params, cir.Param{
				At:   name.Pos(),
				Name: name.Name,
				Type: typ,
			})
		}
	}

	fn.Body = t.stmts(decl.Body.List)
	fn.Spans = t.spans
	t.spans = nil

	return fn, true
}

// typeRef returns a static type of a parameter or a type argument.
//
//	*Shape      → {Name: Shape, Pointer: true}
//	Shape       → {Name: Shape}
//	shapes.Kind → {Name: Kind}
//
// Anything else gets an empty name.
func typeRef(e ast.Expr) cir.TypeRef {
	var res cir.TypeRef
	if star, ok := e.(*ast.StarExpr); ok {
		res.Pointer = true
		e = star.X
	}

	switch x := e.(type) {
	case *ast.Ident:
		res.Name = x.Name
	case *ast.SelectorExpr:
		res.Name = x.Sel.Name
	default:
		return cir.TypeRef{}
	}

	return res
}

// importedPackage returns the import path if e is a package name.
func (t *Translator) importedPackage(e ast.Expr) (string, bool) {
	id, ok := e.(*ast.Ident)
	if !ok {
		return "", false
	}

	p, ok := t.imports[id.Name]
	return p, ok
}
