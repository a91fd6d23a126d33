package cir

import (
	"go/token"
)

// Node is the base interface implemented by all CIR node types.
type Node interface {
	isNode()
	Pos() token.Pos
}

// Statement marks nodes that represent statements of an explored function.
type Statement interface {
	Node
	isStatement()
}

// Expr marks nodes representing expressions.
type Expr interface {
	Node
	isExpr()
}

// Reference identifies a declared entity: a free function of some package or
// a method. It is used to attribute calls to the catalog of known functions.
type Reference struct {
	// Package is the import path of the package that declares the entity
	// (e.g., "llvm" or "example.com/project/casting"). Empty for methods
	// matched regardless of their receiver.
	Package string

	// Type is type package-local name. It is needed when some method of
	// a type should be referenced. Will be empty for free functions.
	Type string

	// Name is the declared identifier of the entity.
	Name string
}

func (r Reference) String() string {
	switch {
	case r.Package == "" && r.Type == "":
		return r.Name
	case r.Package == "":
		return r.Type + "." + r.Name
	case r.Type == "":
		return `"` + r.Package + `".` + r.Name
	default:
		return `"` + r.Package + `".` + r.Type + "." + r.Name
	}
}

// TypeRef is a static type as far as casts are concerned: a named type either
// behind a pointer or bound by reference.
//
//	S *Shape // TypeRef{Name: "Shape", Pointer: true}
//	S Shape  // TypeRef{Name: "Shape"}, a reference that is never null
type TypeRef struct {
	Name    string
	Pointer bool
}

func (t TypeRef) String() string {
	if t.Pointer {
		return "*" + t.Name
	}

	return t.Name
}
