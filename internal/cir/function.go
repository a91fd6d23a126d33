package cir

import (
	"go/token"
)

// Program is a translated source file.
type Program struct {
	File      string
	Functions []*Function
}

// Function is a single explored function.
//
//	func evalLogic(S *Shape) { … } // Name: "evalLogic", Params: [{S *Shape}]
type Function struct {
	At     token.Pos
	End    token.Pos
	Name   string
	Params []Param
	Body   []Statement

	// Spans covers every statement of the body, nested ones included.
	Spans []Span
}

// Span is a source range of a node.
type Span struct {
	Node       Node
	Start, End token.Pos
}

// Param is a function parameter. Pointer parameters are unconstrained,
// reference parameters are never null.
type Param struct {
	At   token.Pos
	Name string
	Type TypeRef
}

func (f *Function) Pos() token.Pos { return f.At }
func (*Function) isNode()          {}
