package cir

import (
	"go/token"
)

// ExprVar represents a variable reference.
type ExprVar struct {
	At token.Pos

	// Name is the identifier of the variable in the current scope.
	Name string
}

// ExprNil is the nil pointer literal.
type ExprNil struct {
	At token.Pos
}

// ExprBool is a boolean literal.
type ExprBool struct {
	At    token.Pos
	Value bool
}

// ExprInt is an integer literal.
type ExprInt struct {
	At    token.Pos
	Value int64
}

// ExprUnknown is any expression the translator could not represent. It
// evaluates to an unknown value.
type ExprUnknown struct {
	At token.Pos
}

func (e *ExprVar) Pos() token.Pos     { return e.At }
func (e *ExprNil) Pos() token.Pos     { return e.At }
func (e *ExprBool) Pos() token.Pos    { return e.At }
func (e *ExprInt) Pos() token.Pos     { return e.At }
func (e *ExprUnknown) Pos() token.Pos { return e.At }

func (*ExprVar) isNode()     {}
func (*ExprVar) isExpr()     {}
func (*ExprNil) isNode()     {}
func (*ExprNil) isExpr()     {}
func (*ExprBool) isNode()    {}
func (*ExprBool) isExpr()    {}
func (*ExprInt) isNode()     {}
func (*ExprInt) isExpr()     {}
func (*ExprUnknown) isNode() {}
func (*ExprUnknown) isExpr() {}
