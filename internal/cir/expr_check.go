package cir

import (
	"go/token"
)

// ExprNot represents logical negation.
//
//	!(S != nil) // X: &ExprNEQ{…}
type ExprNot struct {
	At token.Pos
	X  Expr
}

// ExprAnd represents a short-circuit conjunction.
type ExprAnd struct {
	At   token.Pos
	L, R Expr
}

// ExprOr represents a short-circuit disjunction.
type ExprOr struct {
	At   token.Pos
	L, R Expr
}

// ExprEQ represents a pointer or integer equality.
//
//	C == S   // L: <ExprFor>(C), R: <ExprFor>(S)
//	C == nil // L: <ExprFor>(C), R: &ExprNil{}
type ExprEQ struct {
	At   token.Pos
	L, R Expr
}

// ExprNEQ represents a pointer or integer inequality.
type ExprNEQ struct {
	At   token.Pos
	L, R Expr
}

func (e *ExprNot) Pos() token.Pos { return e.At }
func (e *ExprAnd) Pos() token.Pos { return e.At }
func (e *ExprOr) Pos() token.Pos  { return e.At }
func (e *ExprEQ) Pos() token.Pos  { return e.At }
func (e *ExprNEQ) Pos() token.Pos { return e.At }

func (*ExprNot) isNode()  {}
func (*ExprNot) isExpr()  {}
func (*ExprNot) isCheck() {}
func (*ExprAnd) isNode()  {}
func (*ExprAnd) isExpr()  {}
func (*ExprAnd) isCheck() {}
func (*ExprOr) isNode()   {}
func (*ExprOr) isExpr()   {}
func (*ExprOr) isCheck()  {}
func (*ExprEQ) isNode()   {}
func (*ExprEQ) isExpr()   {}
func (*ExprEQ) isCheck()  {}
func (*ExprNEQ) isNode()  {}
func (*ExprNEQ) isExpr()  {}
func (*ExprNEQ) isCheck() {}

// Check marks boolean-valued expressions.
type Check interface {
	Expr
	isCheck()
}
