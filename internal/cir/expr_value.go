package cir

import (
	"go/token"
)

// ExprDiv represents an integer division. The explorer checks the
// denominator against zero.
//
//	1 / analyzer.Int(C == nil) // Num: &ExprInt{1}, Den: &ExprToInt{…}
type ExprDiv struct {
	At       token.Pos
	Num, Den Expr
}

// ExprDeref represents a pointer dereference.
//
//	*C // X: <ExprFor>(C)
type ExprDeref struct {
	At token.Pos
	X  Expr
}

// ExprToInt converts a condition into 0 or 1.
//
//	analyzer.Int(C != nil)
type ExprToInt struct {
	At token.Pos
	X  Expr
}

// ExprCall represents any function or method call. Casts are recognized
// later against the catalog, so the call keeps everything needed for
// matching: the callee, the receiver, explicit type arguments and arguments.
//
//	llvm.DynCast[Circle](S) // Callee: "llvm".DynCast, TypeArgs: [Circle], Args: [S]
//	S.GetAs[Circle]()       // Callee: GetAs, Recv: S, TypeArgs: [Circle]
//
// At is the position of the opening parenthesis, it identifies the call site.
type ExprCall struct {
	At       token.Pos
	Callee   Reference
	Recv     Expr
	TypeArgs []TypeRef
	Args     []Expr
}

// IsMethod reports whether the call has a receiver.
func (e *ExprCall) IsMethod() bool {
	return e.Recv != nil
}

func (e *ExprDiv) Pos() token.Pos   { return e.At }
func (e *ExprDeref) Pos() token.Pos { return e.At }
func (e *ExprToInt) Pos() token.Pos { return e.At }
func (e *ExprCall) Pos() token.Pos  { return e.At }

func (*ExprDiv) isNode()   {}
func (*ExprDiv) isExpr()   {}
func (*ExprDeref) isNode() {}
func (*ExprDeref) isExpr() {}
func (*ExprToInt) isNode() {}
func (*ExprToInt) isExpr() {}
func (*ExprCall) isNode()  {}
func (*ExprCall) isExpr()  {}
