package cir

import (
	"go/token"
)

// Assign binds a value to a variable.
//
//	C := llvm.DynCast[Circle](S) // Dst: "C", Src: &ExprCall{…}
//	C = nil                      // Dst: "C", Src: &ExprNil{}
type Assign struct {
	At  token.Pos
	Dst string
	Src Expr
}

// If is a two-way branch with an optional init statement. A chained else-if
// is represented as an Else holding a single nested If.
type If struct {
	At   token.Pos
	Init Statement
	Cond Expr
	Then []Statement
	Else []Statement
}

// Block is a nested statement list.
type Block struct {
	At   token.Pos
	Body []Statement
}

// Return evaluates its results and ends the current path.
type Return struct {
	At      token.Pos
	Results []Expr
}

// ExprStmt evaluates an expression for its effects only.
//
//	_ = 1 / analyzer.Int(C == nil)
//	_ = *C
type ExprStmt struct {
	At token.Pos
	X  Expr
}

// Opaque stands for any statement the explorer does not interpret. Kind
// names the statement, e.g. "for" or "switch".
type Opaque struct {
	At   token.Pos
	Kind string
}

func (s *Assign) Pos() token.Pos   { return s.At }
func (s *If) Pos() token.Pos       { return s.At }
func (s *Block) Pos() token.Pos    { return s.At }
func (s *Return) Pos() token.Pos   { return s.At }
func (s *ExprStmt) Pos() token.Pos { return s.At }
func (s *Opaque) Pos() token.Pos   { return s.At }

func (*Assign) isNode()        {}
func (*Assign) isStatement()   {}
func (*If) isNode()            {}
func (*If) isStatement()       {}
func (*Block) isNode()         {}
func (*Block) isStatement()    {}
func (*Return) isNode()        {}
func (*Return) isStatement()   {}
func (*ExprStmt) isNode()      {}
func (*ExprStmt) isStatement() {}
func (*Opaque) isNode()        {}
func (*Opaque) isStatement()   {}
