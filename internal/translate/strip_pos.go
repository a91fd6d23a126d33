package translate

import (
	"github.com/sirkon/castvalue/internal/cir"
)

// StripPos returns a deep copy of prog with all positions zeroed and spans
// dropped. This is useful for equality testing (ignoring source positions).
func StripPos(p *cir.Program) *cir.Program {
	if p == nil {
		return nil
	}

	cp := *p
	cp.Functions = make([]*cir.Function, len(p.Functions))
	for i, fn := range p.Functions {
		f := &cir.Function{Name: fn.Name}
		for _, param := range fn.Params {
			f.Params = append(f.Params, cir.Param{Name: param.Name, Type: param.Type})
		}
		f.Body = stripStmts(fn.Body)
		cp.Functions[i] = f
	}

	return &cp
}

func stripStmts(list []cir.Statement) []cir.Statement {
	if list == nil {
		return nil
	}

	res := make([]cir.Statement, len(list))
	for i, s := range list {
		res[i] = stripStmt(s)
	}

	return res
}

func stripStmt(s cir.Statement) cir.Statement {
	switch x := s.(type) {
	case nil:
		return nil
	case *cir.Assign:
		return &cir.Assign{Dst: x.Dst, Src: stripExpr(x.Src)}
	case *cir.If:
		return &cir.If{
			Init: stripStmt(x.Init),
			Cond: stripExpr(x.Cond),
			Then: stripStmts(x.Then),
			Else: stripStmts(x.Else),
		}
	case *cir.Block:
		return &cir.Block{Body: stripStmts(x.Body)}
	case *cir.Return:
		return &cir.Return{Results: stripExprs(x.Results)}
	case *cir.ExprStmt:
		return &cir.ExprStmt{X: stripExpr(x.X)}
	case *cir.Inspect:
		return &cir.Inspect{Kind: x.Kind, Args: stripExprs(x.Args)}
	case *cir.Opaque:
		return &cir.Opaque{Kind: x.Kind}
	default:
		return s
	}
}

func stripExprs(list []cir.Expr) []cir.Expr {
	if list == nil {
		return nil
	}

	res := make([]cir.Expr, len(list))
	for i, e := range list {
		res[i] = stripExpr(e)
	}

	return res
}

func stripExpr(e cir.Expr) cir.Expr {
	switch x := e.(type) {
	case nil:
		return nil
	case *cir.ExprVar:
		return &cir.ExprVar{Name: x.Name}
	case *cir.ExprNil:
		return &cir.ExprNil{}
	case *cir.ExprBool:
		return &cir.ExprBool{Value: x.Value}
	case *cir.ExprInt:
		return &cir.ExprInt{Value: x.Value}
	case *cir.ExprUnknown:
		return &cir.ExprUnknown{}
	case *cir.ExprNot:
		return &cir.ExprNot{X: stripExpr(x.X)}
	case *cir.ExprAnd:
		return &cir.ExprAnd{L: stripExpr(x.L), R: stripExpr(x.R)}
	case *cir.ExprOr:
		return &cir.ExprOr{L: stripExpr(x.L), R: stripExpr(x.R)}
	case *cir.ExprEQ:
		return &cir.ExprEQ{L: stripExpr(x.L), R: stripExpr(x.R)}
	case *cir.ExprNEQ:
		return &cir.ExprNEQ{L: stripExpr(x.L), R: stripExpr(x.R)}
	case *cir.ExprDiv:
		return &cir.ExprDiv{Num: stripExpr(x.Num), Den: stripExpr(x.Den)}
	case *cir.ExprDeref:
		return &cir.ExprDeref{X: stripExpr(x.X)}
	case *cir.ExprToInt:
		return &cir.ExprToInt{X: stripExpr(x.X)}
	case *cir.ExprCall:
		return &cir.ExprCall{
			Callee:   x.Callee,
			Recv:     stripExpr(x.Recv),
			TypeArgs: x.TypeArgs,
			Args:     stripExprs(x.Args),
		}
	default:
		return e
	}
}
