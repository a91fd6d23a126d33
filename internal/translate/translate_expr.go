package translate

import (
	"go/ast"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sirkon/castvalue/internal/cir"
)

func unparen(e ast.Expr) ast.Expr {
	return astutil.Unparen(e)
}

func (t *Translator) expr(e ast.Expr) cir.Expr {
	e = unparen(e)

	switch x := e.(type) {
	case *ast.Ident:
		switch x.Name {
		case "nil":
			return &cir.ExprNil{At: x.Pos()}
		case "true", "false":
			return &cir.ExprBool{At: x.Pos(), Value: x.Name == "true"}
		}
		return &cir.ExprVar{At: x.Pos(), Name: x.Name}

	case *ast.BasicLit:
		if x.Kind != token.INT {
			break
		}
		v, err := strconv.ParseInt(x.Value, 0, 64)
		if err != nil {
			break
		}
		return &cir.ExprInt{At: x.Pos(), Value: v}

	case *ast.UnaryExpr:
		if x.Op == token.NOT {
			return &cir.ExprNot{At: x.Pos(), X: t.expr(x.X)}
		}

	case *ast.StarExpr:
		return &cir.ExprDeref{At: x.Pos(), X: t.expr(x.X)}

	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND:
			return &cir.ExprAnd{At: x.Pos(), L: t.expr(x.X), R: t.expr(x.Y)}
		case token.LOR:
			return &cir.ExprOr{At: x.Pos(), L: t.expr(x.X), R: t.expr(x.Y)}
		case token.EQL:
			return &cir.ExprEQ{At: x.Pos(), L: t.expr(x.X), R: t.expr(x.Y)}
		case token.NEQ:
			return &cir.ExprNEQ{At: x.Pos(), L: t.expr(x.X), R: t.expr(x.Y)}
		case token.QUO:
			return &cir.ExprDiv{At: x.OpPos, Num: t.expr(x.X), Den: t.expr(x.Y)}
		}

	case *ast.CallExpr:
		return t.call(x)
	}

	return &cir.ExprUnknown{At: e.Pos()}
}

// call translates a call. The call site is the position of the opening
// parenthesis: it is unique even for chained method calls.
func (t *Translator) call(call *ast.CallExpr) cir.Expr {
	fun, typeArgs := splitTypeArgs(unparen(call.Fun))

	switch f := fun.(type) {
	case *ast.Ident:
		if f.Name == "bool" && len(typeArgs) == 0 && len(call.Args) == 1 {
			// Conversion to bool is pointer truthiness.
			return t.expr(call.Args[0])
		}

		return &cir.ExprCall{
			At:       call.Lparen,
			Callee:   cir.Reference{Name: f.Name},
			TypeArgs: typeArgs,
			Args:     t.args(call.Args),
		}

	case *ast.SelectorExpr:
		if pkg, ok := t.importedPackage(f.X); ok {
			if t.debug.isToInt(pkg, f.Sel.Name) && len(call.Args) == 1 {
				return &cir.ExprToInt{At: call.Pos(), X: t.expr(call.Args[0])}
			}

			return &cir.ExprCall{
				At:       call.Lparen,
				Callee:   cir.Reference{Package: pkg, Name: f.Sel.Name},
				TypeArgs: typeArgs,
				Args:     t.args(call.Args),
			}
		}

		return &cir.ExprCall{
			At:       call.Lparen,
			Callee:   cir.Reference{Name: f.Sel.Name},
			Recv:     t.expr(f.X),
			TypeArgs: typeArgs,
			Args:     t.args(call.Args),
		}
	}

	return &cir.ExprUnknown{At: call.Pos()}
}

func (t *Translator) args(args []ast.Expr) []cir.Expr {
	var res []cir.Expr
	for _, arg := range args {
		res = append(res, t.expr(arg))
	}

	return res
}

// splitTypeArgs separates explicit type arguments of a callee.
//
//	llvm.Cast[Circle]     → llvm.Cast, [Circle]
//	S.GetAs[Circle]       → S.GetAs, [Circle]
//	pair[Circle, *Square] → pair, [Circle, *Square]
func splitTypeArgs(fun ast.Expr) (ast.Expr, []cir.TypeRef) {
	var idx []ast.Expr
	switch x := fun.(type) {
	case *ast.IndexExpr:
		fun = x.X
		idx = []ast.Expr{x.Index}
	case *ast.IndexListExpr:
		fun = x.X
		idx = x.Indices
	default:
		return fun, nil
	}

	res := make([]cir.TypeRef, len(idx))
	for i, e := range idx {
		res[i] = typeRef(e)
	}

	return unparen(fun), res
}
