package translate

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/castvalue/internal/cir"
)

func (t *Translator) stmts(list []ast.Stmt) []cir.Statement {
	var res []cir.Statement
	for _, s := range list {
		if _, ok := s.(*ast.EmptyStmt); ok {
			continue
		}

		res = append(res, t.stmt(s))
	}

	return res
}

func (t *Translator) stmt(s ast.Stmt) cir.Statement {
	res := t.stmtNode(s)
	t.spans = append(t.spans, cir.Span{
		Node:  res,
		Start: s.Pos(),
		End:   s.End(),
	})

	return res
}

func (t *Translator) stmtNode(s ast.Stmt) cir.Statement {
	switch s := s.(type) {
	case *ast.AssignStmt:
		return t.assign(s)

	case *ast.DeclStmt:
		return t.decl(s)

	case *ast.ExprStmt:
		if res, ok := t.inspect(s.X); ok {
			return res
		}
		return &cir.ExprStmt{At: s.Pos(), X: t.expr(s.X)}

	case *ast.IfStmt:
		res := &cir.If{
			At:   s.Pos(),
			Cond: t.expr(s.Cond),
		}
		if s.Init != nil {
			res.Init = t.stmt(s.Init)
		}
		res.Then = t.stmts(s.Body.List)
		switch e := s.Else.(type) {
		case *ast.BlockStmt:
			res.Else = t.stmts(e.List)
		case *ast.IfStmt:
			res.Else = []cir.Statement{t.stmt(e)}
		}
		return res

	case *ast.BlockStmt:
		return &cir.Block{At: s.Pos(), Body: t.stmts(s.List)}

	case *ast.ReturnStmt:
		res := &cir.Return{At: s.Pos()}
		for _, r := range s.Results {
			res.Results = append(res.Results, t.expr(r))
		}
		return res

	default:
		return opaque(s)
	}
}

// opaque is a statement left uninterpreted. Loops are not unrolled and
// switches are not split into cases: their bodies are skipped.
func opaque(s ast.Stmt) *cir.Opaque {
	var kind string
	switch s := s.(type) {
	case *ast.ForStmt:
		kind = "for"
	case *ast.RangeStmt:
		kind = "range"
	case *ast.SwitchStmt:
		kind = "switch"
	case *ast.TypeSwitchStmt:
		kind = "type switch"
	case *ast.SelectStmt:
		kind = "select"
	case *ast.IncDecStmt:
		kind = s.Tok.String()
	case *ast.AssignStmt:
		kind = s.Tok.String()
	case *ast.DeclStmt:
		kind = "declaration"
	default:
		kind = "statement"
	}

	return &cir.Opaque{At: s.Pos(), Kind: kind}
}

// assign translates both := and =. Assignments to blank are evaluated for
// effects only.
func (t *Translator) assign(s *ast.AssignStmt) cir.Statement {
	if s.Tok != token.DEFINE && s.Tok != token.ASSIGN {
		// Compound assignments like x += 1.
		return opaque(s)
	}

	var body []cir.Statement
	if len(s.Lhs) == len(s.Rhs) {
		for i, lhs := range s.Lhs {
			body = append(body, t.assignPair(lhs, t.expr(s.Rhs[i]))...)
		}
	} else {
		// Multi-value call: evaluate it, results are unknown.
		for _, rhs := range s.Rhs {
			body = append(body, &cir.ExprStmt{At: rhs.Pos(), X: t.expr(rhs)})
		}
		for _, lhs := range s.Lhs {
			body = append(body, t.assignPair(lhs, &cir.ExprUnknown{At: lhs.Pos()})...)
		}
	}

	if len(body) == 1 {
		return body[0]
	}

	return &cir.Block{At: s.Pos(), Body: body}
}

func (t *Translator) assignPair(lhs ast.Expr, src cir.Expr) []cir.Statement {
	id, ok := lhs.(*ast.Ident)
	if !ok {
		// Stores through pointers, fields, etc: both sides are evaluated.
		return []cir.Statement{
			&cir.ExprStmt{At: src.Pos(), X: src},
			&cir.ExprStmt{At: lhs.Pos(), X: t.expr(lhs)},
		}
	}

	if id.Name == "_" {
		return []cir.Statement{&cir.ExprStmt{At: id.Pos(), X: src}}
	}

	return []cir.Statement{&cir.Assign{At: id.Pos(), Dst: id.Name, Src: src}}
}

// decl translates var declarations. Pointers without initial values are nil.
func (t *Translator) decl(s *ast.DeclStmt) cir.Statement {
	gen, ok := s.Decl.(*ast.GenDecl)
	if !ok || gen.Tok != token.VAR {
		return opaque(s)
	}

	var body []cir.Statement
	for _, spec := range gen.Specs {
		vs := spec.(*ast.ValueSpec)
		for i, name := range vs.Names {
			var src cir.Expr
			switch {
			case i < len(vs.Values):
				src = t.expr(vs.Values[i])
			case vs.Type != nil && typeRef(vs.Type).Pointer:
				src = &cir.ExprNil{At: name.Pos()}
			default:
				src = &cir.ExprUnknown{At: name.Pos()}
			}

			body = append(body, t.assignPair(name, src)...)
		}
	}

	if len(body) == 1 {
		return body[0]
	}

	return &cir.Block{At: s.Pos(), Body: body}
}

// inspect recognizes calls to inspection helpers.
func (t *Translator) inspect(e ast.Expr) (cir.Statement, bool) {
	call, ok := unparen(e).(*ast.CallExpr)
	if !ok {
		return nil, false
	}

	sel, ok := unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}

	pkg, ok := t.importedPackage(sel.X)
	if !ok {
		return nil, false
	}

	kind, ok := t.debug.inspection(pkg, sel.Sel.Name)
	if !ok {
		return nil, false
	}

	res := &cir.Inspect{At: call.Pos(), Kind: kind}
	for _, arg := range call.Args {
		res.Args = append(res.Args, t.expr(arg))
	}

	return res, true
}
