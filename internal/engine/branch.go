package engine

import (
	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/symbolic"
)

// branch splits the path on a condition: t are successors where it holds,
// f are successors where it does not. Either may be empty.
func (x *explorer) branch(p *path, c cir.Expr) (t, f []*path) {
	switch c := c.(type) {
	case *cir.ExprNot:
		f, t = x.branch(p, c.X)
		return t, f

	case *cir.ExprAnd:
		lt, lf := x.branch(p, c.L)
		for _, q := range lt {
			rt, rf := x.branch(q, c.R)
			t = append(t, rt...)
			f = append(f, rf...)
		}
		return t, append(f, lf...)

	case *cir.ExprOr:
		lt, lf := x.branch(p, c.L)
		t = append(t, lt...)
		for _, q := range lf {
			rt, rf := x.branch(q, c.R)
			t = append(t, rt...)
			f = append(f, rf...)
		}
		return t, f

	case *cir.ExprEQ:
		return x.compare(p, c.L, c.R)

	case *cir.ExprNEQ:
		t, f = x.compare(p, c.L, c.R)
		return f, t

	case *cir.ExprToInt:
		return x.branch(p, c.X)
	}

	for _, o := range x.eval(p, c) {
		ot, of := truth(o.p, o.v)
		t = append(t, ot...)
		f = append(f, of...)
	}

	return t, f
}

func (x *explorer) compare(p *path, l, r cir.Expr) (eq, neq []*path) {
	for _, lo := range x.evalList(p, []cir.Expr{l, r}) {
		a, b := lo.vals[0], lo.vals[1]
		if st, ok := lo.p.state.AssumeEqual(a, b, true); ok {
			eq = append(eq, lo.p.withState(st))
		}
		if st, ok := lo.p.state.AssumeEqual(a, b, false); ok {
			neq = append(neq, lo.p.withState(st))
		}
	}

	return eq, neq
}

// truth splits the path on the value being non-zero or non-null.
func truth(p *path, v symbolic.Value) (t, f []*path) {
	switch v := v.(type) {
	case symbolic.Int:
		if v.V != 0 {
			return []*path{p}, nil
		}
		return nil, []*path{p}

	case symbolic.Null:
		return nil, []*path{p}

	case symbolic.Loc:
		if st, ok := p.state.AssumeNull(v, false); ok {
			t = append(t, p.withState(st))
		}
		if st, ok := p.state.AssumeNull(v, true); ok {
			f = append(f, p.withState(st))
		}
		return t, f

	default:
		return []*path{p}, []*path{p}
	}
}

// pointerTest returns the variable tested by a plain pointer test.
//
//	T, !T, T != nil, T == nil, nil == T
func pointerTest(c cir.Expr) (string, bool) {
	switch c := c.(type) {
	case *cir.ExprVar:
		return c.Name, true
	case *cir.ExprNot:
		return pointerTest(c.X)
	case *cir.ExprEQ:
		return comparedWithNil(c.L, c.R)
	case *cir.ExprNEQ:
		return comparedWithNil(c.L, c.R)
	case *cir.ExprToInt:
		return pointerTest(c.X)
	}

	return "", false
}

func comparedWithNil(l, r cir.Expr) (string, bool) {
	if _, ok := l.(*cir.ExprNil); ok {
		l, r = r, l
	}
	if _, ok := r.(*cir.ExprNil); !ok {
		return "", false
	}

	v, ok := l.(*cir.ExprVar)
	if !ok {
		return "", false
	}

	return v.Name, true
}

// exprSubjects collects variables an expression refers to.
func exprSubjects(e cir.Expr) []string {
	var res []string
	var walk func(e cir.Expr)
	walk = func(e cir.Expr) {
		switch e := e.(type) {
		case *cir.ExprVar:
			res = append(res, e.Name)
		case *cir.ExprNot:
			walk(e.X)
		case *cir.ExprAnd:
			walk(e.L)
			walk(e.R)
		case *cir.ExprOr:
			walk(e.L)
			walk(e.R)
		case *cir.ExprEQ:
			walk(e.L)
			walk(e.R)
		case *cir.ExprNEQ:
			walk(e.L)
			walk(e.R)
		case *cir.ExprDiv:
			walk(e.Num)
			walk(e.Den)
		case *cir.ExprDeref:
			walk(e.X)
		case *cir.ExprToInt:
			walk(e.X)
		case *cir.ExprCall:
			if e.Recv != nil {
				walk(e.Recv)
			}
			for _, arg := range e.Args {
				walk(arg)
			}
		}
	}
	walk(e)

	return res
}
