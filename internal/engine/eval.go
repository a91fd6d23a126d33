package engine

import (
	"slices"

	"github.com/sirkon/castvalue/internal/castvalue"
	"github.com/sirkon/castvalue/internal/checks"
	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/symbolic"
)

// eval evaluates an expression. Calls and conditions may fork the path, so
// there is an outcome per feasible successor.
func (x *explorer) eval(p *path, e cir.Expr) []outcome {
	switch e := e.(type) {
	case *cir.ExprVar:
		v, ok := p.state.Lookup(e.Name)
		if !ok {
			v = symbolic.Unknown{}
		}
		return []outcome{{p: p, v: v, typ: p.types[e.Name]}}

	case *cir.ExprNil:
		return []outcome{{p: p, v: symbolic.Null{}, typ: cir.TypeRef{Pointer: true}}}

	case *cir.ExprBool:
		return []outcome{{p: p, v: boolValue(e.Value)}}

	case *cir.ExprInt:
		return []outcome{{p: p, v: symbolic.Int{V: e.Value}}}

	case *cir.ExprToInt:
		return x.condValue(p, e.X)

	case *cir.ExprNot, *cir.ExprAnd, *cir.ExprOr, *cir.ExprEQ, *cir.ExprNEQ:
		return x.condValue(p, e)

	case *cir.ExprDiv:
		return x.div(p, e)

	case *cir.ExprDeref:
		return x.deref(p, e)

	case *cir.ExprCall:
		return x.call(p, e)

	default:
		return []outcome{{p: p, v: symbolic.Unknown{}}}
	}
}

// evalList evaluates expressions left to right.
func (x *explorer) evalList(p *path, exprs []cir.Expr) []listOutcome {
	res := []listOutcome{{p: p}}
	for _, e := range exprs {
		var next []listOutcome
		for _, lo := range res {
			for _, o := range x.eval(lo.p, e) {
				next = append(next, listOutcome{
					p:     o.p,
					vals:  append(slices.Clip(lo.vals), o.v),
					types: append(slices.Clip(lo.types), o.typ),
				})
			}
		}
		res = next
	}

	return res
}

// condValue evaluates a condition as 1 or 0, forking when both are feasible.
func (x *explorer) condValue(p *path, c cir.Expr) []outcome {
	t, f := x.branch(p, c)

	res := make([]outcome, 0, len(t)+len(f))
	for _, q := range t {
		res = append(res, outcome{p: q, v: boolValue(true)})
	}
	for _, q := range f {
		res = append(res, outcome{p: q, v: boolValue(false)})
	}

	return res
}

// div reports division by zero only when the denominator is definitely zero
// on the path. Otherwise the path continues with a non-zero denominator.
func (x *explorer) div(p *path, e *cir.ExprDiv) []outcome {
	var res []outcome
	for _, num := range x.eval(p, e.Num) {
		if c, ok := condition(e.Den); ok {
			// The divisor is 1 or 0: zero only when the condition cannot hold.
			t, f := x.branch(num.p, c)
			if len(t) == 0 {
				if len(f) > 0 {
					q := x.testNote(f[0], c)
					x.reportDefect(q, checks.DivisionByZero(), e.At, exprSubjects(e.Den))
				}
				continue
			}

			for _, q := range t {
				res = append(res, outcome{p: x.testNote(q, c), v: quotient(num.v, boolValue(true))})
			}
			continue
		}

		for _, den := range x.eval(num.p, e.Den) {
			if isZero(den.p.state, den.v) {
				x.reportDefect(den.p, checks.DivisionByZero(), e.At, exprSubjects(e.Den))
				continue
			}

			q := den.p
			if isLoc(den.v) {
				st, ok := q.state.AssumeNull(den.v, false)
				if !ok {
					continue
				}
				q = q.withState(st)
			}

			res = append(res, outcome{p: q, v: quotient(num.v, den.v)})
		}
	}

	return res
}

func (x *explorer) deref(p *path, e *cir.ExprDeref) []outcome {
	var res []outcome
	for _, o := range x.eval(p, e.X) {
		switch {
		case isNull(o.p.state, o.v):
			x.reportDefect(o.p, checks.NullDereference(), e.At, exprSubjects(e.X))
			continue
		case o.v == symbolic.Value(symbolic.Invalid{}):
			x.reportDefect(o.p, checks.InvalidReference(), e.At, exprSubjects(e.X))
			continue
		}

		q := o.p
		if st, ok := q.state.AssumeNull(o.v, false); ok {
			q = q.withState(st)
		}

		res = append(res, outcome{p: q, v: symbolic.Unknown{}})
	}

	return res
}

// call evaluates the receiver and the arguments and then either hands the
// call to the cast modeler or treats it as opaque: its result is a fresh
// symbol nothing is known about.
func (x *explorer) call(p *path, e *cir.ExprCall) []outcome {
	var exprs []cir.Expr
	if e.IsMethod() {
		exprs = append(exprs, e.Recv)
	}
	exprs = append(exprs, e.Args...)

	var res []outcome
	for _, lo := range x.evalList(p, exprs) {
		call := &castvalue.Call{
			Site:     e.At,
			Callee:   e.Callee,
			Method:   e.IsMethod(),
			TypeArgs: e.TypeArgs,
		}

		ops := make([]castvalue.Operand, len(lo.vals))
		for i, v := range lo.vals {
			ops[i] = castvalue.Operand{Value: v, Type: lo.types[i]}
		}
		if call.Method {
			call.Receiver = ops[0]
			call.Callee.Type = ops[0].Type.Name
			ops = ops[1:]
		}
		call.Args = ops

		r, ok := x.modeler.Model(lo.p.state, call)
		if !ok {
			loc := lo.p.state.Space().Conjure()
			res = append(res, outcome{p: lo.p.withState(lo.p.state.BindExpr(e.At, loc)), v: loc})
			continue
		}

		x.log.Debug().
			Stringer("kind", r.Desc.Kind).
			Str("target", r.Desc.Target).
			Int("successors", len(r.Transitions)).
			Msg("cast modeled")
		for _, tr := range r.Transitions {
			q := lo.p.withState(tr.State).note(Note{Pos: e.At, Message: tr.Note.String()})
			res = append(res, outcome{p: q, v: tr.Value, typ: r.Desc.Result})
		}
	}

	return res
}

// condition returns the condition of a boolean-valued expression.
//
//	!C, C == nil, A && B, analyzer.Int(C)
func condition(e cir.Expr) (cir.Expr, bool) {
	switch e := e.(type) {
	case *cir.ExprToInt:
		return e.X, true
	case *cir.ExprNot, *cir.ExprAnd, *cir.ExprOr, *cir.ExprEQ, *cir.ExprNEQ:
		return e, true
	default:
		return nil, false
	}
}

func boolValue(v bool) symbolic.Int {
	if v {
		return symbolic.Int{V: 1}
	}

	return symbolic.Int{V: 0}
}

func isZero(st *symbolic.State, v symbolic.Value) bool {
	if i, ok := v.(symbolic.Int); ok {
		return i.V == 0
	}

	return isNull(st, v)
}

func quotient(num, den symbolic.Value) symbolic.Value {
	a, ok1 := num.(symbolic.Int)
	b, ok2 := den.(symbolic.Int)
	if !ok1 || !ok2 || b.V == 0 {
		return symbolic.Unknown{}
	}

	return symbolic.Int{V: a.V / b.V}
}
