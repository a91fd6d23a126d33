package engine

import (
	"cmp"
	"context"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/sirkon/castvalue/internal/castvalue"
	"github.com/sirkon/castvalue/internal/checks"
	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/symbolic"
)

// explorer runs a depth-first exploration of a single function.
type explorer struct {
	fn       *cir.Function
	modeler  *castvalue.Modeler
	inspect  bool
	maxPaths int
	classes  cir.Hierarchy
	log      zerolog.Logger
	spans    *Context

	defects     *ReporterPhase
	inspections *ReporterPhase
	summary     *ReporterPhase

	// reached counts paths reaching NumTimesReached calls.
	reached map[token.Pos]int
}

func newExplorer(e *Engine, fn *cir.Function) *explorer {
	return &explorer{
		fn:          fn,
		modeler:     e.opts.Modeler,
		inspect:     e.opts.Inspect,
		maxPaths:    e.opts.MaxPaths,
		classes:     e.opts.Classes,
		log:         e.opts.Logger.With().Str("function", fn.Name).Logger(),
		spans:       NewContext(fn.Spans),
		defects:     e.reporter.Phase(ReportTrace),
		inspections: e.reporter.Phase(ReportInspect),
		summary:     e.reporter.Phase(ReportSummary),
		reached:     map[token.Pos]int{},
	}
}

func (x *explorer) run(ctx context.Context) (Result, error) {
	res := Result{Function: x.fn.Name}

	stack := []*path{x.entry()}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("interrupted after %d paths: %w", res.Paths, err)
		}

		if res.Paths+len(stack) > x.maxPaths {
			res.Truncated = true
			x.log.Warn().Int("max-paths", x.maxPaths).Msg("path budget exhausted")
			break
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.cont) == 0 {
			res.Paths++
			continue
		}

		s := p.cont[0]
		p = p.derive()
		p.cont = p.cont[1:]

		succ := x.step(p, s)
		if len(succ) == 0 {
			x.log.Debug().Int("pos", int(s.Pos())).Msg("path ended")
		}
		for i := len(succ) - 1; i >= 0; i-- {
			stack = append(stack, succ[i])
		}
	}

	x.reportReached()
	x.log.Debug().Int("paths", res.Paths).Bool("truncated", res.Truncated).Msg("explored")

	return res, nil
}

// entry creates the initial path. Parameters are bound to fresh symbols,
// references are never null.
func (x *explorer) entry() *path {
	space := symbolic.NewSpace(symbolic.WithHierarchy(x.classes))
	p := &path{
		state: space.NewState(),
		cont:  x.fn.Body,
	}

	for _, param := range x.fn.Params {
		loc := space.Conjure()
		p = p.bind(param.Name, loc, param.Type)
		if !isReference(param.Type) {
			continue
		}

		if st, ok := p.state.AssumeNull(loc, false); ok {
			p = p.withState(st)
		}
	}

	return p
}

// step executes a statement and returns feasible successors. No successors
// means the path either is infeasible or ended with a finding.
func (x *explorer) step(p *path, s cir.Statement) []*path {
	switch s := s.(type) {
	case *cir.Assign:
		return x.assign(p, s)

	case *cir.ExprStmt:
		return paths(x.eval(p, s.X))

	case *cir.If:
		pre := []*path{p}
		if s.Init != nil {
			pre = x.step(p, s.Init)
		}

		var res []*path
		for _, q := range pre {
			t, f := x.branch(q, s.Cond)
			for _, b := range t {
				b = x.testNote(b, s.Cond)
				b = b.note(Note{Pos: s.At, Message: "Taking true branch"})
				res = append(res, b.prepend(s.Then))
			}
			for _, b := range f {
				b = x.testNote(b, s.Cond)
				b = b.note(Note{Pos: s.At, Message: "Taking false branch"})
				res = append(res, b.prepend(s.Else))
			}
		}
		return res

	case *cir.Block:
		return []*path{p.prepend(s.Body)}

	case *cir.Return:
		var res []*path
		for _, lo := range x.evalList(p, s.Results) {
			res = append(res, lo.p.stop())
		}
		return res

	case *cir.Inspect:
		return x.inspectCall(p, s)

	case *cir.Opaque:
		x.log.Debug().Str("kind", s.Kind).Int("pos", int(s.At)).Msg("statement skipped")
		return []*path{p}

	default:
		return []*path{p}
	}
}

func (x *explorer) assign(p *path, s *cir.Assign) []*path {
	var res []*path
	for _, o := range x.eval(p, s.Src) {
		if isReference(o.typ) {
			subjects := append(exprSubjects(s.Src), s.Dst)
			switch {
			case isNull(o.p.state, o.v):
				x.reportDefect(o.p, checks.NullDereference(), s.At, subjects)
				continue
			case o.v == symbolic.Value(symbolic.Invalid{}):
				x.reportDefect(o.p, checks.InvalidReference(), s.At, subjects)
				continue
			}
		}

		q := o.p.bind(s.Dst, o.v, o.typ)
		switch {
		case isNull(q.state, o.v):
			q = q.note(Note{
				Pos:     s.At,
				Message: fmt.Sprintf("'%s' initialized to a null pointer value", s.Dst),
				subject: s.Dst,
			})
		case o.typ.Pointer && isLoc(o.v):
			q = q.note(Note{
				Pos:     s.At,
				Message: fmt.Sprintf("'%s' initialized here", s.Dst),
				subject: s.Dst,
			})
		}

		res = append(res, q)
	}

	return res
}

// testNote records what a pointer test of a variable turned out to be on the
// path.
//
//	if T != nil { // 'T' is non-null
func (x *explorer) testNote(p *path, cond cir.Expr) *path {
	name, ok := pointerTest(cond)
	if !ok {
		return p
	}

	v, ok := p.state.Lookup(name)
	if !ok {
		return p
	}

	var msg string
	switch p.state.Nullness(v) {
	case symbolic.NullnessNull:
		msg = fmt.Sprintf("'%s' is null", name)
	case symbolic.NullnessNotNull:
		msg = fmt.Sprintf("'%s' is non-null", name)
	default:
		return p
	}

	return p.note(Note{Pos: cond.Pos(), Message: msg, subject: name})
}

func (x *explorer) reportDefect(p *path, check checks.Check, pos token.Pos, subjects []string) {
	added := x.defects.Report(Report{
		Check:    check,
		Function: x.fn.Name,
		Pos:      pos,
		End:      x.spans.End(pos),
		Notes:    p.notesFor(subjects),
	})
	if added {
		x.log.Debug().Stringer("check", check).Int("pos", int(pos)).Msg("defect found")
	}
}

func (x *explorer) reportInspection(check checks.Check, pos token.Pos, msg string) {
	x.inspections.Report(Report{
		Check:    check,
		Function: x.fn.Name,
		Pos:      pos,
		End:      x.spans.End(pos),
		Message:  msg,
	})
}

func (x *explorer) reportReached() {
	if !x.inspect {
		return
	}

	positions := slices.SortedFunc(maps.Keys(x.reached), cmp.Compare[token.Pos])
	for _, pos := range positions {
		x.summary.Report(Report{
			Check:    checks.DebugNumTimesReached(),
			Function: x.fn.Name,
			Pos:      pos,
			End:      x.spans.End(pos),
			Message:  strconv.Itoa(x.reached[pos]),
		})
	}
}

func paths(outs []outcome) []*path {
	res := make([]*path, 0, len(outs))
	for _, o := range outs {
		res = append(res, o.p)
	}

	return res
}

// isReference checks if the static type is a reference: a named type not
// behind a pointer. References are never null.
func isReference(t cir.TypeRef) bool {
	return t.Name != "" && !t.Pointer
}

func isNull(st *symbolic.State, v symbolic.Value) bool {
	return st.Nullness(v) == symbolic.NullnessNull
}

func isLoc(v symbolic.Value) bool {
	_, ok := v.(symbolic.Loc)
	return ok
}
