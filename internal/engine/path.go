package engine

import (
	"maps"
	"slices"

	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/symbolic"
)

// path is an immutable snapshot of a single execution path: the program
// state, static types of variables, notes collected so far and the
// statements left to execute.
type path struct {
	state *symbolic.State
	types map[string]cir.TypeRef
	notes []Note
	cont  []cir.Statement
}

func (p *path) derive() *path {
	np := *p
	return &np
}

func (p *path) withState(st *symbolic.State) *path {
	np := p.derive()
	np.state = st
	return np
}

func (p *path) bind(name string, v symbolic.Value, typ cir.TypeRef) *path {
	np := p.derive()
	np.state = p.state.Bind(name, v)
	np.types = maps.Clone(p.types)
	if np.types == nil {
		np.types = make(map[string]cir.TypeRef, 1)
	}
	np.types[name] = typ

	return np
}

func (p *path) note(n Note) *path {
	np := p.derive()
	np.notes = append(slices.Clip(p.notes), n)
	return np
}

// prepend schedules statements to be executed before the rest of the path.
func (p *path) prepend(stmts []cir.Statement) *path {
	if len(stmts) == 0 {
		return p
	}

	np := p.derive()
	np.cont = slices.Concat(stmts, p.cont)
	return np
}

func (p *path) stop() *path {
	np := p.derive()
	np.cont = nil
	return np
}

// notesFor returns notes relevant to a finding about the given variables.
func (p *path) notesFor(subjects []string) []Note {
	var res []Note
	for _, n := range p.notes {
		if n.subject != "" && !slices.Contains(subjects, n.subject) {
			continue
		}
		res = append(res, n)
	}

	return res
}

// outcome is a path after evaluating an expression.
type outcome struct {
	p   *path
	v   symbolic.Value
	typ cir.TypeRef
}

// listOutcome is a path after evaluating a list of expressions left to right.
type listOutcome struct {
	p     *path
	vals  []symbolic.Value
	types []cir.TypeRef
}
