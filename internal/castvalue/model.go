package castvalue

import (
	"github.com/sirkon/castvalue/internal/symbolic"
)

// Modeler turns recognized cast calls into successor states.
type Modeler struct {
	catalog *Catalog
	refFail ReferenceFailure
}

// Option configures a [Modeler].
type Option func(m *Modeler)

// WithReferenceFailure sets what a failed dynamic cast of a reference yields.
func WithReferenceFailure(mode ReferenceFailure) Option {
	return func(m *Modeler) {
		m.refFail = mode
	}
}

// New is [Modeler] constructor. A nil catalog means predefined entries only.
func New(catalog *Catalog, opts ...Option) *Modeler {
	if catalog == nil {
		catalog = NewCatalog(nil)
	}

	m := &Modeler{catalog: catalog}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Catalog returns the catalog calls are recognized with.
func (m *Modeler) Catalog() *Catalog {
	return m.catalog
}

// Transition is a successor state produced by modeling a call.
type Transition struct {
	State   *symbolic.State
	Outcome Outcome
	Note    Note

	// Value is what the call result is bound to in State.
	Value symbolic.Value
}

// Result is the outcome of modeling one call.
type Result struct {
	Desc        Descriptor
	Transitions []Transition
}

// Model computes successor states of the call. It returns false for calls
// that are not recognized: these are left to the default handling.
//
// An empty transition list for a recognized call means that every outcome
// contradicts the incoming state, i.e. the path is infeasible.
func (m *Modeler) Model(st *symbolic.State, call *Call) (*Result, bool) {
	d, ok := m.catalog.Classify(call)
	if !ok {
		return nil, false
	}

	var outcomes []Outcome
	switch d.Kind {
	case Cast, CastAs:
		outcomes = []Outcome{OutcomeChecked}
	case DynCast, GetAs:
		outcomes = []Outcome{OutcomeSucceeds, OutcomeFails}
	case CastOrNull:
		outcomes = []Outcome{OutcomeNullInput, OutcomeChecked}
	case DynCastOrNull:
		outcomes = []Outcome{OutcomeNullInput, OutcomeSucceeds, OutcomeFails}
	}

	res := &Result{Desc: d}
	for _, o := range outcomes {
		t, ok := m.fork(st, &d, o)
		if !ok {
			continue
		}

		res.Transitions = append(res.Transitions, t)
	}

	return res, true
}

func (m *Modeler) fork(st *symbolic.State, d *Descriptor, o Outcome) (Transition, bool) {
	src := d.Source.Value
	t := Transition{
		Outcome: o,
		Note: Note{
			Outcome: o,
			Kind:    d.Kind,
			From:    d.Source.Type.Name,
			To:      d.Target,
		},
	}

	var ok bool
	switch o {
	case OutcomeNullInput:
		if st, ok = st.AssumeNull(src, true); !ok {
			return Transition{}, false
		}
		t.Value = symbolic.Null{}

	case OutcomeChecked, OutcomeSucceeds:
		if st, ok = st.AssumeNull(src, false); !ok {
			return Transition{}, false
		}
		if st, ok = st.AssumeCast(src, d.Target, true); !ok {
			return Transition{}, false
		}
		t.Value = src

	case OutcomeFails:
		if st, ok = st.AssumeNull(src, false); !ok {
			return Transition{}, false
		}
		if st, ok = st.AssumeCast(src, d.Target, false); !ok {
			return Transition{}, false
		}
		t.Value = symbolic.Null{}
		if !d.ReturnsPointer() && m.refFail == ReferenceFailureInvalid {
			t.Value = symbolic.Invalid{}
		}
	}

	t.State = st.BindExpr(d.Site, t.Value)
	return t, true
}
