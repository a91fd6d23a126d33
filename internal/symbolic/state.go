package symbolic

import (
	"go/token"
	"maps"
)

// State is an immutable snapshot of bindings and path constraints.
type State struct {
	space *Space

	vars  map[string]Value
	exprs map[token.Pos]Value

	parent map[SymbolID]SymbolID
	null   map[SymbolID]Nullness
	diseq  map[symPair]struct{}
	casts  map[SymbolID]castFacts
}

type symPair struct {
	a, b SymbolID
}

func pairOf(a, b SymbolID) symPair {
	if a > b {
		a, b = b, a
	}
	return symPair{a: a, b: b}
}

// Space returns the space the state was created in.
func (s *State) Space() *Space {
	return s.space
}

func (s *State) derive() *State {
	ns := *s
	return &ns
}

// --- Bindings -------------------------------------------------------------------------------------------------------

// Bind returns a state where the variable is bound to the value.
func (s *State) Bind(name string, v Value) *State {
	ns := s.derive()
	ns.vars = maps.Clone(s.vars)
	if ns.vars == nil {
		ns.vars = make(map[string]Value, 1)
	}
	ns.vars[name] = v

	return ns
}

// Lookup returns the value bound to the variable.
func (s *State) Lookup(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// BindExpr returns a state where the expression at the given position is
// bound to the value.
func (s *State) BindExpr(site token.Pos, v Value) *State {
	ns := s.derive()
	ns.exprs = maps.Clone(s.exprs)
	if ns.exprs == nil {
		ns.exprs = make(map[token.Pos]Value, 1)
	}
	ns.exprs[site] = v

	return ns
}

// ExprValue returns the value bound to the expression at the given position.
func (s *State) ExprValue(site token.Pos) (Value, bool) {
	v, ok := s.exprs[site]
	return v, ok
}

// --- Aliasing -------------------------------------------------------------------------------------------------------

func (s *State) root(sym SymbolID) SymbolID {
	for {
		p, ok := s.parent[sym]
		if !ok || p == sym {
			return sym
		}
		sym = p
	}
}

func (s *State) hasDiseq(ra, rb SymbolID) bool {
	for p := range s.diseq {
		pa, pb := s.root(p.a), s.root(p.b)
		if (pa == ra && pb == rb) || (pa == rb && pb == ra) {
			return true
		}
	}

	return false
}

// SameLocation reports whether both values are pointers known to be equal:
// either both null or aliases of the same class.
func (s *State) SameLocation(a, b Value) bool {
	switch x := a.(type) {
	case Null:
		return s.Nullness(b) == NullnessNull
	case Loc:
		switch y := b.(type) {
		case Loc:
			if s.root(x.Sym) == s.root(y.Sym) {
				return true
			}
			return s.Nullness(x) == NullnessNull && s.Nullness(y) == NullnessNull
		case Null:
			return s.Nullness(x) == NullnessNull
		}
	}

	return false
}

// --- Nullness -------------------------------------------------------------------------------------------------------

// Nullness returns what is known about the value being null.
func (s *State) Nullness(v Value) Nullness {
	switch x := v.(type) {
	case Null:
		return NullnessNull
	case Loc:
		return s.null[s.root(x.Sym)]
	default:
		return NullnessUnknown
	}
}

// AssumeNull constrains the value to be null (isNull) or non-null.
//
// Values that are not pointers carry no nullness and every assumption about
// them is feasible.
func (s *State) AssumeNull(v Value, isNull bool) (*State, bool) {
	want := NullnessNotNull
	if isNull {
		want = NullnessNull
	}

	switch x := v.(type) {
	case Null:
		if !isNull {
			return nil, false
		}
		return s, true

	case Loc:
		r := s.root(x.Sym)
		cur := s.null[r]
		if cur == want {
			return s, true
		}
		if cur != NullnessUnknown {
			return nil, false
		}

		if isNull {
			// Two null pointers are equal.
			for p := range s.diseq {
				pa, pb := s.root(p.a), s.root(p.b)
				switch r {
				case pa:
					if s.null[pb] == NullnessNull {
						return nil, false
					}
				case pb:
					if s.null[pa] == NullnessNull {
						return nil, false
					}
				}
			}
		}

		return s.withNullness(r, want), true

	default:
		return s, true
	}
}

func (s *State) withNullness(root SymbolID, n Nullness) *State {
	ns := s.derive()
	ns.null = maps.Clone(s.null)
	if ns.null == nil {
		ns.null = make(map[SymbolID]Nullness, 1)
	}
	ns.null[root] = n

	return ns
}

// --- Equality -------------------------------------------------------------------------------------------------------

// AssumeEqual constrains two values to be equal (eq) or different.
func (s *State) AssumeEqual(a, b Value, eq bool) (*State, bool) {
	switch x := a.(type) {
	case Null:
		return s.AssumeNull(b, eq)

	case Int:
		if y, ok := b.(Int); ok && (x.V == y.V) != eq {
			return nil, false
		}
		return s, true

	case Loc:
		switch y := b.(type) {
		case Null:
			return s.AssumeNull(x, eq)
		case Loc:
			return s.assumeLocsEqual(x, y, eq)
		}
	}

	return s, true
}

func (s *State) assumeLocsEqual(a, b Loc, eq bool) (*State, bool) {
	ra, rb := s.root(a.Sym), s.root(b.Sym)
	if ra == rb {
		if !eq {
			return nil, false
		}
		return s, true
	}

	na, nb := s.null[ra], s.null[rb]
	if !eq {
		if na == NullnessNull && nb == NullnessNull {
			return nil, false
		}
		if s.hasDiseq(ra, rb) {
			return s, true
		}

		ns := s.derive()
		ns.diseq = maps.Clone(s.diseq)
		if ns.diseq == nil {
			ns.diseq = make(map[symPair]struct{}, 1)
		}
		ns.diseq[pairOf(ra, rb)] = struct{}{}
		return ns, true
	}

	if s.hasDiseq(ra, rb) {
		return nil, false
	}

	merged, ok := mergeNullness(na, nb)
	if !ok {
		return nil, false
	}

	facts, ok := s.mergeCastFacts(s.casts[ra], s.casts[rb])
	if !ok {
		return nil, false
	}

	ns := s.derive()
	ns.parent = maps.Clone(s.parent)
	if ns.parent == nil {
		ns.parent = make(map[SymbolID]SymbolID, 1)
	}
	ns.parent[rb] = ra

	if merged != na {
		ns = ns.withNullness(ra, merged)
	}
	if _, had := s.casts[rb]; had {
		ns = ns.withCastFacts(ra, facts)
	}

	return ns, true
}

func mergeNullness(a, b Nullness) (Nullness, bool) {
	switch {
	case a == NullnessUnknown:
		return b, true
	case b == NullnessUnknown:
		return a, true
	case a == b:
		return a, true
	default:
		return NullnessUnknown, false
	}
}
