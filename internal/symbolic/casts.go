package symbolic

import (
	"maps"

	"github.com/bits-and-blooms/bitset"
)

// castFacts keeps dynamic cast outcomes recorded for a pointer class. Sets are
// indexed by [Space] type indices and are never mutated once stored.
type castFacts struct {
	assumed   string
	succeeded *bitset.BitSet
	failed    *bitset.BitSet
}

// mergeCastFacts combines facts of two pointers becoming aliases. The more
// specific assumed type wins; unrelated assumed types cannot be merged.
func (s *State) mergeCastFacts(a, b castFacts) (castFacts, bool) {
	if intersects(a.succeeded, b.failed) || intersects(a.failed, b.succeeded) {
		return castFacts{}, false
	}

	res := castFacts{
		succeeded: union(a.succeeded, b.succeeded),
		failed:    union(a.failed, b.failed),
	}
	switch {
	case a.assumed == "":
		res.assumed = b.assumed
	case b.assumed == "", s.space.isA(a.assumed, b.assumed):
		res.assumed = a.assumed
	case s.space.isA(b.assumed, a.assumed):
		res.assumed = b.assumed
	default:
		return castFacts{}, false
	}

	if res.assumed != "" && s.rulesOut(res.failed, res.assumed) {
		return castFacts{}, false
	}

	return res, true
}

// rulesOut checks if a cast to typ or to any of its bases is known to fail.
func (s *State) rulesOut(failed *bitset.BitSet, typ string) bool {
	if failed == nil {
		return false
	}

	for i, ok := failed.NextSet(0); ok; i, ok = failed.NextSet(i + 1) {
		if s.space.isA(typ, s.space.typeName(i)) {
			return true
		}
	}

	return false
}

func intersects(a, b *bitset.BitSet) bool {
	if a == nil || b == nil {
		return false
	}

	return a.IntersectionCardinality(b) > 0
}

func union(a, b *bitset.BitSet) *bitset.BitSet {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return a.Union(b)
	}
}

func has(b *bitset.BitSet, i uint) bool {
	return b != nil && b.Test(i)
}

func with(b *bitset.BitSet, i uint) *bitset.BitSet {
	if b == nil {
		return bitset.New(i + 1).Set(i)
	}

	return b.Clone().Set(i)
}

func (s *State) withCastFacts(root SymbolID, f castFacts) *State {
	ns := s.derive()
	ns.casts = maps.Clone(s.casts)
	if ns.casts == nil {
		ns.casts = make(map[SymbolID]castFacts, 1)
	}
	ns.casts[root] = f

	return ns
}

// AssumeCast records the outcome of a dynamic cast of the pointer to the
// target type. A success makes target the assumed dynamic type unless a more
// specific one is known already; a failure only rules target out.
//
// An object has a single dynamic type, so a success is infeasible when the
// assumed type and target are unrelated, or when a cast to target or to one
// of its bases is known to fail. A failure is infeasible when the assumed type
// is target or is derived from it. Values other than symbolic pointers carry
// no dynamic type and are accepted as is.
func (s *State) AssumeCast(v Value, target string, succeeds bool) (*State, bool) {
	loc, ok := v.(Loc)
	if !ok {
		return s, true
	}

	r := s.root(loc.Sym)
	i := s.space.typeIndex(target)
	f := s.casts[r]

	if succeeds {
		if s.rulesOut(f.failed, target) {
			return nil, false
		}

		assumed := f.assumed
		switch {
		case assumed == "", s.space.isA(target, assumed):
			assumed = target
		case s.space.isA(assumed, target):
		default:
			return nil, false
		}

		if has(f.succeeded, i) && assumed == f.assumed {
			return s, true
		}

		if !has(f.succeeded, i) {
			f.succeeded = with(f.succeeded, i)
		}
		f.assumed = assumed
		return s.withCastFacts(r, f), true
	}

	if has(f.succeeded, i) || (f.assumed != "" && s.space.isA(f.assumed, target)) {
		return nil, false
	}
	if has(f.failed, i) {
		return s, true
	}

	f.failed = with(f.failed, i)
	return s.withCastFacts(r, f), true
}

// DynamicType returns the assumed dynamic type of the pointer.
func (s *State) DynamicType(v Value) (string, bool) {
	loc, ok := v.(Loc)
	if !ok {
		return "", false
	}

	f := s.casts[s.root(loc.Sym)]
	return f.assumed, f.assumed != ""
}

// CastOutcome returns the recorded outcome of casting the pointer to the
// target type. known is false when no cast to target was assumed yet.
func (s *State) CastOutcome(v Value, target string) (succeeds, known bool) {
	loc, ok := v.(Loc)
	if !ok {
		return false, false
	}

	i, ok := s.space.types[target]
	if !ok {
		return false, false
	}

	f := s.casts[s.root(loc.Sym)]
	switch {
	case has(f.succeeded, i):
		return true, true
	case has(f.failed, i):
		return false, true
	default:
		return false, false
	}
}

// RuledOut lists cast targets known to fail for the pointer.
func (s *State) RuledOut(v Value) []string {
	loc, ok := v.(Loc)
	if !ok {
		return nil
	}

	f := s.casts[s.root(loc.Sym)]
	if f.failed == nil {
		return nil
	}

	var res []string
	for i, ok := f.failed.NextSet(0); ok; i, ok = f.failed.NextSet(i + 1) {
		res = append(res, s.space.typeName(i))
	}

	return res
}
