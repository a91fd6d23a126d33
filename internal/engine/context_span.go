package engine

import (
	"go/token"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/castvalue/internal/cir"
)

// contextNodeSpan stores a [start,end] span and, if needed, a nested RB-tree
// for child spans fully contained in this span.
type contextNodeSpan struct {
	start token.Pos
	end   token.Pos

	span     cir.Span
	children *rbtree.Tree[*contextNodeSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position":
//   - -1 if this span is strictly before other;
//   - 1 if this span is strictly after other;
//   - 0 if spans overlap in any way, containment included.
//
// Overlapping spans are always in a containment relationship, so "equal"
// means either superspan or subspan. InsertReturn hands the overlapping node
// back and the containment structure is fixed up by attachInto.
func (n *contextNodeSpan) Cmp(other *contextNodeSpan) int {
	if n.end < other.start {
		return -1
	}
	if n.start > other.end {
		return 1
	}
	return 0
}

func contains(a, b *contextNodeSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, r is mutated in-place
//     to become s and the old r is re-attached as a child of it.
//   - If r contains s, s is attached into r.children.
func attachInto(t *rbtree.Tree[*contextNodeSpan], s *contextNodeSpan) {
	r := t.InsertReturn(s)
	if r == s {
		return
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*contextNodeSpan]()
		}
		attachInto(r.children, s)
		return
	}

	if contains(s, r) {
		old := *r
		*r = *s
		r.children = rbtree.New[*contextNodeSpan]()
		attachInto(r.children, &old)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *contextNodeSpan, pos token.Pos) cir.Span {
	if n.children == nil {
		return n.span
	}

	probe := &contextNodeSpan{start: pos, end: pos}
	child := n.children.Search(probe)
	if child == nil {
		return n.span
	}

	return descendSearch(child, pos)
}
