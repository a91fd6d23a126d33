package engine

import (
	"cmp"
	"go/token"
	"slices"

	"github.com/sirkon/rbtree"

	"github.com/sirkon/castvalue/internal/cir"
)

// NewContext builds the span index of a function.
func NewContext(spans []cir.Span) *Context {
	c := &Context{tree: rbtree.New[*contextNodeSpan]()}

	// Outer spans go first, so every insertion either lands into free space
	// or descends into its parent.
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b cir.Span) int {
		if v := cmp.Compare(a.Start, b.Start); v != 0 {
			return v
		}
		return cmp.Compare(b.End, a.End)
	})
	for _, s := range sorted {
		c.Add(s)
	}

	return c
}

// Context holds source spans of the statements of a single function. It is
// used to turn a diagnostic position into the range of the statement holding it.
type Context struct {
	tree *rbtree.Tree[*contextNodeSpan]
}

// GetByPos returns the most specific (innermost) span covering pos.
func (c *Context) GetByPos(pos token.Pos) (cir.Span, bool) {
	if c == nil {
		return cir.Span{}, false
	}

	probe := &contextNodeSpan{start: pos, end: pos}
	res := c.tree.Search(probe)
	if res == nil {
		return cir.Span{}, false
	}

	return descendSearch(res, pos), true
}

// End returns the end of the innermost span covering pos, or pos itself
// when there is none.
func (c *Context) End(pos token.Pos) token.Pos {
	s, ok := c.GetByPos(pos)
	if !ok {
		return pos
	}

	return s.End
}

// Add registers a span. Spans must either nest or be disjoint.
func (c *Context) Add(s cir.Span) {
	attachInto(c.tree, &contextNodeSpan{start: s.Start, end: s.End, span: s})
}
