package engine

import (
	"go/token"
	"testing"

	"github.com/sirkon/castvalue/internal/cir"
)

func TestContextSpanDepthPattern(t *testing.T) {
	ctx := NewContext(nil)

	span := func(name string, start, end token.Pos) cir.Span {
		return cir.Span{
			Node:  &cir.ExprVar{Name: name},
			Start: start,
			End:   end,
		}
	}

	if _, ok := ctx.GetByPos(0); ok {
		t.Fatal("nothing was expected at pos 0 right now")
	}

	ctx.Add(span("ground", 0, 200))

	res, ok := ctx.GetByPos(10)
	if !ok || res.Node.(*cir.ExprVar).Name != "ground" {
		t.Fatal("ground was expected at pos 10")
	}

	ctx.Add(span("mid1", 10, 90))
	ctx.Add(span("mid11", 20, 30))
	ctx.Add(span("mid12", 40, 80))
	ctx.Add(span("mid13", 85, 88))
	ctx.Add(span("mid2", 110, 190))
	ctx.Add(span("mid21", 120, 130))

	type test struct {
		name  string
		pos   token.Pos
		isnil bool
	}
	testingFunc := func(tt test) func(t *testing.T) {
		return func(t *testing.T) {
			s, ok := ctx.GetByPos(tt.pos)
			if !ok && !tt.isnil {
				t.Fatalf("node %q was not found at position %d", tt.name, tt.pos)
			}
			if ok && tt.isnil {
				t.Fatalf("no node was expected at position %d, got %q", tt.pos, s.Node.(*cir.ExprVar).Name)
			}
			if ok {
				x := s.Node.(*cir.ExprVar)
				if x.Name != tt.name {
					t.Fatalf("node %q was expected, got %q at position %d", tt.name, x.Name, tt.pos)
				}
			}
		}
	}

	tests := []test{
		{name: "ground", pos: 0},
		{name: "ground", pos: 5},
		{name: "ground", pos: 200},
		{name: "mid1", pos: 90},
		{name: "mid11", pos: 25},
		{name: "mid12", pos: 41},
		{name: "mid12", pos: 79},
		{name: "mid13", pos: 86},
		{name: "ground", pos: 100},
		{name: "mid2", pos: 115},
		{name: "mid21", pos: 125},
		{name: "on-the-left", pos: -1, isnil: true},
		{name: "on-the-right", pos: 201, isnil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, testingFunc(tt))
	}

	ctx.Add(span("underground", -10, 300))
	tests = []test{
		{name: "underground", pos: -5},
		{name: "underground", pos: 250},
		{name: "ground", pos: 2},
		{name: "mid21", pos: 121},
	}
	for _, tt := range tests {
		t.Run(tt.name, testingFunc(tt))
	}
}

func TestNewContextOrdersSpans(t *testing.T) {
	// Statement spans come inner first when collected bottom-up.
	ctx := NewContext([]cir.Span{
		{Node: &cir.ExprVar{Name: "inner"}, Start: 20, End: 30},
		{Node: &cir.ExprVar{Name: "sibling"}, Start: 40, End: 50},
		{Node: &cir.ExprVar{Name: "outer"}, Start: 10, End: 60},
	})

	for pos, want := range map[token.Pos]string{
		25: "inner",
		45: "sibling",
		35: "outer",
	} {
		s, ok := ctx.GetByPos(pos)
		if !ok {
			t.Fatalf("nothing found at %d", pos)
		}
		if got := s.Node.(*cir.ExprVar).Name; got != want {
			t.Errorf("%q expected at %d, got %q", want, pos, got)
		}
	}

	if got := ctx.End(25); got != 30 {
		t.Errorf("end of the innermost span expected, got %d", got)
	}
	if got := ctx.End(100); got != 100 {
		t.Errorf("position itself expected out of spans, got %d", got)
	}

	var nilCtx *Context
	if got := nilCtx.End(7); got != 7 {
		t.Errorf("nil context must keep positions, got %d", got)
	}
}
