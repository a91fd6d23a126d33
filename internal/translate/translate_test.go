package translate

import (
	"embed"
	"go/token"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/castvalue/internal/cir"
)

//go:embed testdata
var translateCases embed.FS

func v(name string) *cir.ExprVar { return &cir.ExprVar{Name: name} }

func nilptr() *cir.ExprNil { return &cir.ExprNil{} }

func TestTranslate(t *testing.T) {
	expected := map[string]struct {
		debugPkg string
		prog     *cir.Program
	}{
		"case_casts.go": {
			prog: &cir.Program{
				File: "case_casts.go",
				Functions: []*cir.Function{
					{
						Name:   "evalLogic",
						Params: []cir.Param{{Name: "S", Type: cir.TypeRef{Name: "Shape", Pointer: true}}},
						Body: []cir.Statement{
							&cir.Assign{
								Dst: "C",
								Src: &cir.ExprCall{
									Callee:   cir.Reference{Package: "llvm", Name: "DynCast"},
									TypeArgs: []cir.TypeRef{{Name: "Circle"}},
									Args:     []cir.Expr{v("S")},
								},
							},
							&cir.Inspect{Kind: cir.InspectNumTimesReached},
							&cir.If{
								Cond: &cir.ExprAnd{
									L: &cir.ExprNEQ{L: v("S"), R: nilptr()},
									R: &cir.ExprNEQ{L: v("C"), R: nilptr()},
								},
								Then: []cir.Statement{
									&cir.Inspect{
										Kind: cir.InspectEval,
										Args: []cir.Expr{&cir.ExprEQ{L: v("C"), R: v("S")}},
									},
								},
							},
							&cir.If{
								Cond: &cir.ExprNot{X: v("S")},
								Then: []cir.Statement{&cir.Inspect{Kind: cir.InspectWarnIfReached}},
							},
						},
					},
					{
						Name:   "evalNotes",
						Params: []cir.Param{{Name: "S", Type: cir.TypeRef{Name: "Shape"}}},
						Body: []cir.Statement{
							&cir.Assign{
								Dst: "C",
								Src: &cir.ExprCall{
									Callee:   cir.Reference{Name: "GetAs"},
									Recv:     v("S"),
									TypeArgs: []cir.TypeRef{{Name: "Circle"}},
								},
							},
							&cir.ExprStmt{
								X: &cir.ExprDiv{
									Num: &cir.ExprInt{Value: 1},
									Den: &cir.ExprToInt{X: v("C")},
								},
							},
							&cir.Assign{Dst: "D", Src: nilptr()},
							&cir.If{
								Init: &cir.Assign{
									Dst: "T",
									Src: &cir.ExprCall{
										Callee:   cir.Reference{Package: "llvm", Name: "DynCastOrNull"},
										TypeArgs: []cir.TypeRef{{Name: "Triangle"}},
										Args:     []cir.Expr{v("S")},
									},
								},
								Cond: &cir.ExprNEQ{L: v("T"), R: nilptr()},
								Then: []cir.Statement{&cir.Return{}},
								Else: []cir.Statement{&cir.ExprStmt{X: &cir.ExprDeref{X: v("D")}}},
							},
							&cir.Opaque{Kind: "++"},
						},
					},
				},
			},
		},
		"case_aliases.go": {
			debugPkg: "example.com/debug",
			prog: &cir.Program{
				File: "case_aliases.go",
				Functions: []*cir.Function{
					{
						Name: "evalAliases",
						Params: []cir.Param{
							{Name: "S", Type: cir.TypeRef{Name: "Shape", Pointer: true}},
							{Name: "n", Type: cir.TypeRef{Name: "int"}},
						},
						Body: []cir.Statement{
							&cir.Block{
								Body: []cir.Statement{
									&cir.Assign{
										Dst: "C",
										Src: &cir.ExprCall{
											Callee:   cir.Reference{Package: "example.com/llvm/casting", Name: "CastOrNull"},
											TypeArgs: []cir.TypeRef{{Name: "Circle"}},
											Args:     []cir.Expr{v("S")},
										},
									},
									&cir.Assign{Dst: "D", Src: nilptr()},
								},
							},
							&cir.Block{
								Body: []cir.Statement{
									&cir.ExprStmt{
										X: &cir.ExprCall{
											Callee: cir.Reference{Name: "pair"},
											Args:   []cir.Expr{v("S")},
										},
									},
									&cir.Assign{Dst: "a", Src: &cir.ExprUnknown{}},
									&cir.Assign{Dst: "b", Src: &cir.ExprUnknown{}},
								},
							},
							&cir.Inspect{Kind: cir.InspectEval, Args: []cir.Expr{v("C")}},
							&cir.ExprStmt{
								X: &cir.ExprCall{
									Callee: cir.Reference{Package: "analyzer", Name: "Eval"},
									Args:   []cir.Expr{v("D")},
								},
							},
							&cir.Block{
								Body: []cir.Statement{
									&cir.ExprStmt{X: &cir.ExprDeref{X: v("D")}},
									&cir.ExprStmt{X: &cir.ExprDeref{X: v("C")}},
								},
							},
							&cir.Return{
								Results: []cir.Expr{
									&cir.ExprCall{
										Callee: cir.Reference{Name: "GetAs"},
										Recv: &cir.ExprCall{
											Callee:   cir.Reference{Name: "CastAs"},
											Recv:     v("C"),
											TypeArgs: []cir.TypeRef{{Name: "Square"}},
										},
										TypeArgs: []cir.TypeRef{{Name: "Circle"}},
									},
								},
							},
						},
					},
				},
			},
		},
	}

	files, err := translateCases.ReadDir("testdata")
	require.NoError(t, err)

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			src, err := translateCases.ReadFile("testdata/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}

			want, ok := expected[file.Name()]
			if !ok {
				t.Fatal("no cir found for", file.Name())
			}

			prog, err := ParseFile(token.NewFileSet(), file.Name(), src, want.debugPkg)
			if err != nil {
				t.Fatal("translate the case file:", err)
			}

			got := StripPos(prog)
			if !reflect.DeepEqual(want.prog, got) {
				deepequal.SideBySide(t, "cir", want.prog, got)
			}
		})
	}
}

func TestTranslateSpans(t *testing.T) {
	src, err := translateCases.ReadFile("testdata/case_casts.go")
	require.NoError(t, err)

	prog, err := ParseFile(token.NewFileSet(), "case_casts.go", src, "")
	require.NoError(t, err)

	fn := prog.Functions[1]
	require.Equal(t, "evalNotes", fn.Name)

	// Top level statements, if init, then and else branches.
	require.Len(t, fn.Spans, 8)

	for _, s := range fn.Spans {
		require.True(t, s.Start < s.End)
		require.True(t, fn.At <= s.Start && s.End <= fn.End, "span must be inside of the function")
		require.True(t, s.Start <= s.Node.Pos() && s.Node.Pos() < s.End)
	}
}

func TestTranslateCallSites(t *testing.T) {
	prog, err := ParseFile(token.NewFileSet(), "chain.go", `package chain

func chain(S *Shape) {
	_ = S.CastAs[Square]().GetAs[Circle]()
}
`, "")
	require.NoError(t, err)

	outer := prog.Functions[0].Body[0].(*cir.ExprStmt).X.(*cir.ExprCall)
	inner := outer.Recv.(*cir.ExprCall)
	require.NotEqual(t, outer.Pos(), inner.Pos(), "chained calls must have distinct sites")
}

func TestParseFileError(t *testing.T) {
	_, err := ParseFile(token.NewFileSet(), "broken.go", "package broken\nfunc (", "")
	require.Error(t, err)
}

func TestTranslateClasses(t *testing.T) {
	tr := New(token.NewFileSet(), "")
	_, err := tr.Parse("shapes.go", `package shapes

type Shape interface{}

type (
	Circle   struct{ Shape }
	Unit     struct {
		*Circle
		Radius int
	}
)
`)
	require.NoError(t, err)
	_, err = tr.Parse("triangle.go", `package shapes

type Triangle struct{ Shape }
`)
	require.NoError(t, err)

	require.Equal(t, cir.Hierarchy{
		"Circle":   {"Shape"},
		"Unit":     {"Circle"},
		"Triangle": {"Shape"},
	}, tr.Classes())
	require.True(t, tr.Classes().IsA("Unit", "Shape"))
	require.False(t, tr.Classes().IsA("Unit", "Triangle"))
	require.False(t, tr.Classes().IsA("Shape", "Circle"))
}

func TestTranslateOpaqueKinds(t *testing.T) {
	prog, err := ParseFile(token.NewFileSet(), "opaque.go", `package opaque

func opaque(S *Shape) {
	for S != nil {
	}
	for range 3 {
	}
	switch {
	}
	n := 1
	n += 2
	const c = 1
}
`, "")
	require.NoError(t, err)

	var kinds []string
	for _, s := range StripPos(prog).Functions[0].Body {
		if o, ok := s.(*cir.Opaque); ok {
			kinds = append(kinds, o.Kind)
		}
	}
	require.Equal(t, []string{"for", "range", "switch", "+=", "declaration"}, kinds)
}
