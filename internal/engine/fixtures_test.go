package engine

import (
	"cmp"
	"context"
	"embed"
	"go/parser"
	"go/token"
	"regexp"
	"slices"
	"strconv"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/castvalue/internal/castvalue"
	"github.com/sirkon/castvalue/internal/translate"
)

//go:embed testdata
var fixtures embed.FS

// expectation is a diagnostic or a path note expected at the line.
//
//	_ = *C // want "Dereference of null pointer" note "'C' is null"
type expectation struct {
	Line int
	Kind string
	Text string
}

var expectationRe = regexp.MustCompile(`(want|note) "((?:[^"\\]|\\.)*)"`)

func TestFixtures(t *testing.T) {
	tests := []struct {
		file string
		opts Options
	}{
		{
			file: "logic.go",
			opts: Options{Inspect: true},
		},
		{
			file: "notes.go",
			opts: Options{
				Modeler: castvalue.New(nil, castvalue.WithReferenceFailure(castvalue.ReferenceFailureNull)),
			},
		},
		{
			file: "references.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src, err := fixtures.ReadFile("testdata/" + tt.file)
			require.NoError(t, err)

			fset := token.NewFileSet()
			file, err := parser.ParseFile(fset, tt.file, src, parser.ParseComments|parser.SkipObjectResolution)
			require.NoError(t, err)

			var want []expectation
			for _, group := range file.Comments {
				for _, c := range group.List {
					line := fset.Position(c.Slash).Line
					for _, m := range expectationRe.FindAllStringSubmatch(c.Text, -1) {
						text, err := strconv.Unquote(`"` + m[2] + `"`)
						require.NoError(t, err)
						want = append(want, expectation{Line: line, Kind: m[1], Text: text})
					}
				}
			}

			tr := translate.New(fset, "")
			prog := tr.File(file)
			tt.opts.Classes = tr.Classes()
			r := NewReporter()
			if _, err := New(r, tt.opts).ExploreAll(context.Background(), prog.Functions); err != nil {
				t.Fatal(err)
			}

			got := collect(fset, r.Reports())
			sortExpectations(want)
			if !slices.Equal(want, got) {
				for _, rep := range r.Reports() {
					t.Logf("%s: %s: %s", fset.Position(rep.Pos), rep.Check, rep.Message)
				}
				deepequal.SideBySide(t, "expectations", want, got)
			}
		})
	}
}

// collect turns reports into expectations. Notes shared by several reports
// are expected once.
func collect(fset *token.FileSet, reps []Report) []expectation {
	seen := map[expectation]struct{}{}
	for _, rep := range reps {
		seen[expectation{Line: fset.Position(rep.Pos).Line, Kind: "want", Text: rep.Message}] = struct{}{}
		for _, n := range rep.Notes {
			seen[expectation{Line: fset.Position(n.Pos).Line, Kind: "note", Text: n.Message}] = struct{}{}
		}
	}

	res := make([]expectation, 0, len(seen))
	for e := range seen {
		res = append(res, e)
	}
	sortExpectations(res)

	return res
}

func sortExpectations(es []expectation) {
	slices.SortFunc(es, func(a, b expectation) int {
		if v := cmp.Compare(a.Line, b.Line); v != 0 {
			return v
		}
		if v := cmp.Compare(a.Kind, b.Kind); v != 0 {
			return v
		}
		return cmp.Compare(a.Text, b.Text)
	})
}
