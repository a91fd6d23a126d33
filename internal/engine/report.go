package engine

import (
	"cmp"
	"fmt"
	"go/token"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora/v4"
	"github.com/sirkon/rbtree"

	"github.com/sirkon/castvalue/internal/checks"
)

// Reporter collects findings of path exploration. Reports equal by position,
// check and message are kept once: different paths reaching the same defect
// produce a single report with the notes of the first path.
type Reporter struct {
	mu      sync.Mutex
	seen    *rbtree.Tree[*reportKey]
	reports []Report
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{seen: rbtree.New[*reportKey]()}
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    ReportPhase
	Check    checks.Check
	Function string
	Pos      token.Pos
	End      token.Pos
	Message  string

	// Notes is the path leading to the finding.
	Notes []Note
}

// Note is a single event of the path leading to a finding.
type Note struct {
	Pos     token.Pos
	Message string

	// subject is a variable the note is about. Notes with a subject are only
	// kept for findings involving that variable.
	subject string
}

// ReportPhase marks the exploration stage where a report was generated.
type ReportPhase int

const (
	_             ReportPhase = iota
	ReportTrace               // path defects
	ReportInspect             // inspection helpers on a path
	ReportSummary             // per-function results collected after exploration
)

func (p ReportPhase) String() string {
	switch p {
	case ReportTrace:
		return "trace"
	case ReportInspect:
		return "inspect"
	case ReportSummary:
		return "summary"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

type reportKey struct {
	pos     token.Pos
	check   checks.Check
	message string
}

func (k *reportKey) Cmp(other *reportKey) int {
	if v := cmp.Compare(k.pos, other.pos); v != 0 {
		return v
	}
	if v := cmp.Compare(k.check, other.check); v != 0 {
		return v
	}
	return strings.Compare(k.message, other.message)
}

// ReporterPhase binds a Reporter to a fixed phase.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a phase-bound reporter that sets the given phase for all
// reports produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record. It returns false for a duplicate.
func (r *Reporter) Report(rep Report) bool {
	key := &reportKey{pos: rep.Pos, check: rep.Check, message: rep.Message}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen.InsertReturn(key) != key {
		return false
	}
	r.reports = append(r.reports, rep)

	return true
}

// Report records a finding under the bound phase. An empty message means
// the default message of the check.
func (rp *ReporterPhase) Report(rep Report) bool {
	if rep.Message == "" {
		rep.Message = rep.Check.Description()
	}
	rep.Phase = rp.phase

	return rp.parent.Report(rep)
}

// Reports returns a snapshot of all collected records ordered by position.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	out := slices.Clone(r.reports)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Report) int {
		if v := cmp.Compare(a.Pos, b.Pos); v != 0 {
			return v
		}
		return cmp.Compare(a.Check, b.Check)
	})

	return out
}

// PrintSummary prints all collected reports in a compact, human-readable
// form, with their path notes below.
func (r *Reporter) PrintSummary(w io.Writer, fset *token.FileSet, colorize bool) error {
	paint := func(s string, color aurora.Color) string {
		if !colorize {
			return s
		}
		return aurora.Colorize(s, color).String()
	}

	for _, rep := range r.Reports() {
		color := aurora.RedFg | aurora.BrightFg | aurora.BoldFm
		if rep.Check.IsDebug() {
			color = aurora.YellowFg | aurora.BrightFg
		}

		pos := fset.Position(rep.Pos)
		if _, err := fmt.Fprintf(w, "%s: [%s] %s: %s\n",
			pos,
			rep.Phase,
			rep.Check,
			paint(rep.Message, color),
		); err != nil {
			return fmt.Errorf("print report: %w", err)
		}

		for _, n := range rep.Notes {
			if _, err := fmt.Fprintf(w, "    %s: %s %s\n",
				fset.Position(n.Pos),
				paint("note:", aurora.CyanFg),
				n.Message,
			); err != nil {
				return fmt.Errorf("print note: %w", err)
			}
		}
	}

	return nil
}
