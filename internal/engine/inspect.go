package engine

import (
	"github.com/kr/pretty"

	"github.com/sirkon/castvalue/internal/checks"
	"github.com/sirkon/castvalue/internal/cir"
)

// inspectCall reports what is known on the path at an inspection helper
// call. Helpers never change the path.
func (x *explorer) inspectCall(p *path, s *cir.Inspect) []*path {
	if !x.inspect {
		return []*path{p}
	}

	switch s.Kind {
	case cir.InspectEval:
		if len(s.Args) != 1 {
			return []*path{p}
		}

		t, f := x.branch(p, s.Args[0])
		var msg string
		switch {
		case len(t) > 0 && len(f) > 0:
			msg = "UNKNOWN"
		case len(t) > 0:
			msg = "TRUE"
		case len(f) > 0:
			msg = "FALSE"
		default:
			// The argument itself is infeasible.
			return nil
		}
		x.reportInspection(checks.DebugEval(), s.At, msg)

	case cir.InspectWarnIfReached:
		x.reportInspection(checks.DebugReachable(), s.At, "")

	case cir.InspectNumTimesReached:
		x.reached[s.At]++

	case cir.InspectDump:
		for _, arg := range s.Args {
			for _, o := range x.eval(p, arg) {
				x.reportInspection(checks.DebugDump(), s.At, pretty.Sprint(o.p.state.Describe(o.v)))
			}
		}
	}

	return []*path{p}
}
