package cir

import (
	"fmt"
	"go/token"
)

// Inspect is a call to one of the expression inspection helpers. These are
// not executed: the explorer reports what it knows about the arguments on the
// current path.
//
//	analyzer.Eval(C == S)        // Kind: InspectEval, Args: [&ExprEQ{…}]
//	analyzer.WarnIfReached()     // Kind: InspectWarnIfReached
//	analyzer.NumTimesReached()   // Kind: InspectNumTimesReached
//	analyzer.Dump(C)             // Kind: InspectDump, Args: [&ExprVar{Name: "C"}]
type Inspect struct {
	At   token.Pos
	Kind InspectKind
	Args []Expr
}

// InspectKind enumerates inspection helpers.
type InspectKind int

const (
	InspectInvalid InspectKind = iota
	InspectEval
	InspectWarnIfReached
	InspectNumTimesReached
	InspectDump
)

func (k InspectKind) String() string {
	switch k {
	case InspectEval:
		return "eval"
	case InspectWarnIfReached:
		return "warnIfReached"
	case InspectNumTimesReached:
		return "numTimesReached"
	case InspectDump:
		return "dump"
	default:
		return fmt.Sprintf("inspect-invalid(%d)", int(k))
	}
}

func (s *Inspect) Pos() token.Pos { return s.At }
func (*Inspect) isNode()          {}
func (*Inspect) isStatement()     {}
