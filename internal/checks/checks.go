package checks

import "fmt"

// Check represents a castvalue finding code (CV-series).
type Check int

const (
	checkInvalid Check = iota

	CV000NullDereference
	CV010DivisionByZero
	CV020InvalidReference
	CV100DebugEval
	CV110DebugReachable
	CV120DebugNumTimesReached
	CV130DebugDump
)

// String returns the canonical code and short name of the check.
// Example: "CV000: NullDereference"
func (c Check) String() string {
	switch c {
	case CV000NullDereference:
		return "CV000: NullDereference"
	case CV010DivisionByZero:
		return "CV010: DivisionByZero"
	case CV020InvalidReference:
		return "CV020: InvalidReference"
	case CV100DebugEval:
		return "CV100: DebugEval"
	case CV110DebugReachable:
		return "CV110: DebugReachable"
	case CV120DebugNumTimesReached:
		return "CV120: DebugNumTimesReached"
	case CV130DebugDump:
		return "CV130: DebugDump"
	default:
		return fmt.Sprintf("check-unknown(%d)", c)
	}
}

// Description returns the default message of the check.
func (c Check) Description() string {
	switch c {
	case CV000NullDereference:
		return "Dereference of null pointer"
	case CV010DivisionByZero:
		return "Division by zero"
	case CV020InvalidReference:
		return "Binding a reference to a failed dynamic cast result"
	case CV100DebugEval:
		return "Truth value of an expression on the path."
	case CV110DebugReachable:
		return "REACHABLE"
	case CV120DebugNumTimesReached:
		return "Number of paths reaching the point."
	case CV130DebugDump:
		return "Symbolic value dump."
	default:
		return fmt.Sprintf("unknown-check(%d)", c)
	}
}

// IsDebug reports whether the check comes from an inspection helper rather
// than from a defect on the path.
func (c Check) IsDebug() bool {
	return c >= CV100DebugEval && c <= CV130DebugDump
}

// Canonical constructors, for readability and stable call sites.

func NullDereference() Check      { return CV000NullDereference }
func DivisionByZero() Check       { return CV010DivisionByZero }
func InvalidReference() Check     { return CV020InvalidReference }
func DebugEval() Check            { return CV100DebugEval }
func DebugReachable() Check       { return CV110DebugReachable }
func DebugNumTimesReached() Check { return CV120DebugNumTimesReached }
func DebugDump() Check            { return CV130DebugDump }
