package symbolic

import (
	"fmt"
)

// Value is a symbolic value bound to a variable or an expression.
type Value interface {
	isValue()
	String() string
}

// Loc is a pointer or reference to a symbolic region.
type Loc struct {
	Sym SymbolID
}

// Null is the concrete null pointer.
type Null struct{}

// Invalid is a reference that refers to no valid object. Any use of it is
// undefined behavior rather than a checkable null test.
type Invalid struct{}

// Int is a concrete integer.
type Int struct {
	V int64
}

// Unknown is a value nothing is known about.
type Unknown struct{}

func (Loc) isValue()     {}
func (Null) isValue()    {}
func (Invalid) isValue() {}
func (Int) isValue()     {}
func (Unknown) isValue() {}

func (v Loc) String() string   { return fmt.Sprintf("&SymRegion{sym%d}", v.Sym) }
func (Null) String() string    { return "null" }
func (Invalid) String() string { return "invalid-reference" }
func (v Int) String() string   { return fmt.Sprintf("%d", v.V) }
func (Unknown) String() string { return "unknown" }

// Nullness is what a state knows about a pointer being null.
type Nullness int

const (
	NullnessUnknown Nullness = iota
	NullnessNull
	NullnessNotNull
)

func (n Nullness) String() string {
	switch n {
	case NullnessUnknown:
		return "unknown"
	case NullnessNull:
		return "null"
	case NullnessNotNull:
		return "non-null"
	default:
		return fmt.Sprintf("nullness-invalid(%d)", int(n))
	}
}
