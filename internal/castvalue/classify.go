package castvalue

import (
	"go/token"

	"github.com/sirkon/castvalue/internal/cir"
	"github.com/sirkon/castvalue/internal/symbolic"
)

// Call is a call event as delivered by the explorer: the statically resolved
// callee together with the values of the receiver and the arguments.
type Call struct {
	Site     token.Pos
	Callee   cir.Reference
	Method   bool
	TypeArgs []cir.TypeRef
	Receiver Operand
	Args     []Operand
}

// Operand is a value with its static type.
type Operand struct {
	Value symbolic.Value
	Type  cir.TypeRef
}

// Descriptor is a recognized cast call.
type Descriptor struct {
	Kind Kind
	Site token.Pos

	// Source is the argument of a free function or the receiver of a method.
	Source Operand

	// Target is the explicit type argument.
	Target string

	// Result is the static type of the call result.
	Result cir.TypeRef
}

// ReturnsPointer reports whether the result may represent "no value". A
// reference result cannot, its failure only manifests once it is used.
func (d *Descriptor) ReturnsPointer() bool {
	return d.Result.Pointer
}

// Classify recognizes a cast call. It is a pure function of the catalog and
// the call shape: values are not looked at.
func (c *Catalog) Classify(call *Call) (Descriptor, bool) {
	kind, ok := c.Lookup(Signature{Ref: call.Callee, Method: call.Method})
	if !ok {
		return Descriptor{}, false
	}

	// Exactly one type argument naming a class.
	if len(call.TypeArgs) != 1 {
		return Descriptor{}, false
	}
	target := call.TypeArgs[0]
	if target.Name == "" || target.Pointer {
		return Descriptor{}, false
	}

	var src Operand
	if call.Method {
		if len(call.Args) != 0 {
			return Descriptor{}, false
		}
		src = call.Receiver
	} else {
		if len(call.Args) != 1 {
			return Descriptor{}, false
		}
		src = call.Args[0]
	}

	d := Descriptor{
		Kind:   kind,
		Site:   call.Site,
		Source: src,
		Target: target.Name,
		Result: cir.TypeRef{Name: target.Name, Pointer: true},
	}
	switch kind {
	case Cast, DynCast:
		// Reference in, reference out. Operands of unknown static type are
		// pointers.
		d.Result.Pointer = !isReference(src.Type)
	}

	return d, true
}

// isReference checks if the static type is a named type not behind a pointer.
func isReference(t cir.TypeRef) bool {
	return t.Name != "" && !t.Pointer
}
