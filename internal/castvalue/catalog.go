package castvalue

import (
	"maps"

	"github.com/SaveTheRbtz/mph"

	"github.com/sirkon/castvalue/internal/cir"
)

// Signature identifies a catalog entry: a free function of some package or a
// method. Method entries with an empty Ref.Type match any receiver.
type Signature struct {
	Ref    cir.Reference
	Method bool
}

func (s Signature) String() string {
	if s.Method {
		return "method " + s.Ref.String()
	}

	return "func " + s.Ref.String()
}

// FuncSig returns a free function signature.
func FuncSig(pkgPath, name string) Signature {
	return Signature{Ref: cir.Reference{Package: pkgPath, Name: name}}
}

// MethodSig returns a method signature matching any receiver.
func MethodSig(name string) Signature {
	return Signature{Ref: cir.Reference{Name: name}, Method: true}
}

// Predefined entries. These are fixed: custom entries can add aliases but
// never redefine them.
var (
	predefinedSigs = []Signature{
		FuncSig("llvm", "Cast"),
		FuncSig("llvm", "DynCast"),
		FuncSig("llvm", "CastOrNull"),
		FuncSig("llvm", "DynCastOrNull"),
		MethodSig("CastAs"),
		MethodSig("GetAs"),
	}
	predefinedKinds = []Kind{
		Cast,
		DynCast,
		CastOrNull,
		DynCastOrNull,
		CastAs,
		GetAs,
	}
	predefinedTable = mph.Build(sigKeys(predefinedSigs))
)

func sigKeys(sigs []Signature) []string {
	res := make([]string, len(sigs))
	for i, sig := range sigs {
		res[i] = sig.String()
	}
	return res
}

// Catalog is a set of known cast functions.
type Catalog struct {
	custom map[Signature]Kind
}

// NewCatalog creates a catalog of predefined entries extended with custom ones.
// Custom entries shadowing predefined signatures are ignored.
func NewCatalog(custom map[Signature]Kind) *Catalog {
	if custom == nil {
		custom = make(map[Signature]Kind)
	} else {
		custom = maps.Clone(custom)
	}

	for _, sig := range predefinedSigs {
		delete(custom, sig)
	}

	return &Catalog{custom: custom}
}

// Lookup returns the kind registered for the signature.
func (c *Catalog) Lookup(sig Signature) (Kind, bool) {
	if i, ok := predefinedTable.Lookup(sig.String()); ok && predefinedSigs[i] == sig {
		return predefinedKinds[i], true
	}

	if kind, ok := c.custom[sig]; ok {
		return kind, true
	}

	if sig.Method && sig.Ref.Type != "" {
		// Receiver-agnostic entries.
		return c.Lookup(Signature{Ref: cir.Reference{Name: sig.Ref.Name}, Method: true})
	}

	return KindInvalid, false
}

// Entries returns all catalog entries.
func (c *Catalog) Entries() map[Signature]Kind {
	res := maps.Clone(c.custom)
	for i, sig := range predefinedSigs {
		res[sig] = predefinedKinds[i]
	}

	return res
}
