package references

import (
	"analyzer"
	"llvm"
)

func invalidReference(S Shape) {
	C := llvm.DynCast[Circle](S) // want "Binding a reference to a failed dynamic cast result" note "Assuming dynamic cast from 'Shape' to 'Circle' fails"
	C++
}

func checkedReference(S Shape) {
	C := llvm.Cast[Circle](S)
	_ = 1 / analyzer.Int(C != nil)
}

func pointerResultIsNull(S *Shape) {
	C := llvm.DynCast[Circle](S) // note "Assuming dynamic cast from 'Shape' to 'Circle' fails" note "'C' initialized to a null pointer value"
	if C == nil {                // note "'C' is null" note "Taking true branch"
		_ = *C // want "Dereference of null pointer"
	}
}

func constantDivision() {
	_ = 1 / 0 // want "Division by zero"
	analyzer.WarnIfReached()
}

func divisionByZeroVariable() {
	n := 0
	_ = 10 / n // want "Division by zero"
}

func guardedDivision(S *Shape) {
	C := llvm.CastOrNull[Circle](S)
	if C != nil {
		_ = 1 / analyzer.Int(C)
	}
}

func opaqueCall(S *Shape) {
	C := unknownFunc(S)
	_ = *C
	analyzer.WarnIfReached()
}

func opaqueResultIsPointer(S *Shape) {
	P := lookup(S)
	C := llvm.DynCast[Circle](P)
	if C != nil {
		return
	}
}

func unconstrainedDivisor(S *Shape) {
	_ = 1 / !S
	_ = 1 / !bool(S)
}
