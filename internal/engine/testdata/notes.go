package notes

import (
	"analyzer"
	"llvm"
)

type Shape interface{}

type Circle struct{ Shape }

type Triangle struct{ Shape }

func divisionByFailedCast(S Shape) {
	C := S.GetAs[Circle]()  // note "Assuming dynamic cast to 'Circle' fails" note "'C' initialized to a null pointer value"
	_ = 1 / analyzer.Int(C) // want "Division by zero" note "'C' is null"
}

func dereferenceInElse(S Shape) {
	var D *Circle                                       // note "'D' initialized to a null pointer value"
	if T := llvm.DynCastOrNull[Triangle](S); T != nil { // note "Assuming dynamic cast from 'Shape' to 'Triangle' fails" note "Taking false branch"
		return
	} else {
		_ = *D // want "Dereference of null pointer"
	}
}

func nullReference(S Shape) {
	C := llvm.DynCast[Circle](S) // want "Dereference of null pointer" note "Assuming dynamic cast from 'Shape' to 'Circle' fails"
	C++
}

func inspectionsAreOff(S *Shape) {
	analyzer.WarnIfReached()
	analyzer.Eval(S == nil)
}

func nonNullFromReference(S Shape) {
	C := llvm.DynCastOrNull[Circle](S) // note "Assuming dynamic cast from 'Shape' to 'Circle' succeeds" note "'C' initialized here"
	_ = 1 / !bool(C)                   // want "Division by zero" note "'C' is non-null"
}

func checkedCastIsNonNull(S *Shape) {
	C := llvm.Cast[Circle](S) // note "Checked cast from 'Shape' to 'Circle' succeeds" note "'C' initialized here"
	_ = 1 / !bool(C)          // want "Division by zero" note "'C' is non-null"
}

func siblingCastAfterFailure(S *Shape) {
	C := llvm.DynCastOrNull[Circle](S)                  // note "Assuming dynamic cast from 'Shape' to 'Circle' fails"
	if T := llvm.DynCastOrNull[Triangle](S); T != nil { // note "Assuming dynamic cast from 'Shape' to 'Triangle' succeeds" note "'T' initialized here" note "'T' is non-null" note "Taking true branch"
		_ = 1 / !T // want "Division by zero" note "'T' is non-null"
	}
}

func nullPassedThrough(S *Shape) {
	C := llvm.DynCastOrNull[Circle](S) // note "Assuming null pointer is passed into cast" note "'C' initialized to a null pointer value"
	_ = 1 / bool(C)                    // want "Division by zero"
}

func castAsPointer(S *Shape) {
	C := S.CastAs[Circle]() // note "Checked cast to 'Circle' succeeds" note "'C' initialized here"
	_ = 1 / !bool(C)        // want "Division by zero" note "'C' is non-null"
}

func castAsReference(S Shape) {
	C := S.CastAs[Circle]() // note "Checked cast to 'Circle' succeeds" note "'C' initialized here"
	_ = 1 / !bool(C)        // want "Division by zero" note "'C' is non-null"
}

func getAsFails(S Shape) {
	C := S.GetAs[Circle]() // note "Assuming dynamic cast to 'Circle' fails" note "'C' initialized to a null pointer value"
	_ = 1 / bool(C)        // want "Division by zero"
}
