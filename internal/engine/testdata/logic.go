package logic

import (
	"analyzer"
	"llvm"
)

func castIsChecked(S *Shape) {
	C := llvm.Cast[Circle](S)
	analyzer.NumTimesReached() // want "1"
	analyzer.Eval(C == S)      // want "TRUE"
	analyzer.Eval(S != nil)    // want "TRUE"
}

func dynCastForks(S *Shape) {
	C := llvm.DynCast[Circle](S)
	analyzer.NumTimesReached() // want "2"
	if C != nil {
		analyzer.Eval(C == S) // want "TRUE"
	} else {
		analyzer.Eval(S != nil) // want "TRUE"
	}
}

func castOrNullPassesNull(S *Shape) {
	C := llvm.CastOrNull[Circle](S)
	analyzer.NumTimesReached() // want "2"
	analyzer.Eval(C == S)      // want "TRUE"
	analyzer.Eval(C == nil)    // want "TRUE" want "FALSE"
}

func dynCastOrNullForksThrice(S *Shape) {
	C := llvm.DynCastOrNull[Circle](S)
	analyzer.NumTimesReached() // want "3"
	analyzer.Eval(S == nil)    // want "TRUE" want "FALSE"
	if S != nil && C == nil {
		analyzer.WarnIfReached() // want "REACHABLE"
	}
}

func castAsIsChecked(S *Shape) {
	C := S.CastAs[Circle]()
	analyzer.NumTimesReached() // want "1"
	analyzer.Eval(C == S)      // want "TRUE"
}

func getAsForks(S *Shape) {
	C := S.GetAs[Circle]()
	analyzer.NumTimesReached() // want "2"
	if S != nil && C != nil {
		analyzer.Eval(C == S) // want "TRUE"
	}
	if !S {
		analyzer.WarnIfReached()
	}
}

func unconstrained(S *Shape) {
	analyzer.Eval(S == nil) // want "UNKNOWN"
	if S == nil || bool(S) {
		analyzer.NumTimesReached() // want "2"
	}
}

func repeatedCastAgrees(S *Shape) {
	C := llvm.DynCast[Circle](S)
	D := llvm.DynCast[Circle](S)
	analyzer.NumTimesReached() // want "2"
	analyzer.Eval(C == D)      // want "TRUE"
}

func conditionDivisorKeepsPath(S *Shape) {
	_ = 1 / !S
	analyzer.Eval(S == nil)  // want "TRUE"
	analyzer.WarnIfReached() // want "REACHABLE"
}
