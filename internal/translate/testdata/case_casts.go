package casts

import (
	"analyzer"
	"llvm"
)

func evalLogic(S *Shape) {
	C := llvm.DynCast[Circle](S)
	analyzer.NumTimesReached()

	if S != nil && C != nil {
		analyzer.Eval(C == S)
	}

	if !S {
		analyzer.WarnIfReached()
	}
}

func evalNotes(S Shape) {
	C := S.GetAs[Circle]()
	_ = 1 / analyzer.Int(C)
	var D *Circle
	if T := llvm.DynCastOrNull[Triangle](S); T != nil {
		return
	} else {
		_ = *D
	}
	C++
}

func declared(S *Shape)
