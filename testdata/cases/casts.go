package main

import (
	"analyzer"
	"llvm"

	"example.com/shapes"
)

func derefFailedCast(S *Shape) {
	C := llvm.DynCast[Circle](S)
	if C == nil {
		_ = *C
	}
}

func aliasCast(S Shape) {
	C := shapes.Narrow[Circle](S)
	C++
}

func reached(S *Shape) {
	C := S.GetAs[Circle]()
	analyzer.NumTimesReached()
}
