package aliases

import (
	"analyzer"
	dbg "example.com/debug"
	casting "example.com/llvm/casting"
)

func evalAliases(S *Shape, _ int, n int) {
	C, D := casting.CastOrNull[Circle](S), (nil)
	a, b := pair(S)
	dbg.Eval(bool(C))
	analyzer.Eval(D)
	*C = *D
	return C.CastAs[Square]().GetAs[Circle]()
}
