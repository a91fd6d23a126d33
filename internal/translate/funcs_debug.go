package translate

import (
	"github.com/sirkon/castvalue/internal/cir"
)

// DefaultDebugPackage is the import path of inspection helpers.
const DefaultDebugPackage = "analyzer"

// Inspection helpers are not executed. The explorer reports what it knows
// about their arguments instead.
type knownDebugFuncs struct {
	pkgPath string
	inspect map[string]cir.InspectKind
	toInt   string
}

func newKnownDebugFuncs(pkgPath string) *knownDebugFuncs {
	if pkgPath == "" {
		pkgPath = DefaultDebugPackage
	}

	return &knownDebugFuncs{
		pkgPath: pkgPath,
		inspect: map[string]cir.InspectKind{
			"Eval":            cir.InspectEval,
			"WarnIfReached":   cir.InspectWarnIfReached,
			"NumTimesReached": cir.InspectNumTimesReached,
			"Dump":            cir.InspectDump,
		},
		toInt: "Int",
	}
}

func (k *knownDebugFuncs) inspection(pkgPath, name string) (cir.InspectKind, bool) {
	if pkgPath != k.pkgPath {
		return cir.InspectInvalid, false
	}

	v, ok := k.inspect[name]
	return v, ok
}

// isToInt checks if the call converts a condition into 0 or 1.
func (k *knownDebugFuncs) isToInt(pkgPath, name string) bool {
	return pkgPath == k.pkgPath && name == k.toInt
}
