// Package translate builds the cast IR out of Go syntax trees.
//
// Sources are only parsed, never type-checked: the explored programs lean on
// generic methods and pointer truthiness which are not valid Go. Static types
// come from parameter declarations and cast type arguments, packages come
// from the import table of the file.
//
// Calls to the inspection helpers of the debug package (analyzer by default)
// are turned into [cir.Inspect] statements and [cir.ExprToInt] expressions.
//
// Only assignments, var declarations, if statements, blocks, returns and
// expression statements are interpreted. Everything else, loops and switches
// included, becomes [cir.Opaque]: the explorer steps over it as if it had no
// effect and logs it at debug level.
package translate
