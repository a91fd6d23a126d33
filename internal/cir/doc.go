// Package cir defines the cast IR: a small, position-aware representation of
// the functions the cast checker explores.
//
// The entities in this package describe only what path exploration needs:
// pointer and reference parameters, assignments, branches, inspection calls
// and the expressions feeding them. Everything else found in a source file is
// kept as an opaque node so that positions stay meaningful.
package cir
