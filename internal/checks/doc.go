// Package checks defines the canonical CV-series codes of findings reported by
// castvalue.
//
// Codes are grouped by area:
//
//	000–099  Memory safety of cast results
//	100–199  Inspection helpers used by tests and debugging sessions
//
// Example:
//
//	checks.CV000NullDereference.String()      → "CV000: NullDereference"
//	checks.CV000NullDereference.Description() → "Dereference of null pointer"
//
// Codes are stable: never renumber existing ones.
package checks
