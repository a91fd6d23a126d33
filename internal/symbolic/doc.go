// Package symbolic provides the program state the cast checker explores
// paths with.
//
// A State is an immutable snapshot: every operation returns a derived state
// and never touches its receiver, so forked paths can share everything they
// did not change. Maps are copied on write.
//
// The state keeps:
//
//   - Variable and expression bindings.
//     Variables are bound by name, call results by the position of the call.
//
//   - Nullness constraints.
//     Each symbolic pointer is either unconstrained, known null or known
//     non-null.
//
//   - Aliasing.
//     Pointers assumed equal are merged into one class, a union-find keyed by
//     symbol. Facts are stored for class roots only.
//
//   - Dynamic cast facts.
//     For every class the state remembers which cast targets succeeded and
//     which were ruled out, plus the most specific assumed dynamic type.
//     Class relations come from the [Hierarchy] of the [Space].
//
// Assume* operations return (state, true) when the assumption is feasible and
// (nil, false) when it contradicts what is already known. Callers drop
// infeasible states.
package symbolic
