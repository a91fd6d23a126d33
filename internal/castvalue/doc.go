// Package castvalue models calls to type-narrowing cast functions.
//
// The checker does not analyze bodies of cast functions. Instead, once a call
// is recognized as one of the known operations, the modeler replaces the
// default opaque-call handling with a set of successor states, one per
// distinct outcome the real operation can have:
//
//	Cast            operand non-null, cast succeeds                      1 state
//	DynCast         operand non-null, cast succeeds | fails              2 states
//	CastOrNull      operand null | non-null and cast succeeds            2 states
//	DynCastOrNull   operand null | non-null succeeds | non-null fails    3 states
//	CastAs          receiver valid, cast succeeds                        1 state
//	GetAs           receiver valid, cast succeeds | fails                2 states
//
// Each successor binds the call result (the operand itself on success, null
// on failure), records the cast outcome for the operand and carries a [Note]
// explaining the assumption. Outcomes already refuted by the incoming state
// are dropped, so the number of successors never exceeds the number of
// feasible outcomes.
//
// Calls are recognized by exact match only. Anything that does not match a
// catalog entry, including a known name with a wrong number of arguments or
// type arguments, is left to the default handling.
package castvalue
