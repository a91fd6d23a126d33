package castvalue

import (
	"fmt"
)

// Outcome is the assumption a successor state was built on.
type Outcome int

const (
	outcomeInvalid Outcome = iota

	// OutcomeChecked is the only outcome of an operation that cannot fail.
	OutcomeChecked

	// OutcomeSucceeds is the success of an operation that may fail.
	OutcomeSucceeds

	// OutcomeFails is the failure of an operation that may fail.
	OutcomeFails

	// OutcomeNullInput is a null operand passed through.
	OutcomeNullInput
)

func (o Outcome) String() string {
	switch o {
	case OutcomeChecked:
		return "checked"
	case OutcomeSucceeds:
		return "succeeds"
	case OutcomeFails:
		return "fails"
	case OutcomeNullInput:
		return "null-input"
	default:
		return fmt.Sprintf("outcome-invalid(%d)", int(o))
	}
}

// Note is the justification attached to a successor state. It is kept as data
// and rendered on demand.
type Note struct {
	Outcome Outcome
	Kind    Kind

	// From is the static type of the operand, empty when unknown.
	From string

	// To is the target type.
	To string
}

func (n Note) String() string {
	from := ""
	if !n.Kind.IsMethod() && n.From != "" {
		from = fmt.Sprintf("from '%s' ", n.From)
	}

	switch n.Outcome {
	case OutcomeChecked:
		return fmt.Sprintf("Checked cast %sto '%s' succeeds", from, n.To)
	case OutcomeSucceeds:
		return fmt.Sprintf("Assuming dynamic cast %sto '%s' succeeds", from, n.To)
	case OutcomeFails:
		return fmt.Sprintf("Assuming dynamic cast %sto '%s' fails", from, n.To)
	case OutcomeNullInput:
		return "Assuming null pointer is passed into cast"
	default:
		return n.Outcome.String()
	}
}
