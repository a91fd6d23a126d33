package castvalue

import (
	"fmt"
)

// ReferenceFailure selects what a failed dynamic cast of a reference yields.
type ReferenceFailure int

const (
	// ReferenceFailureInvalid binds the result to [symbolic.Invalid]: the
	// reference refers to no object and any use of it is undefined behavior.
	ReferenceFailureInvalid ReferenceFailure = iota

	// ReferenceFailureNull binds the result to null, so the failure shows up
	// as a null dereference once the reference is bound.
	ReferenceFailureNull
)

func (r ReferenceFailure) String() string {
	switch r {
	case ReferenceFailureInvalid:
		return "invalid"
	case ReferenceFailureNull:
		return "null-pointer"
	default:
		return fmt.Sprintf("reference-failure-invalid(%d)", int(r))
	}
}

// MarshalText for writing values into configs.
func (r ReferenceFailure) MarshalText() ([]byte, error) {
	switch r {
	case ReferenceFailureInvalid, ReferenceFailureNull:
		return []byte(r.String()), nil
	default:
		return nil, fmt.Errorf("cannot marshal invalid ReferenceFailure(%d)", int(r))
	}
}

// UnmarshalText for setting values with configs, CLI, etc.
func (r *ReferenceFailure) UnmarshalText(b []byte) error {
	switch string(b) {
	case "invalid":
		*r = ReferenceFailureInvalid
		return nil
	case "null-pointer":
		*r = ReferenceFailureNull
		return nil
	default:
		return fmt.Errorf("unknown reference failure mode %q, must be either invalid or null-pointer", b)
	}
}
