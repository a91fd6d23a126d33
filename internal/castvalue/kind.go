package castvalue

import (
	"fmt"
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Kind is a cast operation.
type Kind int

const (
	KindInvalid Kind = iota

	// Cast is a checked cast: the caller guarantees the dynamic type, the
	// operand must not be null.
	Cast

	// DynCast is a dynamic cast of a non-null operand. It may fail.
	DynCast

	// CastOrNull passes null through and behaves like Cast otherwise.
	CastOrNull

	// DynCastOrNull passes null through and behaves like DynCast otherwise.
	DynCastOrNull

	// CastAs is the member twin of Cast.
	CastAs

	// GetAs is the member twin of DynCast.
	GetAs
)

var kindValueMap = map[Kind]string{
	Cast:          "cast",
	DynCast:       "dyn_cast",
	CastOrNull:    "cast_or_null",
	DynCastOrNull: "dyn_cast_or_null",
	CastAs:        "cast_as",
	GetAs:         "get_as",
}

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(k))
	}

	return v
}

// IsMethod reports whether the operation is a member function.
func (k Kind) IsMethod() bool {
	return k == CastAs || k == GetAs
}

// IsDynamic reports whether the operation may fail on a non-null operand.
func (k Kind) IsDynamic() bool {
	return k == DynCast || k == DynCastOrNull || k == GetAs
}

// PassesNull reports whether the operation accepts a null operand.
func (k Kind) PassesNull() bool {
	return k == CastOrNull || k == DynCastOrNull
}

// MarshalText for writing values into configs.
func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range kindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	if s := closestKindName(text); s != "" {
		return fmt.Errorf("unknown cast kind %q, did you mean %q?", text, s)
	}

	return fmt.Errorf("unknown cast kind %q", text)
}

func closestKindName(text string) string {
	names := make([]string, 0, len(kindValueMap))
	for _, v := range kindValueMap {
		names = append(names, v)
	}
	sort.Strings(names)

	var closest string
	closestDistance := len(text)
	for _, name := range names {
		distance := levenshtein.DistanceForStrings([]rune(text), []rune(name), levenshtein.DefaultOptions)

		// A suggestion that requires rewriting the whole name is no suggestion.
		if distance < closestDistance && distance < len(name) {
			closest = name
			closestDistance = distance
		}
	}

	return closest
}
