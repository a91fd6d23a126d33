package castvalue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindText(t *testing.T) {
	for kind, name := range kindValueMap {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		require.Equal(t, name, string(text))

		var k Kind
		require.NoError(t, k.UnmarshalText(text))
		require.Equal(t, kind, k)
	}

	_, err := KindInvalid.MarshalText()
	require.Error(t, err)
	require.Equal(t, "invalid(0)", KindInvalid.String())
}

func TestKindUnmarshalSuggestion(t *testing.T) {
	var k Kind

	err := k.UnmarshalText([]byte("dyn_cst"))
	require.EqualError(t, err, `unknown cast kind "dyn_cst", did you mean "dyn_cast"?`)

	err = k.UnmarshalText([]byte("xyz"))
	require.EqualError(t, err, `unknown cast kind "xyz"`)
}

func TestKindPredicates(t *testing.T) {
	require.True(t, GetAs.IsMethod())
	require.False(t, DynCast.IsMethod())
	require.True(t, DynCastOrNull.IsDynamic())
	require.False(t, CastOrNull.IsDynamic())
	require.True(t, CastOrNull.PassesNull())
	require.False(t, Cast.PassesNull())
}

func TestReferenceFailureText(t *testing.T) {
	var r ReferenceFailure
	require.NoError(t, r.UnmarshalText([]byte("null-pointer")))
	require.Equal(t, ReferenceFailureNull, r)

	text, err := ReferenceFailureInvalid.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "invalid", string(text))

	require.Error(t, r.UnmarshalText([]byte("null")))
}
