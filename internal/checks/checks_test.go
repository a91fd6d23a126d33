package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCodes(t *testing.T) {
	tests := []struct {
		check Check
		code  string
		debug bool
	}{
		{NullDereference(), "CV000: NullDereference", false},
		{DivisionByZero(), "CV010: DivisionByZero", false},
		{InvalidReference(), "CV020: InvalidReference", false},
		{DebugEval(), "CV100: DebugEval", true},
		{DebugReachable(), "CV110: DebugReachable", true},
		{DebugNumTimesReached(), "CV120: DebugNumTimesReached", true},
		{DebugDump(), "CV130: DebugDump", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.check.String())
			assert.Equal(t, tt.debug, tt.check.IsDebug())
			assert.NotContains(t, tt.check.Description(), "unknown")
		})
	}

	assert.Equal(t, "check-unknown(0)", checkInvalid.String())
	assert.Equal(t, "Dereference of null pointer", CV000NullDereference.Description())
}
