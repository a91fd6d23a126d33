package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "case.go")
	require.NoError(t, os.WriteFile(file, []byte(`package cases

import (
	"analyzer"
	"llvm"
)

func deref(S *Shape) {
	C := llvm.DynCast[Circle](S)
	analyzer.WarnIfReached()
	_ = *C
}
`), 0o644))

	var out bytes.Buffer
	require.NoError(t, trace(context.Background(), &out, []string{file}, "", true, false, false))
	require.Equal(t,
		file+":10:2: [inspect] CV110: DebugReachable: REACHABLE\n"+
			file+":11:6: [trace] CV000: NullDereference: Dereference of null pointer\n"+
			"    "+file+":9:27: note: Assuming dynamic cast from 'Shape' to 'Circle' fails\n"+
			"    "+file+":9:2: note: 'C' initialized to a null pointer value\n",
		out.String(),
	)

	out.Reset()
	require.Error(t, trace(context.Background(), &out, []string{filepath.Join(dir, "missing.go")}, "", false, false, false))
}
