package toolexec

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script for use as a fake tool.
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestRun_ZeroExitIsSuccess(t *testing.T) {
	exe := NewExecutable(writeScript(t, "ok", "exit 0"))

	assert.NoError(t, exe.Run())
}

func TestRun_ExtraArgsFollowPositionalArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	exe := NewExecutable(writeScript(t, "record",
		`out="$1"; shift; printf '%s\n' "$@" > "$out"`))
	exe.AppendArg("--debug-names")
	exe.AppendArg("--generate-names")

	require.NoError(t, exe.Run(argsFile, "input.wast"))

	data, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "input.wast\n--debug-names\n--generate-names\n", string(data))
}

func TestRun_NonZeroExitCapturesStderr(t *testing.T) {
	path := writeScript(t, "fail", `echo "parse error at line 3" >&2; exit 1`)
	exe := NewExecutable(path)

	err := exe.Run("bad.wast")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Cmd, path)
	assert.Contains(t, cmdErr.Cmd, "bad.wast")
	assert.Contains(t, cmdErr.Stderr, "parse error at line 3")
	assert.Contains(t, err.Error(), "parse error at line 3")
	assert.NoError(t, cmdErr.Err)
}

func TestRun_LaunchFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-tool")
	exe := NewExecutable(missing)

	err := exe.Run("file.wast")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Cmd, missing)
	assert.Error(t, cmdErr.Err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_StdoutPassesThrough(t *testing.T) {
	exe := NewExecutable(writeScript(t, "emit", `echo "(module)"`))
	var stdout bytes.Buffer
	exe.Stdout = &stdout

	require.NoError(t, exe.Run())
	assert.Equal(t, "(module)\n", stdout.String())
}

func TestRun_StderrNotMixedIntoStdout(t *testing.T) {
	exe := NewExecutable(writeScript(t, "mixed", `echo out; echo err >&2; exit 2`))
	var stdout bytes.Buffer
	exe.Stdout = &stdout

	err := exe.Run()
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "err\n", cmdErr.Stderr)
	assert.Equal(t, "out\n", stdout.String())
}

func TestCommandError_Unwrap(t *testing.T) {
	underlying := errors.New("permission denied")
	err := &CommandError{Cmd: "tool -o out.wasm in.wast", Err: underlying}

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), `"tool -o out.wasm in.wast"`)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestResolve(t *testing.T) {
	t.Setenv(EncoderEnv, "")
	os.Unsetenv(EncoderEnv)

	tests := []struct {
		name      string
		flagValue string
		env       string
		want      string
	}{
		{"flag wins over env", "/opt/wat2wasm", "/env/wat2wasm", "/opt/wat2wasm"},
		{"env wins over default", "", "/env/wat2wasm", "/env/wat2wasm"},
		{"default when nothing set", "", "", DefaultEncoder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(EncoderEnv, tt.env)
			}
			assert.Equal(t, tt.want, Resolve(tt.flagValue, EncoderEnv, DefaultEncoder))
		})
	}
}
