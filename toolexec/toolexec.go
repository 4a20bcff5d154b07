// Package toolexec runs the external encoder/decoder tools and resolves
// their executables from flags, environment variables, and PATH.
package toolexec

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"roundtrip/logging"
)

// CommandError reports a tool invocation that could not be launched or
// exited non-zero. Cmd is the full command line; Stderr holds the captured
// standard error for exit failures, Err the OS error for launch failures.
type CommandError struct {
	Cmd    string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error running %q: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("error running %q:\n%s", e.Cmd, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Executable wraps one external tool. ExtraArgs are appended after the
// positional arguments on every call and are fixed once CLI wiring is done.
type Executable struct {
	Path      string
	ExtraArgs []string

	// Stdout receives the child's standard output; the harness never
	// captures it (tools write to a file or to stdout depending on mode).
	// Defaults to the process's own stdout.
	Stdout io.Writer
}

// NewExecutable returns an Executable whose stdout passes through to the
// harness's own stdout.
func NewExecutable(path string) *Executable {
	return &Executable{Path: path, Stdout: os.Stdout}
}

// AppendArg adds a fixed argument passed on every invocation of this tool.
func (e *Executable) AppendArg(arg string) {
	e.ExtraArgs = append(e.ExtraArgs, arg)
}

// Run launches the tool with the given positional arguments followed by the
// fixed extra arguments, and blocks until it exits. There is no timeout: a
// hung tool hangs the harness. On non-zero exit or launch failure it
// returns a *CommandError.
func (e *Executable) Run(args ...string) error {
	argv := make([]string, 0, len(args)+len(e.ExtraArgs))
	argv = append(argv, args...)
	argv = append(argv, e.ExtraArgs...)
	cmdline := strings.Join(append([]string{e.Path}, argv...), " ")

	logging.Logger.Debug("Running tool", "cmd", cmdline)

	var stderr bytes.Buffer
	cmd := exec.Command(e.Path, argv...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			logging.Logger.Debug("Tool exited non-zero", "cmd", cmdline, "stderr", stderr.String())
			return &CommandError{Cmd: cmdline, Stderr: stderr.String()}
		}
		logging.Logger.Debug("Tool failed to launch", "cmd", cmdline, "error", err)
		return &CommandError{Cmd: cmdline, Err: err}
	}
	return nil
}
