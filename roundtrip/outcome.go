// Package roundtrip sequences the encoder and decoder tools through one or
// two encode/decode cycles and classifies the result.
package roundtrip

import (
	"fmt"
	"io"
	"strings"
)

// Status is the tri-state classification of one harness run. The values
// double as process exit codes.
type Status int

const (
	StatusOK      Status = 0
	StatusError   Status = 1
	StatusSkipped Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Outcome pairs a Status with an optional diagnostic. Only StatusError
// carries a message: a subprocess failure or a binary-diff report.
type Outcome struct {
	Status  Status
	Message string
}

// OK is the silent success outcome.
func OK() Outcome {
	return Outcome{Status: StatusOK}
}

// Errorf builds an error outcome from the given diagnostic.
func Errorf(format string, args ...any) Outcome {
	return Outcome{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Skipped marks an input that failed its first encode: an expected-failure
// fixture rather than a harness bug. It carries no message.
func Skipped() Outcome {
	return Outcome{Status: StatusSkipped}
}

// Report writes the outcome's diagnostic, if any, to w and returns the
// process exit code. Only errors produce output; OK and SKIPPED stay
// silent so the harness composes inside batch drivers keyed off exit
// codes alone.
func Report(w io.Writer, out Outcome) int {
	if out.Status == StatusError && out.Message != "" {
		msg := out.Message
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		io.WriteString(w, msg)
	}
	return int(out.Status)
}
