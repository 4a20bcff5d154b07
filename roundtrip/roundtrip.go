package roundtrip

import (
	"errors"
	"path/filepath"
	"strings"

	"roundtrip/bindiff"
	"roundtrip/logging"
	"roundtrip/toolexec"
)

// Runner drives one round-trip of the encoder and decoder over a single
// input file. It owns both tools for the duration of the run; execution is
// purely sequential.
type Runner struct {
	Encoder *toolexec.Executable
	Decoder *toolexec.Executable
	Workdir *Workdir
	Verbose bool
}

// artifact derives a stage file path from the input file's base name. Paths
// are a pure function of input name and stage, so repeated runs into the
// same directory overwrite rather than collide.
func (r *Runner) artifact(file, suffix string) string {
	base := filepath.Base(file)
	noext := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(r.Workdir.Path, noext+suffix)
}

// TwoRoundtrips encodes file, decodes the binary back to text, re-encodes
// that, and compares the two binaries byte-for-byte.
//
// A failure of the very first encode is SKIPPED, not an error: the input
// may be a deliberately invalid fixture (the "bad-*" convention). Failures
// of the later stages operate on harness-produced artifacts and are always
// real errors. Batch drivers depend on this split for fixture triage.
func (r *Runner) TwoRoundtrips(file string) Outcome {
	wasm1 := r.artifact(file, "-1.wasm")
	wast2 := r.artifact(file, "-2.wast")
	wasm3 := r.artifact(file, "-3.wasm")

	if err := r.Encoder.Run("-o", wasm1, file); err != nil {
		// The input may not parse at all; that is the fixture's business.
		logging.Logger.Debug("First encode failed, skipping", "file", file, "error", err)
		return Skipped()
	}

	if err := r.Decoder.Run("-o", wast2, wasm1); err != nil {
		return Errorf("%s", err)
	}
	if err := r.Encoder.Run("-o", wasm3, wast2); err != nil {
		return Errorf("%s", err)
	}

	return compareOutcome(wasm1, wasm3, r.Verbose)
}

// OneRoundtripToStdout encodes file and decodes the result with no output
// argument, so the decoder writes its reconstructed text to stdout. No
// comparison is performed; the caller inspects stdout externally.
func (r *Runner) OneRoundtripToStdout(file string) Outcome {
	wasm := r.artifact(file, ".wasm")

	if err := r.Encoder.Run("-o", wasm, file); err != nil {
		logging.Logger.Debug("First encode failed, skipping", "file", file, "error", err)
		return Skipped()
	}

	if err := r.Decoder.Run(wasm); err != nil {
		return Errorf("%s", err)
	}
	return OK()
}

func compareOutcome(path1, path2 string, verbose bool) Outcome {
	err := bindiff.Compare(path1, path2, verbose)
	if err == nil {
		return OK()
	}
	var mismatch *bindiff.MismatchError
	if errors.As(err, &mismatch) {
		return Errorf("%s", mismatch)
	}
	// Read failure: report the raw OS error text.
	return Errorf("%s", err)
}
