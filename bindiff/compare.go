package bindiff

import (
	"bytes"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"roundtrip/logging"
)

// MismatchError reports that two files differ in content. Diff carries the
// unified hex-dump diff when verbose comparison was requested, otherwise "".
type MismatchError struct {
	Path1 string
	Path2 string
	Diff  string
}

func (e *MismatchError) Error() string {
	return "files differ" + e.Diff
}

// Compare reads both files fully and checks them byte-for-byte. It returns
// nil when they are identical, a *MismatchError when they differ, and the
// read error itself when either file cannot be read. Comparison is always
// exact: the goal is proving the encoder deterministic across a
// decode/re-encode cycle, not structural equivalence.
func Compare(path1, path2 string, verbose bool) error {
	data1, err := os.ReadFile(path1)
	if err != nil {
		return err
	}
	data2, err := os.ReadFile(path2)
	if err != nil {
		return err
	}

	if bytes.Equal(data1, data2) {
		return nil
	}

	logging.Logger.Debug("Files differ", "path1", path1, "path2", path2,
		"size1", len(data1), "size2", len(data2))

	mismatch := &MismatchError{Path1: path1, Path2: path2}
	if verbose {
		// Raw binary is not diff-friendly; diff the hex dumps instead.
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        Hexdump(data1),
			B:        Hexdump(data2),
			FromFile: path1,
			ToFile:   path2,
			Context:  3,
		})
		if err != nil {
			return err
		}
		mismatch.Diff = diff
	}
	return mismatch
}
