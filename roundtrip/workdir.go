package roundtrip

import (
	"fmt"
	"os"

	"roundtrip/logging"
)

// Workdir is the directory holding the run's intermediate artifacts. A
// user-supplied directory is created if absent and never removed; a
// harness-owned temp directory is removed by Close on every exit path.
type Workdir struct {
	Path  string
	owned bool
}

// OpenWorkdir prepares the working directory. With a non-empty userPath the
// directory is created as needed and left behind; with an empty path a
// fresh temp directory is created and owned by the harness.
func OpenWorkdir(userPath string) (*Workdir, error) {
	if userPath != "" {
		if err := os.MkdirAll(userPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		return &Workdir{Path: userPath}, nil
	}

	tempDir, err := os.MkdirTemp("", "roundtrip-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}
	logging.Logger.Debug("Created temp working directory", "path", tempDir)
	return &Workdir{Path: tempDir, owned: true}, nil
}

// Close removes the directory if the harness owns it. Safe to defer
// unconditionally.
func (w *Workdir) Close() error {
	if !w.owned {
		return nil
	}
	return os.RemoveAll(w.Path)
}
