// Package integration_test provides end-to-end tests for the run-roundtrip
// CLI. Tests compile the binary once via TestMain and run each test against
// fake encoder/decoder tools in an isolated environment.
package integration_test

import (
	"log"
	"os"
	"testing"

	"roundtrip/test/integration/harness"
)

func TestMain(m *testing.M) {
	// Build binary once before all tests
	_, err := harness.BuildBinary()
	if err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	// Run tests
	code := m.Run()

	// Cleanup
	harness.CleanupBinary()

	os.Exit(code)
}
