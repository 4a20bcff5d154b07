// Package harness provides utilities for integration testing the
// run-roundtrip CLI. It handles binary compilation, environment isolation,
// fake encoder/decoder tools, and command execution.
//
// Environment variables managed:
//   - HOME: Isolated per test (temp directory, keeps settings.json out)
//   - ROUNDTRIP_*: Filtered to reduce noise
//   - WASM_ENCODER / WASM_DECODER: Filtered, set per test when needed
package harness
