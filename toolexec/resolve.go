package toolexec

import "os"

// Default tool names, looked up on PATH when no override is given.
const (
	DefaultEncoder = "wat2wasm"
	DefaultDecoder = "wasm2wat"
)

// Environment variables overriding the tool executables.
const (
	EncoderEnv = "WASM_ENCODER"
	DecoderEnv = "WASM_DECODER"
)

// Resolve picks the executable path for a tool with precedence
// flag > environment variable > default name (resolved on PATH by exec).
// It never verifies the path exists; a missing tool surfaces later as a
// launch failure with the full command line.
func Resolve(flagValue, envVar, defaultName string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return defaultName
}
