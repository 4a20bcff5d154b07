package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated environment for one harness run:
// a private HOME (so no real settings.json leaks in), a directory of fake
// encoder/decoder tools, and a fixtures directory.
type TestEnvironment struct {
	Home     string
	ToolsDir string
	Fixtures string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment. The temp
// directories are cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	root := tb.TempDir()
	env := &TestEnvironment{
		Home:     filepath.Join(root, "home"),
		ToolsDir: filepath.Join(root, "tools"),
		Fixtures: filepath.Join(root, "fixtures"),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
	for _, dir := range []string{env.Home, env.ToolsDir, env.Fixtures} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			tb.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out ROUNDTRIP_* and WASM_* variables and sets HOME to the
// private home directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+1+len(e.extraEnv))

	overrideKeys := map[string]bool{"HOME": true}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		key := parts[0]
		if strings.HasPrefix(key, "ROUNDTRIP_") || strings.HasPrefix(key, "WASM_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "HOME="+e.Home)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFixture places a test input file in the fixtures directory and
// returns its path.
func (e *TestEnvironment) WriteFixture(name, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.Fixtures, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write fixture %s: %v", name, err)
	}
	return path
}
