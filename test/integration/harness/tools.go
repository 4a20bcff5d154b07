package harness

import (
	"os"
	"path/filepath"
	"testing"
)

// Fake wabt-style tools. The encoder prepends a 4-byte magic to its input
// and rejects any input whose name contains "bad-"; the decoder strips the
// magic again, writing to stdout when no -o argument is given. Together
// they round-trip losslessly, so the default pair always satisfies the
// harness.
const encoderScript = `#!/bin/sh
out=""
in=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    --*) shift ;;
    *) in="$1"; shift ;;
  esac
done
if [ ! -f "$in" ]; then
  echo "no such file: $in" >&2
  exit 1
fi
case "$in" in
  *bad-*) echo "parse error: $in" >&2; exit 1 ;;
esac
printf '\0asm' > "$out"
cat "$in" >> "$out"
`

const decoderScript = `#!/bin/sh
out=""
in=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    --*) shift ;;
    *) in="$1"; shift ;;
  esac
done
if [ -z "$out" ]; then
  tail -c +5 "$in"
else
  tail -c +5 "$in" > "$out"
fi
`

// A decoder that drops trailing bytes, so re-encoding never reproduces the
// first binary.
const lossyDecoderScript = `#!/bin/sh
out=""
in=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) out="$2"; shift 2 ;;
    --*) shift ;;
    *) in="$1"; shift ;;
  esac
done
tail -c +5 "$in" | head -c 1 > "$out"
`

const crashingDecoderScript = `#!/bin/sh
echo "unexpected section code" >&2
exit 1
`

// FakeTools returns the paths of a default encoder/decoder pair installed
// into the environment's tools directory.
func FakeTools(tb testing.TB, env *TestEnvironment) (encoder, decoder string) {
	tb.Helper()
	return WriteTool(tb, env, "wat2wasm", encoderScript),
		WriteTool(tb, env, "wasm2wat", decoderScript)
}

// LossyDecoder installs a decoder whose output loses information.
func LossyDecoder(tb testing.TB, env *TestEnvironment) string {
	tb.Helper()
	return WriteTool(tb, env, "wasm2wat-lossy", lossyDecoderScript)
}

// CrashingDecoder installs a decoder that always fails.
func CrashingDecoder(tb testing.TB, env *TestEnvironment) string {
	tb.Helper()
	return WriteTool(tb, env, "wasm2wat-crash", crashingDecoderScript)
}

// WriteTool installs an executable script into the tools directory.
func WriteTool(tb testing.TB, env *TestEnvironment, name, script string) string {
	tb.Helper()
	path := filepath.Join(env.ToolsDir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		tb.Fatalf("Failed to write tool %s: %v", name, err)
	}
	return path
}
