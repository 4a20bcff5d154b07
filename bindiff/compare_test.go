package bindiff

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCompare_IdenticalFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wasm", []byte{0x00, 0x61, 0x73, 0x6d})
	b := writeFile(t, dir, "b.wasm", []byte{0x00, 0x61, 0x73, 0x6d})

	assert.NoError(t, Compare(a, b, false))
	assert.NoError(t, Compare(a, b, true))
}

func TestCompare_SameFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wasm", []byte("anything at all"))

	assert.NoError(t, Compare(a, a, true))
}

func TestCompare_EmptyFilesAreEqual(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wasm", nil)
	b := writeFile(t, dir, "b.wasm", nil)

	assert.NoError(t, Compare(a, b, true))
}

func TestCompare_DifferentContent(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wasm", []byte{0x01, 0x02})
	b := writeFile(t, dir, "b.wasm", []byte{0x01, 0x03})

	err := Compare(a, b, false)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "files differ", mismatch.Error())
	assert.Empty(t, mismatch.Diff)
}

func TestCompare_VerboseHexDiff(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "first.wasm", []byte("0123456789:;<=>?"))
	b := writeFile(t, dir, "second.wasm", []byte("0123456789:;<=>!"))

	err := Compare(a, b, true)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)

	msg := mismatch.Error()
	assert.Contains(t, msg, "files differ")
	// The file paths label the two sides of the diff.
	assert.Contains(t, msg, "--- "+a)
	assert.Contains(t, msg, "+++ "+b)
	// The diff is over hex-dump lines, offsets and ASCII column included.
	assert.Contains(t, msg, "-0000000: 3031 3233 3435 3637 3839 3a3b 3c3d 3e3f  0123456789:;<=>?\n")
	assert.Contains(t, msg, "+0000000: 3031 3233 3435 3637 3839 3a3b 3c3d 3e21  0123456789:;<=>!\n")
}

func TestCompare_MissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wasm", []byte{0x01})

	tests := []struct {
		name  string
		path1 string
		path2 string
	}{
		{"first missing", filepath.Join(dir, "nope.wasm"), a},
		{"second missing", a, filepath.Join(dir, "nope.wasm")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Compare(tt.path1, tt.path2, false)
			require.Error(t, err)

			// Read failures surface as raw I/O errors, not mismatches.
			var mismatch *MismatchError
			assert.False(t, errors.As(err, &mismatch))
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}
