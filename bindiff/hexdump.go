// Package bindiff compares binary files byte-for-byte and renders
// diff-friendly hex dumps for diagnostics.
package bindiff

import (
	"fmt"
	"strings"
)

const (
	dumpOctetsPerLine  = 16
	dumpOctetsPerGroup = 2
)

// Hexdump renders data as newline-terminated hex-dump lines. Each line
// covers 16 bytes: a 7-digit zero-padded hex offset, ": ", the bytes as
// lowercase hex pairs in groups of 2 with a trailing space per group
// (missing bytes in the final line padded with two spaces per slot, so the
// ASCII column always starts at the same column), one more space, then an
// ASCII column printing bytes in [0x20, 0x7e] verbatim and "." otherwise.
// The ASCII column is truncated at end of data, not padded.
func Hexdump(data []byte) []string {
	var lines []string
	for p := 0; p < len(data); p += dumpOctetsPerLine {
		var b strings.Builder
		fmt.Fprintf(&b, "%07x: ", p)
		for i := 0; i < dumpOctetsPerLine; i += dumpOctetsPerGroup {
			for j := 0; j < dumpOctetsPerGroup; j++ {
				if p+i+j < len(data) {
					fmt.Fprintf(&b, "%02x", data[p+i+j])
				} else {
					b.WriteString("  ")
				}
			}
			b.WriteByte(' ')
		}
		b.WriteByte(' ')
		for i := 0; i < dumpOctetsPerLine && p+i < len(data); i++ {
			c := data[p+i]
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
		lines = append(lines, b.String())
	}
	return lines
}
