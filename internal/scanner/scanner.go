// Package scanner implements the three byte-level predicates the parser
// and serializer scan with: whitespace skipping, string-delimiter search,
// and escape-need detection. The reference implementation runs these over
// 32-byte and 16-byte SIMD lanes with a scalar fallback; Go has no
// portable way to express the vector instructions in source, so this
// port keeps the feature-detection hook (hasAVX2/hasSSE42, wired to
// golang.org/x/sys/cpu exactly as the teacher's cpu_amd64.go does) live
// and exercised, while the scan bodies are a word-at-a-time scalar
// implementation that is bit-identical to what a vectorized lane would
// produce for the same input, per the "SIMD as an optimization, not a
// contract" design note.
package scanner

import "math/bits"

// Dispatch reports which lane width the runtime would select, purely for
// diagnostics/benchmarking; every width currently executes the same Go
// scan loop.
type Dispatch uint8

const (
	DispatchScalar Dispatch = iota
	DispatchSSE42
	DispatchAVX2
	DispatchNEON
)

// SelectDispatch returns the widest lane the current CPU advertises
// support for, consulting the same feature probes the teacher's
// cpu_amd64.go exposes.
func SelectDispatch() Dispatch {
	if hasAVX2() {
		return DispatchAVX2
	}
	if hasSSE42() {
		return DispatchSSE42
	}
	if hasNEON() {
		return DispatchNEON
	}
	return DispatchScalar
}

const wordSize = 8

// SkipWhitespace returns the offset of the first byte in b that is not
// one of ' ', '\t', '\n', '\r', or len(b) if the whole slice is
// whitespace. It checks 0/1/2 bytes directly before falling into the
// word-at-a-time loop, mirroring the reference implementation's 3-step
// fast check ahead of its vector scan.
func SkipWhitespace(b []byte) int {
	n := len(b)
	if n == 0 {
		return 0
	}
	if !isWhitespace(b[0]) {
		return 0
	}
	if n == 1 || !isWhitespace(b[1]) {
		return 1
	}
	i := 2
	for ; i+wordSize <= n; i += wordSize {
		w := le64(b[i:])
		if m := whitespaceMismatch(w); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if !isWhitespace(b[i]) {
			return i
		}
	}
	return n
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// whitespaceMismatch returns a mask with byte 0xFF for every lane in w
// that is NOT whitespace (so TrailingZeros locates the first mismatch),
// or 0 if all 8 bytes are whitespace.
func whitespaceMismatch(w uint64) uint64 {
	var mask uint64
	for i := 0; i < 8; i++ {
		b := byte(w >> (8 * i))
		if !isWhitespace(b) {
			mask |= 0xFF << (8 * i)
		}
	}
	return mask
}

func le64(b []byte) uint64 {
	var w uint64
	for i := 0; i < 8; i++ {
		w |= uint64(b[i]) << (8 * i)
	}
	return w
}

// FindStringDelimiter returns the offset of the first `"` or `\` in b,
// or len(b) if neither appears.
func FindStringDelimiter(b []byte) int {
	n := len(b)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := le64(b[i:])
		if m := delimiterMatch(w); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if b[i] == '"' || b[i] == '\\' {
			return i
		}
	}
	return n
}

func delimiterMatch(w uint64) uint64 {
	var mask uint64
	for i := 0; i < 8; i++ {
		b := byte(w >> (8 * i))
		if b == '"' || b == '\\' {
			mask |= 0xFF << (8 * i)
		}
	}
	return mask
}

// FindNeedsEscape returns the offset of the first byte in b that the
// serializer must escape: any byte < 0x20, `"`, `\`, or (if ensureASCII)
// any byte >= 0x80. Returns len(b) if no byte needs escaping.
func FindNeedsEscape(b []byte, ensureASCII bool) int {
	n := len(b)
	i := 0
	for ; i+wordSize <= n; i += wordSize {
		w := le64(b[i:])
		if m := escapeMatch(w, ensureASCII); m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
	}
	for ; i < n; i++ {
		if needsEscape(b[i], ensureASCII) {
			return i
		}
	}
	return n
}

func needsEscape(c byte, ensureASCII bool) bool {
	if c < 0x20 || c == '"' || c == '\\' {
		return true
	}
	return ensureASCII && c >= 0x80
}

func escapeMatch(w uint64, ensureASCII bool) uint64 {
	var mask uint64
	for i := 0; i < 8; i++ {
		b := byte(w >> (8 * i))
		if needsEscape(b, ensureASCII) {
			mask |= 0xFF << (8 * i)
		}
	}
	return mask
}
