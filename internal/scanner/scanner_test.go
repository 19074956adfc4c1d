package scanner

import (
	"fmt"
	"strings"
	"testing"
)

var boundarySizes = []int{0, 1, 7, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 127, 128, 255, 256, 512, 1024}

func TestSkipWhitespace(t *testing.T) {
	for _, n := range boundarySizes {
		t.Run(fmt.Sprintf("allWhitespace_%d", n), func(t *testing.T) {
			b := []byte(strings.Repeat(" ", n))
			if got := SkipWhitespace(b); got != n {
				t.Errorf("SkipWhitespace(all-space len %d) = %d, want %d", n, got, n)
			}
		})
		t.Run(fmt.Sprintf("stopsAtNonWhitespace_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat(" ", n)), 'x')
			if got := SkipWhitespace(b); got != n {
				t.Errorf("SkipWhitespace = %d, want %d", got, n)
			}
		})
	}
	mixed := []byte(" \t\n\r x")
	if got := SkipWhitespace(mixed); got != 5 {
		t.Errorf("mixed whitespace: got %d want 5", got)
	}
}

func TestFindStringDelimiter(t *testing.T) {
	for _, n := range boundarySizes {
		t.Run(fmt.Sprintf("noDelimiter_%d", n), func(t *testing.T) {
			b := []byte(strings.Repeat("a", n))
			if got := FindStringDelimiter(b); got != n {
				t.Errorf("got %d want %d", got, n)
			}
		})
		t.Run(fmt.Sprintf("quoteAt_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat("a", n)), '"')
			if got := FindStringDelimiter(b); got != n {
				t.Errorf("got %d want %d", got, n)
			}
		})
		t.Run(fmt.Sprintf("backslashAt_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat("a", n)), '\\')
			if got := FindStringDelimiter(b); got != n {
				t.Errorf("got %d want %d", got, n)
			}
		})
	}
}

func TestFindNeedsEscape(t *testing.T) {
	for _, n := range boundarySizes {
		t.Run(fmt.Sprintf("clean_%d", n), func(t *testing.T) {
			b := []byte(strings.Repeat("a", n))
			if got := FindNeedsEscape(b, false); got != n {
				t.Errorf("got %d want %d", got, n)
			}
		})
		t.Run(fmt.Sprintf("control_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat("a", n)), 0x01)
			if got := FindNeedsEscape(b, false); got != n {
				t.Errorf("got %d want %d", got, n)
			}
		})
		t.Run(fmt.Sprintf("highByteAsciiOnly_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat("a", n)), 0x80)
			if got := FindNeedsEscape(b, false); got != n+1 {
				t.Errorf("ensureASCII=false should not flag 0x80: got %d want %d", got, n+1)
			}
		})
		t.Run(fmt.Sprintf("highByteEnsureASCII_%d", n), func(t *testing.T) {
			b := append([]byte(strings.Repeat("a", n)), 0x80)
			if got := FindNeedsEscape(b, true); got != n {
				t.Errorf("ensureASCII=true should flag 0x80: got %d want %d", got, n)
			}
		})
	}
}

func TestSelectDispatchDoesNotPanic(t *testing.T) {
	_ = SelectDispatch()
}
