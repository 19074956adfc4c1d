//go:build !amd64 && !arm64

package scanner

func hasAVX2() bool  { return false }
func hasSSE42() bool { return false }
func hasNEON() bool  { return false }
