//go:build arm64

package scanner

import "golang.org/x/sys/cpu"

func hasAVX2() bool  { return false }
func hasSSE42() bool { return false }
func hasNEON() bool  { return cpu.ARM64.HasASIMD }
