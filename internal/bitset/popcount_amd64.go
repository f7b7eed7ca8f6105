//go:build amd64

package bitset

import "golang.org/x/sys/cpu"

// CPU feature detection at package initialization, used to dispatch the
// popcount kernels. math/bits.OnesCount64 checks for POPCNT per call; on
// CPUs without it the branch-free SWAR kernel wins for batched counting.
var hasPOPCNT = cpu.X86.HasPOPCNT

func countWords(words []uint64) int {
	if hasPOPCNT {
		return countGeneric(words)
	}
	return countSWAR(words)
}

func andCountWords(a, b []uint64) int {
	if hasPOPCNT {
		return andCountGeneric(a, b)
	}
	return andCountSWAR(a, b)
}
