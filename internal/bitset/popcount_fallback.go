//go:build !amd64

package bitset

func countWords(words []uint64) int {
	return countGeneric(words)
}

func andCountWords(a, b []uint64) int {
	return andCountGeneric(a, b)
}
