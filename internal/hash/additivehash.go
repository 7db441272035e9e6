package hash

import (
	"github.com/gostonefire/hashsimulator/internal/utils"
)

// AdditiveHashAlgorithm - H1, sums the letter values of the key ('A' = 1, 'B' = 2, ...) and reduces the sum
// modulo the table size. The order of the characters does not matter, so anagrams always end up in the same slot.
type AdditiveHashAlgorithm struct{}

// NewAdditiveHashAlgorithm - Returns a pointer to a new AdditiveHashAlgorithm instance
func NewAdditiveHashAlgorithm() *AdditiveHashAlgorithm {
	return &AdditiveHashAlgorithm{}
}

// Name - Returns the registered name of the algorithm
func (A *AdditiveHashAlgorithm) Name() string {
	return H1
}

// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
func (A *AdditiveHashAlgorithm) HashFunc(key string, tableSize int64) int64 {
	var h int64
	for _, c := range key {
		h += letterValue(c)
	}

	return utils.Mod(h, tableSize)
}

// letterValue - Returns the value of c where 'A' is 1, characters outside 'A' to 'Z' give whatever the offset is
func letterValue(c rune) int64 {
	return int64(c-'A') + 1
}
