package hash

import (
	"github.com/gostonefire/hashsimulator/internal/utils"
)

// positionalBase - Radix used when treating a key as a number of letter digits
const positionalBase int64 = 26

// PositionalHashAlgorithm - H2, treats the key as a base 26 number with the first character as the least
// significant digit. Both the running hash and the running power of 26 are reduced modulo the table size in every
// step so the 64-bit arithmetic never overflows for letter keys.
type PositionalHashAlgorithm struct{}

// NewPositionalHashAlgorithm - Returns a pointer to a new PositionalHashAlgorithm instance
func NewPositionalHashAlgorithm() *PositionalHashAlgorithm {
	return &PositionalHashAlgorithm{}
}

// Name - Returns the registered name of the algorithm
func (P *PositionalHashAlgorithm) Name() string {
	return H2
}

// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
func (P *PositionalHashAlgorithm) HashFunc(key string, tableSize int64) int64 {
	var h int64
	multiplier := int64(1)
	for _, c := range key {
		h = utils.Mod(h+letterValue(c)*multiplier, tableSize)
		multiplier = (multiplier * positionalBase) % tableSize
	}

	return h
}
