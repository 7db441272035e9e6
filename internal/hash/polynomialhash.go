package hash

import (
	"github.com/gostonefire/hashsimulator/internal/utils"
	"unicode/utf8"
)

// polynomialBase - Multiplier used by the String.hashCode style accumulation
const polynomialBase int64 = 31

// PolynomialHashAlgorithm - H3, a String.hashCode style hash seeded with the key length.
// Unlike hashing fully and reducing once, the accumulator is reduced modulo the table size after every character,
// which gives a different trajectory than the plain hash code would. The empty key hashes to 0 (zero).
type PolynomialHashAlgorithm struct{}

// NewPolynomialHashAlgorithm - Returns a pointer to a new PolynomialHashAlgorithm instance
func NewPolynomialHashAlgorithm() *PolynomialHashAlgorithm {
	return &PolynomialHashAlgorithm{}
}

// Name - Returns the registered name of the algorithm
func (P *PolynomialHashAlgorithm) Name() string {
	return H3
}

// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
func (P *PolynomialHashAlgorithm) HashFunc(key string, tableSize int64) int64 {
	h := int64(utf8.RuneCountInString(key))
	for _, c := range key {
		h = utils.Mod(polynomialBase*h+int64(c), tableSize)
	}

	return h
}
