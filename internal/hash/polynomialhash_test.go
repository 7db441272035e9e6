//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPolynomialHashAlgorithm_HashFunc(t *testing.T) {
	t.Run("creates a valid slot number", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm()

		// Execute and Check
		assert.Equal(t, int64(13), h.HashFunc("ADAM", 37))
		assert.Equal(t, int64(3), h.HashFunc("AB", 5), "2 -> 127 mod 5 = 2 -> 128 mod 5 = 3")
		assert.Equal(t, int64(3), h.HashFunc("BA", 5), "2 -> 128 mod 5 = 3 -> 158 mod 5 = 3")
		assert.Equal(t, int64(20), h.HashFunc("ZZZZZZZZZZZZZZZZZZZZ", 37), "long keys do not overflow")
	})

	t.Run("empty key hashes to zero", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm()

		// Execute and Check
		for _, tableSize := range []int64{1, 2, 5, 37, 1 << 40} {
			assert.Equalf(t, int64(0), h.HashFunc("", tableSize), "empty key in table size %d", tableSize)
		}
	})

	t.Run("reduces in every step", func(t *testing.T) {
		// Prepare
		h := NewPolynomialHashAlgorithm()

		// Full String.hashCode style value for "BA" seeded with length: ((2*31+66)*31+65) = 4033
		full := int64(4033) % 37

		// Execute and Check
		assert.Equal(t, int64(0), h.HashFunc("BA", 37), "step wise reduction")
		assert.Equal(t, int64(0), full, "same as full hash for small values")
	})
}
