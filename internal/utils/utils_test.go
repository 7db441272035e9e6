//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMod(t *testing.T) {
	t.Run("positive values are reduced as with %", func(t *testing.T) {
		// Prepare
		input := []int64{0, 4, 5, 6, 127, 128, 158}
		expected := []int64{0, 4, 0, 1, 2, 3, 3}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equalf(t, expected[i], Mod(input[i], 5), "correct modulo of %d", input[i])
		}
	})

	t.Run("negative values are lifted into range", func(t *testing.T) {
		// Prepare
		input := []int64{-1, -5, -6, -127}
		expected := []int64{4, 0, 4, 3}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equalf(t, expected[i], Mod(input[i], 5), "correct modulo of %d", input[i])
		}
	})
}

func TestIsUpperAlpha(t *testing.T) {
	t.Run("uppercase keys", func(t *testing.T) {
		// Check
		assert.True(t, IsUpperAlpha("ADAM"), "letters only")
		assert.True(t, IsUpperAlpha(""), "empty key has no offending characters")
	})

	t.Run("keys with other characters", func(t *testing.T) {
		// Check
		assert.False(t, IsUpperAlpha("Adam"), "lowercase")
		assert.False(t, IsUpperAlpha("ADAM1"), "digit")
		assert.False(t, IsUpperAlpha("AD AM"), "space")
		assert.False(t, IsUpperAlpha("ÅSA"), "non ascii letter")
	})
}

func TestCountDistinct(t *testing.T) {
	t.Run("duplicates are counted once", func(t *testing.T) {
		// Execute
		n := CountDistinct([]string{"AB", "BA", "AB", "", ""})

		// Check
		assert.Equal(t, int64(3), n, "correct number of distinct keys")
	})

	t.Run("no keys", func(t *testing.T) {
		// Check
		assert.Equal(t, int64(0), CountDistinct(nil), "zero distinct keys")
	})
}
