package utils

// Mod - Returns a modulo n reduced into 0 -> n - 1, also for negative a.
// Go's % keeps the sign of the dividend, which would give negative slot numbers for keys
// containing characters below 'A'.
func Mod(a, n int64) int64 {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// IsUpperAlpha - Returns true if key consists of the letters 'A' to 'Z' only
func IsUpperAlpha(key string) bool {
	for _, c := range key {
		if c < 'A' || c > 'Z' {
			return false
		}
	}

	return true
}

// CountDistinct - Returns the number of distinct keys in keys
func CountDistinct(keys []string) int64 {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}

	return int64(len(seen))
}
