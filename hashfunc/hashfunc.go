package hashfunc

// HashAlgorithm - Interface that permits any hash function to be evaluated by the probe simulator.
// Implementations must be deterministic and free of side effects, since the same instance may be used
// by several simulation runs at the same time.
type HashAlgorithm interface {
	// Name - Returns the name the algorithm is reported under
	Name() string

	// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	//   - key is the key to place in the table
	//   - tableSize is the number of slots in the table, callers guarantee it to be higher than 0 (zero)
	HashFunc(key string, tableSize int64) int64
}
