package crt

// TableFull - Custom error to inform that the hash table is full and can't take more keys
type TableFull struct {
	msg string
}

// Error - Used to notify that the hash table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "hash table full"
	}
	return E.msg
}

// InvalidTableSize - Custom error to inform that a table size of zero or less was given
type InvalidTableSize struct {
	msg string
}

// Error - Used to notify that the table size is not usable
func (E InvalidTableSize) Error() string {
	if E.msg == "" {
		return "table size must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that a hash algorithm produced an index outside the table
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash value fell outside 0 -> table size - 1
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "hash value outside table range"
	}
	return P.msg
}

// UnknownAlgorithm - Custom error to inform that no hash algorithm is registered under a given name
type UnknownAlgorithm struct {
	msg string
}

// Error - Used to notify that a hash algorithm name could not be resolved
func (U UnknownAlgorithm) Error() string {
	if U.msg == "" {
		return "unknown hash algorithm"
	}
	return U.msg
}
