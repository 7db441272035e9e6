package model

// SlotEmpty - State indicating a slot that has never been assigned a key
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that holds a key
const SlotOccupied uint8 = 1

// Slot - Represents one slot in the hash table
type Slot struct {
	State uint8
	Key   string
}

// RunResult - Statistics from one simulation run with one hash algorithm
//   - Algorithm is the name of the hash algorithm used
//   - Collisions is the number of keys whose first slot was occupied by another key
//   - Probes is the total number of linear steps taken to place all keys
type RunResult struct {
	Algorithm  string `json:"algorithm"`
	Collisions int64  `json:"collisions"`
	Probes     int64  `json:"probes"`
}

// Placement - Describes where one key ended up and what it took to get it there
type Placement struct {
	Slot      int64
	Collision bool
	Probes    int64
}
