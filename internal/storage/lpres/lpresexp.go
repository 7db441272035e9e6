package lpres

import (
	"context"
	"github.com/go-logr/logr"
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/hashfunc"
	"github.com/gostonefire/hashsimulator/internal/model"
	"github.com/pkg/errors"
)

// Table - Represents the hash table of one simulation run, implementing the Linear Probing Collision Resolution
// Technique. In case of a collision, it probes through the table linearly, looking for an empty slot or the slot
// already holding the key. Once all slots are occupied the table will accept no more new keys.
type Table struct {
	slots     []model.Slot
	tableSize int64
	occupied  int64
}

// NewTable - Returns a pointer to a new Table with all slots empty
//   - tableSize is the fixed number of slots, it has to be higher than 0 (zero)
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.InvalidTableSize if tableSize is zero or less
func NewTable(tableSize int64) (table *Table, err error) {
	if tableSize <= 0 {
		err = crt.InvalidTableSize{}
		return
	}

	table = &Table{
		slots:     make([]model.Slot, tableSize),
		tableSize: tableSize,
	}

	return
}

// Size - Returns the number of slots in the table
func (T *Table) Size() int64 {
	return T.tableSize
}

// Occupied - Returns the number of slots holding a key
func (T *Table) Occupied() int64 {
	return T.occupied
}

// Get - Returns the contents of a slot
//   - slotNo is a slot number between 0 and table size - 1
//
// It returns:
//   - slot is the model.Slot, with State model.SlotEmpty if no key has been placed there
//   - err is of type crt.ProbingAlgorithm if slotNo is outside the table
func (T *Table) Get(slotNo int64) (slot model.Slot, err error) {
	if slotNo < 0 || slotNo >= T.tableSize {
		err = crt.ProbingAlgorithm{}
		return
	}

	slot = T.slots[slotNo]

	return
}

// Insert - Places key in the table starting at the slot given by the hash function.
// If the key is already in the table nothing changes and the returned Placement has no collision and no probes.
//   - key is the key to place
//   - slotNo is the initial slot given by a hash function
//
// It returns:
//   - placement tells where the key ended up, whether the initial slot held another key and how many probes it took
//   - err is of type crt.ProbingAlgorithm if slotNo is outside the table or crt.TableFull if no slot is available
func (T *Table) Insert(key string, slotNo int64) (placement model.Placement, err error) {
	if slotNo < 0 || slotNo >= T.tableSize {
		err = errors.Wrapf(crt.ProbingAlgorithm{}, "slot %d for key %q in table of size %d", slotNo, key, T.tableSize)
		return
	}

	placement, err = T.linearProbingForSet(slotNo, key)
	if err != nil {
		err = errors.Wrapf(err, "key %q", key)
		return
	}

	if T.slots[placement.Slot].State == model.SlotEmpty {
		T.occupied++
	}
	T.slots[placement.Slot] = model.Slot{State: model.SlotOccupied, Key: key}

	return
}

// Simulate - Inserts all keys, in order, into a fresh table using hashAlgorithm and returns the accumulated
// statistics. Collisions count keys whose initial slot held another key, once per key, while probes count every
// linear step taken.
//   - ctx carries an optional logr.Logger and is checked for cancellation between keys
//   - keys is the sequence of keys to insert, duplicates are allowed
//   - tableSize is the number of slots in the table
//   - hashAlgorithm is the hash function to evaluate
//
// It returns:
//   - result is the model.RunResult for the run
//   - err is crt.InvalidTableSize, crt.TableFull, crt.ProbingAlgorithm or a context error
func Simulate(
	ctx context.Context,
	keys []string,
	tableSize int64,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	result model.RunResult,
	err error,
) {
	logger := logr.FromContextOrDiscard(ctx).WithValues("algorithm", hashAlgorithm.Name())
	result.Algorithm = hashAlgorithm.Name()

	table, err := NewTable(tableSize)
	if err != nil {
		return
	}

	var placement model.Placement
	for _, key := range keys {
		if err = ctx.Err(); err != nil {
			return
		}

		placement, err = table.Insert(key, hashAlgorithm.HashFunc(key, tableSize))
		if err != nil {
			err = errors.Wrapf(err, "simulating %s", hashAlgorithm.Name())
			return
		}

		if placement.Collision {
			result.Collisions++
			logger.V(2).Info("collision", "key", key, "slot", placement.Slot, "probes", placement.Probes)
		}
		result.Probes += placement.Probes
	}

	logger.V(1).Info("run done", "keys", len(keys), "occupied", table.Occupied(), "collisions", result.Collisions, "probes", result.Probes)

	return
}
