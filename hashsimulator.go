package hashsimulator

import (
	"context"
	"github.com/gostonefire/hashsimulator/internal/hash"
	"github.com/gostonefire/hashsimulator/internal/model"
	"github.com/gostonefire/hashsimulator/internal/storage/lpres"
)

// RunResult - Collisions and probes from one simulation run with one hash algorithm
type RunResult = model.RunResult

// Results - The statistics of the three candidate hash functions, one RunResult each
type Results struct {
	H1 RunResult
	H2 RunResult
	H3 RunResult
}

// Slice - Returns the results in H1, H2, H3 order
func (R Results) Slice() []RunResult {
	return []RunResult{R.H1, R.H2, R.H3}
}

// RunHashSimulation - Runs the hash simulation with the three candidate hash functions H1, H2 and H3, one after
// the other. Each run inserts all keys into its own fresh table of tableSize slots using linear probing.
//   - keys is the sequence of keys to insert, duplicates are allowed
//   - tableSize is the number of slots in the table, it has to be higher than 0 (zero)
//
// It returns:
//   - results holds collisions and probes per hash function
//   - err is crt.InvalidTableSize if tableSize is zero or less, or crt.TableFull if there are more distinct keys than slots
func RunHashSimulation(keys []string, tableSize int64) (results Results, err error) {
	ctx := context.Background()
	h := hash.Defaults()

	results.H1, err = lpres.Simulate(ctx, keys, tableSize, h[0])
	if err != nil {
		return
	}
	results.H2, err = lpres.Simulate(ctx, keys, tableSize, h[1])
	if err != nil {
		return
	}
	results.H3, err = lpres.Simulate(ctx, keys, tableSize, h[2])

	return
}
