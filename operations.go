package hashsimulator

import (
	"context"
	"github.com/go-logr/logr"
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/hashfunc"
	"github.com/gostonefire/hashsimulator/internal/storage/lpres"
	"github.com/gostonefire/hashsimulator/internal/utils"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RunAlgorithms - Runs one simulation per hash algorithm concurrently, each with its own table.
// A logr.Logger carried in ctx is used for debug and trace output.
//   - ctx cancels runs in progress, the first failing run cancels the others
//   - keys is the sequence of keys to insert, duplicates are allowed
//   - tableSize is the number of slots in each table
//   - hashAlgorithms are the hash functions to evaluate
//
// It returns:
//   - results holds one RunResult per hash algorithm, in the same order as hashAlgorithms
//   - err is the first error from any run
func RunAlgorithms(
	ctx context.Context,
	keys []string,
	tableSize int64,
	hashAlgorithms ...hashfunc.HashAlgorithm,
) (
	results []RunResult,
	err error,
) {
	if tableSize <= 0 {
		err = crt.InvalidTableSize{}
		return
	}

	logger := logr.FromContextOrDiscard(ctx)
	logger.V(1).Info("starting runs", "algorithms", len(hashAlgorithms), "keys", len(keys), "tableSize", tableSize)

	runs := make([]RunResult, len(hashAlgorithms))
	g, gctx := errgroup.WithContext(ctx)
	for i, ha := range hashAlgorithms {
		i, ha := i, ha
		g.Go(func() error {
			r, err := lpres.Simulate(gctx, keys, tableSize, ha)
			if err != nil {
				return err
			}
			runs[i] = r
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return
	}
	results = runs

	return
}

// KeyCheck - Summary of a key sequence in relation to a table size
//   - Keys is the total number of keys including duplicates
//   - DistinctKeys is the number of unique keys, i.e. the number of slots a run will occupy
//   - NonAlphaKeys is the number of keys containing characters other than 'A' to 'Z'
type KeyCheck struct {
	Keys         int64
	DistinctKeys int64
	NonAlphaKeys int64
}

// CheckKeys - Verifies that keys fit in a table of tableSize slots before any simulation is run.
// Keys with characters outside 'A' to 'Z' are only counted, they still hash to valid slots.
//
// It returns:
//   - keyCheck summarizes the keys
//   - err is crt.InvalidTableSize if tableSize is zero or less, or crt.TableFull if there are more distinct keys than slots
func CheckKeys(keys []string, tableSize int64) (keyCheck KeyCheck, err error) {
	keyCheck.Keys = int64(len(keys))
	keyCheck.DistinctKeys = utils.CountDistinct(keys)
	for _, k := range keys {
		if !utils.IsUpperAlpha(k) {
			keyCheck.NonAlphaKeys++
		}
	}

	if tableSize <= 0 {
		err = crt.InvalidTableSize{}
		return
	}

	if keyCheck.DistinctKeys > tableSize {
		err = errors.Wrapf(crt.TableFull{}, "%d distinct keys in table of size %d", keyCheck.DistinctKeys, tableSize)
	}

	return
}
