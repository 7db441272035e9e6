//go:build unit

package main

import (
	"bytes"
	"context"
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/internal/conf"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRun(t *testing.T) {
	t.Run("prints results for each algorithm", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, conf.DefaultKeysFile, []byte("AB\nBA\n"), 0644))
		cfg := conf.Default()
		cfg.TableSize = 5
		var buf bytes.Buffer

		// Execute
		results, n, err := run(context.Background(), fs, cfg, &buf)

		// Check
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, results, 3)
		assert.Equal(t, "Collisions with H1: 1, Probes with H1: 1\n"+
			"Collisions with H2: 1, Probes with H2: 1\n"+
			"Collisions with H3: 1, Probes with H3: 1\n", buf.String())
	})

	t.Run("json output", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "keys.txt", []byte("ADAM\n"), 0644))
		cfg := conf.Default()
		cfg.KeysFile = "keys.txt"
		cfg.Algorithms = []string{"xxhash"}
		cfg.Format = conf.FormatJSON
		var buf bytes.Buffer

		// Execute
		_, _, err := run(context.Background(), fs, cfg, &buf)

		// Check
		require.NoError(t, err)
		assert.JSONEq(t, `[{"algorithm":"xxhash","collisions":0,"probes":0}]`, buf.String())
	})

	t.Run("error when keys do not fit", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, conf.DefaultKeysFile, []byte("A\nB\nC\n"), 0644))
		cfg := conf.Default()
		cfg.TableSize = 2
		var buf bytes.Buffer

		// Execute
		_, _, err := run(context.Background(), fs, cfg, &buf)

		// Check
		assert.ErrorIs(t, err, crt.TableFull{})
		assert.Empty(t, buf.String(), "nothing printed")
	})

	t.Run("error when keys file is missing", func(t *testing.T) {
		// Execute
		_, _, err := run(context.Background(), afero.NewMemMapFs(), conf.Default(), &bytes.Buffer{})

		// Check
		assert.Error(t, err)
	})
}
