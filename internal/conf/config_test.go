//go:build unit

package conf

import (
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

const testConfigFile string = "hashsim.yaml"

func TestDefault(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		// Execute
		c := Default()

		// Check
		assert.NoError(t, c.Validate())
		assert.Equal(t, DefaultKeysFile, c.KeysFile)
		assert.Equal(t, DefaultTableSize, c.TableSize)
		assert.Equal(t, []string{"h1", "h2", "h3"}, c.Algorithms)
		assert.Equal(t, FormatText, c.Format)
	})
}

func TestLoad(t *testing.T) {
	t.Run("file values override defaults", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		err := afero.WriteFile(fs, testConfigFile, []byte("table_size: 101\nalgorithms: [h3, murmur3]\nformat: json\n"), 0644)
		require.NoError(t, err)
		c := Default()

		// Execute
		err = Load(fs, testConfigFile, &c)

		// Check
		require.NoError(t, err)
		assert.Equal(t, Config{
			KeysFile:   DefaultKeysFile,
			TableSize:  101,
			Algorithms: []string{"h3", "murmur3"},
			Format:     FormatJSON,
		}, c)
		assert.NoError(t, c.Validate())
	})

	t.Run("error when file does not exist", func(t *testing.T) {
		// Prepare
		c := Default()

		// Execute
		err := Load(afero.NewMemMapFs(), testConfigFile, &c)

		// Check
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("error on malformed yaml", func(t *testing.T) {
		// Prepare
		fs := afero.NewMemMapFs()
		err := afero.WriteFile(fs, testConfigFile, []byte("table_size: [1, 2\n"), 0644)
		require.NoError(t, err)
		c := Default()

		// Execute
		err = Load(fs, testConfigFile, &c)

		// Check
		assert.Error(t, err)
		assert.Contains(t, err.Error(), testConfigFile)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects invalid settings", func(t *testing.T) {
		// Prepare
		broken := []func(c *Config){
			func(c *Config) { c.KeysFile = "" },
			func(c *Config) { c.TableSize = 0 },
			func(c *Config) { c.Algorithms = nil },
			func(c *Config) { c.Algorithms = []string{"h4"} },
			func(c *Config) { c.Format = "xml" },
			func(c *Config) { c.Verbosity = 3 },
		}

		for i, b := range broken {
			c := Default()
			b(&c)

			// Execute and Check
			assert.Errorf(t, c.Validate(), "broken config #%d", i)
		}
	})

	t.Run("table size error is typed", func(t *testing.T) {
		// Prepare
		c := Default()
		c.TableSize = -1

		// Check
		assert.ErrorIs(t, c.Validate(), crt.InvalidTableSize{})
	})
}
