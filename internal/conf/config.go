package conf

import (
	"fmt"
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/internal/hash"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config - Settings for a simulation, read from a YAML file and overridden by command line flags
//   - KeysFile is the newline-delimited file of keys
//   - TableSize is the number of slots in the table
//   - Algorithms are the names of the hash algorithms to run
//   - Format is the output format, text or json
//   - MetricsFile is an optional Prometheus textfile to write the results to
//   - Verbosity is the log verbosity 0 -> MaxVerbosity
type Config struct {
	KeysFile    string   `yaml:"keys_file"`
	TableSize   int64    `yaml:"table_size"`
	Algorithms  []string `yaml:"algorithms"`
	Format      string   `yaml:"format"`
	MetricsFile string   `yaml:"metrics_file"`
	Verbosity   int      `yaml:"verbosity"`
}

// Default - Returns a Config running H1, H2 and H3 on the default keys file and table size
func Default() Config {
	return Config{
		KeysFile:   DefaultKeysFile,
		TableSize:  DefaultTableSize,
		Algorithms: []string{hash.H1, hash.H2, hash.H3},
		Format:     DefaultFormat,
	}
}

// Load - Reads a YAML config file on top of config, fields missing in the file keep their current values
func Load(fs afero.Fs, name string, config *Config) (err error) {
	payload, err := afero.ReadFile(fs, name)
	if err != nil {
		err = errors.Wrapf(err, "error while reading config file %s", name)
		return
	}

	err = yaml.Unmarshal(payload, config)
	if err != nil {
		err = errors.Wrapf(err, "error while parsing config file %s", name)
	}

	return
}

// Validate - Checks that the config can be used for a simulation
func (C Config) Validate() (err error) {
	if C.KeysFile == "" {
		return fmt.Errorf("keys file can not be empty")
	}
	if C.TableSize <= 0 {
		return crt.InvalidTableSize{}
	}
	if len(C.Algorithms) == 0 {
		return fmt.Errorf("at least one hash algorithm must be given, available: %v", hash.Names())
	}
	if _, err = hash.NewList(C.Algorithms); err != nil {
		return
	}
	if C.Format != FormatText && C.Format != FormatJSON {
		return fmt.Errorf("unsupported format %q, should be %s or %s", C.Format, FormatText, FormatJSON)
	}
	if C.Verbosity < 0 || C.Verbosity > MaxVerbosity {
		return fmt.Errorf("verbosity must be between 0 and %d", MaxVerbosity)
	}

	return
}
