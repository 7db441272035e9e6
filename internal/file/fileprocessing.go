package file

import (
	"bufio"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"io"
	"strings"
)

// ReadKeys - Reads a newline-delimited keys file, one key per line.
//   - fs is the file system to read from, afero.NewOsFs() for real files
//   - name is the name of the keys file
//
// It returns:
//   - keys in the order they appear in the file, empty lines are kept as empty keys
//   - err is a standard error, if something went wrong
func ReadKeys(fs afero.Fs, name string) (keys []string, err error) {
	f, err := fs.Open(name)
	if err != nil {
		err = errors.Wrapf(err, "error while opening keys file %s", name)
		return
	}
	defer func(f afero.File) { _ = f.Close() }(f)

	keys, err = ParseKeys(f)
	if err != nil {
		err = errors.Wrapf(err, "error while reading keys file %s", name)
	}

	return
}

// ParseKeys - Splits r into keys, one per line. A trailing carriage return is removed from each line so files
// written on Windows give the same keys.
func ParseKeys(r io.Reader) (keys []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		keys = append(keys, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	err = scanner.Err()

	return
}
