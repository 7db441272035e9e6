package hash

import (
	"github.com/gostonefire/hashsimulator/crt"
	"github.com/gostonefire/hashsimulator/hashfunc"
	"github.com/pkg/errors"
	"strings"
)

// Names under which the hash algorithms are registered
const (
	H1      = "h1"
	H2      = "h2"
	H3      = "h3"
	CRC32   = "crc32"
	Murmur3 = "murmur3"
	Metro   = "metro"
	Highway = "highway"
	Blake3  = "blake3"
	XXHash  = "xxhash"
	FNV1a   = "fnv1a"
)

var names = []string{H1, H2, H3, CRC32, Murmur3, Metro, Highway, Blake3, XXHash, FNV1a}

// Names - Returns the names of all registered hash algorithms, candidates first and baselines after
func Names() []string {
	n := make([]string, len(names))
	_ = copy(n, names)
	return n
}

// New - Returns the hash algorithm registered under name (case-insensitive).
// If name is unknown an error of type crt.UnknownAlgorithm is returned.
func New(name string) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case H1:
		hashAlgorithm = NewAdditiveHashAlgorithm()
	case H2:
		hashAlgorithm = NewPositionalHashAlgorithm()
	case H3:
		hashAlgorithm = NewPolynomialHashAlgorithm()
	case CRC32:
		hashAlgorithm = NewCRC32HashAlgorithm()
	case Murmur3:
		hashAlgorithm = NewMurmur3HashAlgorithm()
	case Metro:
		hashAlgorithm = NewMetroHashAlgorithm()
	case Highway:
		hashAlgorithm = NewHighwayHashAlgorithm()
	case Blake3:
		hashAlgorithm = NewBlake3HashAlgorithm()
	case XXHash:
		hashAlgorithm = NewXXHashAlgorithm()
	case FNV1a:
		hashAlgorithm = NewFNV1aHashAlgorithm()
	default:
		err = errors.Wrapf(crt.UnknownAlgorithm{}, "no hash algorithm named %q", name)
	}

	return
}

// NewList - Returns the hash algorithms registered under names, in the same order
func NewList(algorithmNames []string) (hashAlgorithms []hashfunc.HashAlgorithm, err error) {
	hashAlgorithms = make([]hashfunc.HashAlgorithm, 0, len(algorithmNames))
	for _, name := range algorithmNames {
		var ha hashfunc.HashAlgorithm
		ha, err = New(name)
		if err != nil {
			return nil, err
		}
		hashAlgorithms = append(hashAlgorithms, ha)
	}

	return
}

// Defaults - Returns the three candidate hash algorithms H1, H2 and H3 in that order
func Defaults() []hashfunc.HashAlgorithm {
	return []hashfunc.HashAlgorithm{
		NewAdditiveHashAlgorithm(),
		NewPositionalHashAlgorithm(),
		NewPolynomialHashAlgorithm(),
	}
}
