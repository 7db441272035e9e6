package hash

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
	"github.com/minio/highwayhash"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/shivakar/metrohash"
	"github.com/twmb/murmur3"
	"github.com/zeebo/blake3"
	"hash/crc32"
)

// highwayKey - HighwayHash requires a 32 byte key, a fixed all zero key keeps the baseline deterministic
var highwayKey = make([]byte, 32)

// DigestHashAlgorithm - A baseline bucket selection algorithm that creates a 64-bit digest over the key bytes
// and then applies slot = digest % tableSize. It is used to compare the candidate functions against hash functions
// with a well known distribution.
type DigestHashAlgorithm struct {
	name string
	sum  func(b []byte) uint64
}

// Name - Returns the registered name of the algorithm
func (D *DigestHashAlgorithm) Name() string {
	return D.name
}

// HashFunc - Given key it generates an index (slot) between 0 and table size - 1
func (D *DigestHashAlgorithm) HashFunc(key string, tableSize int64) int64 {
	return int64(D.sum([]byte(key)) % uint64(tableSize))
}

// NewCRC32HashAlgorithm - Returns a baseline using crc32.ChecksumIEEE
func NewCRC32HashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{
		name: CRC32,
		sum:  func(b []byte) uint64 { return uint64(crc32.ChecksumIEEE(b)) },
	}
}

// NewMurmur3HashAlgorithm - Returns a baseline using 64-bit Murmur3
func NewMurmur3HashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{name: Murmur3, sum: murmur3.Sum64}
}

// NewMetroHashAlgorithm - Returns a baseline using 64-bit MetroHash
func NewMetroHashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{
		name: Metro,
		sum: func(b []byte) uint64 {
			h := metrohash.NewMetroHash64()
			_, _ = h.Write(b)
			return h.Sum64()
		},
	}
}

// NewHighwayHashAlgorithm - Returns a baseline using 64-bit HighwayHash with a fixed key
func NewHighwayHashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{
		name: Highway,
		sum:  func(b []byte) uint64 { return highwayhash.Sum64(b, highwayKey) },
	}
}

// NewBlake3HashAlgorithm - Returns a baseline using the first 8 bytes of a BLAKE3 sum
func NewBlake3HashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{
		name: Blake3,
		sum: func(b []byte) uint64 {
			s := blake3.Sum256(b)
			return binary.LittleEndian.Uint64(s[:8])
		},
	}
}

// NewXXHashAlgorithm - Returns a baseline using xxHash64
func NewXXHashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{name: XXHash, sum: xxhash.Sum64}
}

// NewFNV1aHashAlgorithm - Returns a baseline using 64-bit FNV-1a
func NewFNV1aHashAlgorithm() *DigestHashAlgorithm {
	return &DigestHashAlgorithm{name: FNV1a, sum: fnv1a.HashBytes64}
}
