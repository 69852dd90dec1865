package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of the given bytes. It backs both value
// fingerprints and envelope payload checksums.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumString computes the xxHash64 digest of the given string without copying.
func SumString(data string) uint64 {
	return xxhash.Sum64String(data)
}
