// Package hash provides the key hashing used for k-mer identity: the
// xxHash64 of a packed word array in its little-endian byte form.
// Downstream index shards partition records on this value, so it must be
// stable across word types that encode the same value.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 of the given string, for callers
// keying on decoded sequence text such as reference names.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
