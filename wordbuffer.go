package qrng

import "encoding/binary"

// putUint64LE stores v into dst as 8 little-endian bytes. The refill buffer
// is always decoded as little-endian words regardless of host byte order,
// per the design's endianness note: the byte view and the word view of the
// buffer coincide. Uint64 reads 8 of these bytes as a little-endian word and
// then post-mixes it, so its results are not the raw buffer words.
func putUint64LE(dst []byte, v uint64) {
	binary.LittleEndian.PutUint64(dst, v)
}
