// Package internal provides cryptographic primitives shared by the
// quantum-rng example applications. It wraps golang.org/x/crypto so the
// examples never reach into qrng's unexported mixing internals to get a
// stable hash or key-stretch.
package internal

import "golang.org/x/crypto/blake2b"

// Blake2b256 computes a 256-bit Blake2b hash (32 bytes).
func Blake2b256(data []byte) [32]byte {
	h := blake2b.Sum256(data)
	return h
}

// Expander is a deterministic byte stream derived by repeatedly
// rehashing a 64-byte Blake2b-512 state. Used to stretch a short seed into
// as many bytes as a caller needs, independent of qrng's own mixing state.
type Expander struct {
	data [64]byte
	pos  int
}

// NewExpander seeds an Expander by hashing seed with Blake2b-512.
func NewExpander(seed []byte) *Expander {
	e := &Expander{pos: 64} // force generation on first read
	h := blake2b.Sum512(seed)
	copy(e.data[:], h[:])
	return e
}

// Read fills out with expander output, satisfying io.Reader.
func (e *Expander) Read(out []byte) (int, error) {
	for i := range out {
		if e.pos >= 64 {
			h := blake2b.Sum512(e.data[:])
			e.data = h
			e.pos = 0
		}
		out[i] = e.data[e.pos]
		e.pos++
	}
	return len(out), nil
}
