package qrng

// splitMix64 is a SplitMix64-style integer avalanche. Pure, total, branch-free.
func splitMix64(x uint64) uint64 {
	x ^= x >> 30
	x *= splitMixC1
	x ^= x >> 27
	x *= splitMixC2
	x ^= x >> 31
	x *= heisenberg
	x ^= x >> 29
	return x
}

// hadamardMix chains splitMix64 with a fixed cascade of multiply/xor steps
// keyed by the Pauli/Planck/fine-structure constants. Pure, total, branch-free.
func hadamardMix(x uint64) uint64 {
	x = splitMix64(x)
	x ^= pauliX * (x >> 12)
	x *= fineStructure
	x ^= pauliY * (x >> 25)
	x *= planck
	x ^= pauliZ * (x >> 27)
	x *= schrodinger
	x ^= x >> 13
	return x
}

// heisenbergFold applies the HEISENBERG -> PAULI_Y -> SCHRODINGER middle
// section shared by measureState, step's buffer fill, and Uint64's post-mix.
// Callers apply their own leading PAULI_X fold and optional trailing PAULI_Z
// fold around this, since the shift amounts and operands differ per call site.
func heisenbergFold(x uint64) uint64 {
	x *= heisenberg
	x ^= pauliY * (x >> 31)
	x *= schrodinger
	return x
}
