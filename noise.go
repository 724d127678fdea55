package qrng

import "math"

const uint64Max = float64(^uint64(0))

// quantumNoise maps a scalar to a normalized value in [0,1) through a fixed
// sequence of transcendental and rounding operations. The sequence itself is
// the point: do not algebraically simplify it, the bit pattern it produces
// depends on evaluating each step in the order written.
func quantumNoise(x float64) float64 {
	n := math.Abs(math.Sin(x*math.Pi) * math.Cos(x*math.E))
	m := math.Cos(n * float64(fineStructure))
	p := math.Sin(n * float64(planck))
	n = (m*m + p*p) / 2
	n = math.Sqrt(n * (1 - n))
	n = n - math.Floor(n)
	return n
}

// hadamardGate runs x through quantumNoise, folds the result into x and
// applies hadamardMix, then XORs in a second quantumNoise reading and applies
// hadamardMix again.
func hadamardGate(x uint64) uint64 {
	state := quantumNoise(float64(x) / uint64Max)

	superposition := uint64(state*uint64Max) ^ x
	superposition = hadamardMix(superposition)

	phase := quantumNoise(state + 0.5)
	rotation := uint64(phase * uint64Max)

	superposition ^= rotation
	superposition = hadamardMix(superposition)

	return superposition
}

// phaseGate folds angle through quantumNoise and hadamardMix, then
// entangles the result with x via a Pauli/Heisenberg/Schrodinger cascade.
func phaseGate(x, angle uint64) uint64 {
	phase := quantumNoise(float64(angle) / uint64Max)

	mixed := uint64(phase * uint64Max)
	mixed = hadamardMix(mixed * rydberg)

	mixed ^= pauliX * (mixed >> 17)
	mixed *= heisenberg
	mixed ^= pauliY * (mixed >> 23)
	mixed *= schrodinger

	return x ^ mixed
}
