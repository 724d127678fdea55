package qrng

import (
	"encoding/binary"
	"math"
)

// Uint64 draws a pseudo-random 64-bit unsigned integer. A nil receiver
// returns 0.
func (s *State) Uint64() uint64 {
	if s == nil {
		return 0
	}

	var buf [8]byte
	s.fillBytes(buf[:])
	r := binary.LittleEndian.Uint64(buf[:])

	s.runtimeEntropy = runtimeEntropy(s)
	r = splitMix64(r ^ s.runtimeEntropy)

	r ^= pauliX * (r >> 27)
	r = heisenbergFold(r)
	r ^= pauliZ * (r >> 29)

	return r
}

// Float64 draws a pseudo-random double in [0,1). A nil receiver returns 0.
func (s *State) Float64() float64 {
	if s == nil {
		return 0
	}
	return float64(s.Uint64()>>11) * (1.0 / (1 << 53))
}

// Int32Range draws a pseudo-random int32 in [min,max], using rejection
// sampling to avoid modulo bias. min must be <= max. On bad input (nil
// receiver or min > max) it returns max rather than an error, by design —
// range draws are total.
func (s *State) Int32Range(min, max int32) int32 {
	if s == nil || min > max {
		return max
	}

	// Compute the unsigned width explicitly rather than relying on the
	// implementation-defined signed-to-unsigned cast of (max - min + 1).
	width := uint32(max) - uint32(min) + 1
	if width == 0 {
		// Only possible when min = math.MinInt32, max = math.MaxInt32.
		return max
	}

	threshold := -width % width
	var r uint32
	for {
		r = uint32(s.Uint64())
		if r >= threshold {
			break
		}
	}

	return min + int32(r%width)
}

// Uint64Range draws a pseudo-random uint64 in [min,max], using rejection
// sampling to avoid modulo bias. min must be <= max. On bad input (nil
// receiver or min > max) it returns max, by design.
func (s *State) Uint64Range(min, max uint64) uint64 {
	if s == nil || min > max {
		return max
	}
	if min == max {
		return min
	}

	width := max - min + 1
	if width == 0 {
		// Only possible when min = 0, max = math.MaxUint64: this case
		// returns max without drawing.
		return max
	}

	threshold := -width % width
	var r uint64
	for {
		r = s.Uint64()
		if r >= threshold {
			break
		}
	}

	return min + r%width
}

// EntropyEstimate returns a heuristic health metric derived from the
// entropy pool and the low byte of runtimeEntropy. It is not a true Shannon
// entropy measurement — a freshly-initialized pool slot of 0 drives this
// value far outside [0,1]; that is reproduced as-is rather than clamped.
// A nil receiver returns 0.
func (s *State) EntropyEstimate() float64 {
	if s == nil {
		return 0
	}

	var total float64
	for i := 0; i < poolSize; i++ {
		total += -math.Log2(s.pool[i] + 1e-10)
	}

	s.runtimeEntropy = runtimeEntropy(s)
	total += -math.Log2(float64(s.runtimeEntropy&0xFF)/256 + 1e-10)

	return total / (poolSize + 1)
}
