// Package qrng implements a deterministic-looking, seedable pseudo-random
// bit generator built on a small mixing-function core styled with
// "quantum-inspired" vocabulary. In engineering terms it is a
// non-cryptographic PRBG with an 8-lane state and a 128-byte refill buffer.
//
// The generator is not a CSPRNG and must not be treated as one: it mixes
// non-deterministic host inputs (wall-clock time, process id, a stack
// address) by design, so output is not reproducible across hosts, or even
// across two calls on the same host, for a given seed. It exists for
// simulation, testing, and other applications where "looks random, varies
// run to run" is the requirement, not cryptographic unpredictability.
//
// A *State is not safe for concurrent use: every draw requires exclusive
// mutable access, enforced by the pointer receiver on every method. Create
// one *State per goroutine that needs one.
package qrng

import (
	"os"
	"time"
)

// State is a single generator instance. Create one with New, release it
// with Close when done.
type State struct {
	phase           [numQubits]uint64
	entangle        [numQubits]uint64
	quantumState    [numQubits]float64
	lastMeasurement [numQubits]uint64

	buffer    [bufferSize]byte
	bufferPos int

	counter uint64

	pool      [poolSize]float64
	poolIndex uint8
	poolMixer uint64

	initTime time.Time
	pid      int

	systemEntropy  uint64
	uniqueID       uint64
	runtimeEntropy uint64
}

// New creates and initializes a new generator. seed may be nil or empty, in
// which case the state is seeded purely from host entropy. A non-empty seed
// perturbs the initial lanes but does not make output reproducible across
// hosts or runs — see the package doc.
func New(seed []byte) (*State, error) {
	s := &State{}

	s.initTime = time.Now()
	s.pid = os.Getpid()
	s.systemEntropy = systemEntropy()
	s.uniqueID = splitMix64(s.systemEntropy)
	s.poolMixer = heisenberg ^ s.uniqueID
	s.runtimeEntropy = runtimeEntropy(s)

	for i := 0; i < poolSize; i++ {
		s.pool[i] = quantumNoise(
			float64(s.systemEntropy>>uint(i))/uint64Max +
				float64(s.initTime.Nanosecond()/1000>>uint(i%20))/uint64Max +
				float64(int64(s.pid)<<uint(i%16))/uint64Max +
				float64(s.runtimeEntropy)/uint64Max,
		)
	}

	s.seedApply(seed, true)

	for i := 0; i < warmupSteps; i++ {
		s.step()
	}

	traceLog("New: initialized, counter=%d", s.counter)
	return s, nil
}

// Close scrubs the state's fields to zero before it is released. After
// Close, the State must not be used.
func (s *State) Close() {
	if s == nil {
		return
	}
	*s = State{}
}

// Reseed mixes new seed material into an existing state. seed must be
// non-empty; it is a contract violation to call Reseed with an empty seed.
// Like New, this does not make subsequent output reproducible: the warm-up
// that follows still folds in fresh runtime entropy.
func (s *State) Reseed(seed []byte) error {
	if s == nil {
		return CodeNullContext
	}
	if len(seed) == 0 {
		return CodeInvalidLength
	}

	s.seedApply(seed, false)

	for i := 0; i < warmupSteps; i++ {
		s.step()
	}

	traceLog("Reseed: complete, counter=%d", s.counter)
	return nil
}
