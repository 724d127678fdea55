package qrng

// measureState is the sub-step used by step (lane mixing and buffer fill),
// by seedApply, and by the Measure bulk transform. It refreshes runtimeEntropy,
// folds the given quantum-state value and the pool into pool/poolMixer,
// and returns a mixed 64-bit result derived from the collapsed state and
// last.
func (s *State) measureState(quantumState float64, last uint64) uint64 {
	s.runtimeEntropy = runtimeEntropy(s)

	collapsed := quantumNoise(quantumState + float64(s.runtimeEntropy)/uint64Max)

	s.pool[s.poolIndex] = quantumNoise(
		s.pool[s.poolIndex] + collapsed + float64(s.runtimeEntropy)/uint64Max,
	)
	s.poolIndex = (s.poolIndex + 1) & 0x0F

	s.poolMixer = hadamardMix(
		s.poolMixer ^ uint64(s.pool[s.poolIndex]*uint64Max) ^ s.runtimeEntropy,
	)

	r := uint64(collapsed * uint64Max)
	r = hadamardMix(r ^ (last * electronG) ^ s.runtimeEntropy)

	r ^= pauliX * (s.poolMixer >> 29)
	r = heisenbergFold(r)
	r ^= pauliZ * (r >> 27)

	return r
}

// step refills the 128-byte buffer from the current lane arrays and
// advances the counter by 1.
func (s *State) step() {
	s.counter++
	mixer := splitMix64(s.counter * goldenRatio)

	s.runtimeEntropy = runtimeEntropy(s)

	for round := 0; round < mixingRounds; round++ {
		mixer = hadamardMix(mixer ^ s.poolMixer ^ s.runtimeEntropy)

		for i := 0; i < numQubits; i++ {
			s.phase[i] = hadamardGate(s.counter + mixer + uint64(i) + uint64(round) + s.runtimeEntropy)

			s.quantumState[i] = quantumNoise(
				float64(s.phase[i])/uint64Max + s.pool[i&0x0F] + float64(s.runtimeEntropy)/uint64Max,
			)

			measured := s.measureState(s.quantumState[i], s.lastMeasurement[i])
			s.entangle[i] = phaseGate(measured, s.counter^mixer^s.runtimeEntropy)
			s.lastMeasurement[i] = measured

			if i > 0 {
				s.entangle[i] ^= hadamardMix(s.entangle[i-1] ^ mixer ^ s.runtimeEntropy)
				s.quantumState[i] = quantumNoise(
					s.quantumState[i] + s.quantumState[i-1] + float64(s.runtimeEntropy)/uint64Max,
				)
			}

			mixer = splitMix64(mixer ^ measured ^ s.poolMixer ^ s.runtimeEntropy)
		}
	}

	prev := mixer
	for i := 0; i < bufferWords; i++ {
		current := s.measureState(s.quantumState[i%numQubits], s.entangle[i%numQubits])
		current = hadamardMix(current ^ prev ^ s.poolMixer ^ s.runtimeEntropy)

		current ^= pauliX * (current >> 29)
		current = heisenbergFold(current)

		putUint64LE(s.buffer[i*8:i*8+8], current)
		prev = current
	}

	s.bufferPos = 0
	traceLanes("step.phase", s.phase)
}

// seedApply is the shared frame behind New and Reseed. isInit distinguishes
// the two schedules: init touches all numQubits lanes (wrapping short seeds),
// reseed touches only min(len(seed), numQubits) lanes and leaves the rest
// untouched.
func (s *State) seedApply(seed []byte, isInit bool) {
	if isInit {
		// New has already taken a runtimeEntropy snapshot just before
		// initializing the pool; this schedule starts from it instead of
		// taking another. Each measureState call below still refreshes it.
		s.seedApplyInit(seed)
		return
	}
	// Reseed takes its own fresh snapshot, since it runs long after init.
	s.runtimeEntropy = runtimeEntropy(s)
	s.seedApplyReseed(seed)
}

func (s *State) seedApplyInit(seed []byte) {
	mixer := uint64(goldenRatio) ^ s.systemEntropy

	for i := 0; i < numQubits; i++ {
		sb := seedByteOrZero(seed, i)
		mixer = splitMix64(mixer ^ sb ^ s.runtimeEntropy)

		s.phase[i] = hadamardGate(seedByteOrIndex(seed, i) ^ mixer ^ s.uniqueID ^ s.runtimeEntropy)

		s.quantumState[i] = quantumNoise(
			float64(s.phase[i]^s.systemEntropy)/uint64Max + s.pool[i%poolSize] + float64(s.runtimeEntropy)/uint64Max,
		)

		s.lastMeasurement[i] = s.measureState(s.quantumState[i], seedByteReversedOrIndex(seed, i))

		s.entangle[i] = phaseGate(s.lastMeasurement[i], seedByteOrIndex(seed, i)^mixer^s.runtimeEntropy)
	}
}

func (s *State) seedApplyReseed(seed []byte) {
	mixer := uint64(goldenRatio) ^ s.runtimeEntropy

	n := len(seed)
	if n > numQubits {
		n = numQubits
	}

	for i := 0; i < n; i++ {
		sb := uint64(seed[i])
		mixer = splitMix64(mixer ^ sb ^ s.runtimeEntropy)

		s.phase[i] = hadamardGate(s.phase[i] ^ sb ^ mixer ^ s.runtimeEntropy)

		s.quantumState[i] = quantumNoise(
			float64(s.phase[i])/uint64Max + float64(s.runtimeEntropy)/uint64Max,
		)

		s.lastMeasurement[i] = s.measureState(s.quantumState[i], uint64(seed[len(seed)-1-i])^mixer)

		s.entangle[i] = phaseGate(s.lastMeasurement[i], sb^mixer^s.runtimeEntropy)
	}
}

// seedByteOrZero returns seed[i % len(seed)] as a uint64, or 0 if seed is empty.
func seedByteOrZero(seed []byte, i int) uint64 {
	if len(seed) == 0 {
		return 0
	}
	return uint64(seed[i%len(seed)])
}

// seedByteOrIndex returns seed[i % len(seed)] as a uint64, or i if seed is empty.
func seedByteOrIndex(seed []byte, i int) uint64 {
	if len(seed) == 0 {
		return uint64(i)
	}
	return uint64(seed[i%len(seed)])
}

// seedByteReversedOrIndex returns seed[(len(seed)-1-i) mod len(seed)] as a
// uint64, with the index taken as a non-negative remainder, or i if seed is
// empty.
func seedByteReversedOrIndex(seed []byte, i int) uint64 {
	n := len(seed)
	if n == 0 {
		return uint64(i)
	}
	j := (n - 1 - i) % n
	if j < 0 {
		j += n
	}
	return uint64(seed[j])
}
