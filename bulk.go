package qrng

// fillBytes drains the refill buffer into out, stepping whenever it runs
// dry. It performs no argument validation; callers (Bytes, Uint64) are
// responsible for that.
func (s *State) fillBytes(out []byte) {
	remaining := len(out)
	pos := 0
	for remaining > 0 {
		if s.bufferPos >= bufferSize {
			s.step()
		}
		n := bufferSize - s.bufferPos
		if n > remaining {
			n = remaining
		}
		copy(out[pos:pos+n], s.buffer[s.bufferPos:s.bufferPos+n])
		s.bufferPos += n
		pos += n
		remaining -= n
	}
}

// Bytes fills out with len(out) pseudo-random bytes, stepping the mixing
// engine as needed. It returns CodeInvalidLength if out is empty and
// CodeNullContext if the receiver is nil.
func (s *State) Bytes(out []byte) error {
	if s == nil {
		return CodeNullContext
	}
	if len(out) == 0 {
		return CodeInvalidLength
	}
	s.fillBytes(out)
	traceBytes("Bytes", out)
	return nil
}

// Entangle mixes a and b together through the Hadamard/phase gates so that
// the two buffers end up correlated rather than independently overwritten.
// Only the first min(len(a), len(b)) bytes of each buffer are processed and
// modified in place; bytes beyond that are left unchanged, and that length
// must be non-zero. This is a decorative transform driven by the same
// mixing machinery as the rest of the package — it is not a cryptographic
// operation.
func (s *State) Entangle(a, b []byte) error {
	if s == nil {
		return CodeNullContext
	}
	if a == nil || b == nil {
		return CodeNullBuffer
	}
	n := len(a)
	if n > len(b) {
		n = len(b)
	}
	if n == 0 {
		return CodeInvalidLength
	}

	s.runtimeEntropy = runtimeEntropy(s)
	mixer := splitMix64(s.counter * goldenRatio)

	for i := 0; i < n; i++ {
		s1 := hadamardGate(uint64(a[i]) ^ mixer ^ s.runtimeEntropy)
		s2 := hadamardGate(uint64(b[i]) ^ mixer ^ s.runtimeEntropy)
		phase := phaseGate(s1^s2, s.counter^mixer^s.runtimeEntropy)

		a[i] = byte(s1 ^ phase)
		b[i] = byte(s2 ^ phase)

		mixer = splitMix64(mixer ^ s1 ^ s2 ^ s.runtimeEntropy)
	}

	for i := 0; i < numQubits; i++ {
		s.quantumState[i] = quantumNoise(s.quantumState[i] + float64(s.runtimeEntropy)/uint64Max)
	}

	return nil
}

// Measure collapses each byte of state through the measurement sub-step,
// overwriting it in place with its classical value. This is a decorative
// transform, not a cryptographic operation.
func (s *State) Measure(state []byte) error {
	if s == nil {
		return CodeNullContext
	}
	if state == nil {
		return CodeNullBuffer
	}
	if len(state) == 0 {
		return CodeInvalidLength
	}

	s.runtimeEntropy = runtimeEntropy(s)
	mixer := splitMix64(s.counter * goldenRatio)

	for i, b := range state {
		q := quantumNoise(float64(b)/255 + float64(s.runtimeEntropy)/uint64Max)
		m := s.measureState(q, mixer)
		state[i] = byte(m & 0xFF)
		mixer = splitMix64(mixer ^ m ^ s.runtimeEntropy)
	}

	for i := 0; i < numQubits; i++ {
		s.lastMeasurement[i] = s.measureState(s.quantumState[i], s.lastMeasurement[i])
	}

	return nil
}
