package qrng

import "testing"

func TestNew(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) returned error: %v", err)
	}
	defer s.Close()

	if s.counter != warmupSteps {
		t.Errorf("counter after New = %d, want %d (warmup steps)", s.counter, warmupSteps)
	}
}

func TestNewWithSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []byte
	}{
		{"empty", nil},
		{"short", []byte{0x01}},
		{"exact lane count", []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"longer than lane count", []byte("a reasonably long seed string")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.seed)
			if err != nil {
				t.Fatalf("New(%q) returned error: %v", tt.seed, err)
			}
			defer s.Close()

			if s.bufferPos != 0 {
				t.Errorf("bufferPos = %d, want 0 after warm-up", s.bufferPos)
			}
		})
	}
}

func TestStateCloseIsIdempotent(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Close()
	s.Close() // must not panic

	if s.counter != 0 {
		t.Errorf("counter after Close = %d, want 0", s.counter)
	}
}

func TestStateCloseNilReceiver(t *testing.T) {
	var s *State
	s.Close() // must not panic
}

func TestReseedRequiresNonEmptySeed(t *testing.T) {
	s, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if err := s.Reseed(nil); err != CodeInvalidLength {
		t.Errorf("Reseed(nil) = %v, want %v", err, CodeInvalidLength)
	}
	if err := s.Reseed([]byte{}); err != CodeInvalidLength {
		t.Errorf("Reseed([]byte{}) = %v, want %v", err, CodeInvalidLength)
	}
}

func TestReseedNilReceiver(t *testing.T) {
	var s *State
	if err := s.Reseed([]byte("x")); err != CodeNullContext {
		t.Errorf("Reseed on nil receiver = %v, want %v", err, CodeNullContext)
	}
}

func TestReseedChangesBufferContents(t *testing.T) {
	s, err := New([]byte("initial seed"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	before := s.buffer

	if err := s.Reseed([]byte("different seed material")); err != nil {
		t.Fatalf("Reseed: %v", err)
	}

	if before == s.buffer {
		t.Errorf("buffer unchanged after Reseed with different seed material")
	}
}
