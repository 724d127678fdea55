package qrng

import "fmt"

// Example of drawing fixed-width random bytes.
func ExampleState_Bytes() {
	s, err := New([]byte("example seed"))
	if err != nil {
		panic(err)
	}
	defer s.Close()

	buf := make([]byte, 16)
	if err := s.Bytes(buf); err != nil {
		panic(err)
	}
	fmt.Printf("drew %d bytes\n", len(buf))
	// Output: drew 16 bytes
}

// Example of a bounded integer draw, useful for anything that needs "a
// number between X and Y" without worrying about modulo bias.
func ExampleState_Int32Range() {
	s, err := New([]byte("dice seed"))
	if err != nil {
		panic(err)
	}
	defer s.Close()

	roll := s.Int32Range(1, 6)
	fmt.Printf("in range: %v\n", roll >= 1 && roll <= 6)
	// Output: in range: true
}
