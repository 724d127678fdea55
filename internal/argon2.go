package internal

import (
	"golang.org/x/crypto/argon2"
)

// KDFConfig specifies Argon2id parameters for password-hardened key
// derivation. Argon2id (not RandomX's data-dependent Argon2d) is used here
// since this path derives a key from attacker-guessable input, where
// Argon2id's side-channel resistance matters and RandomX's throughput
// requirements do not apply.
type KDFConfig struct {
	Time      uint32 // number of iterations
	Memory    uint32 // memory in KB
	Threads   uint8  // parallelism factor
	OutputLen uint32 // output length in bytes
	Salt      []byte
}

// DefaultKDFConfig returns conservative interactive-use Argon2id parameters.
func DefaultKDFConfig(salt []byte) KDFConfig {
	return KDFConfig{
		Time:      3,
		Memory:    64 * 1024, // 64 MB
		Threads:   1,
		OutputLen: 32,
		Salt:      salt,
	}
}

// DeriveKey stretches password into config.OutputLen bytes via Argon2id.
func DeriveKey(password []byte, config KDFConfig) []byte {
	return argon2.IDKey(
		password,
		config.Salt,
		config.Time,
		config.Memory,
		config.Threads,
		config.OutputLen,
	)
}
