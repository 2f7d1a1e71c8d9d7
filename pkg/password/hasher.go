// Package password provides one-way password hashing with Argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Hasher hashes and verifies passwords using Argon2id. Every Hash call
// draws a fresh random salt, so equal inputs produce distinct outputs.
type Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewHasher returns a Hasher with the RFC 9106 low-memory parameters.
func NewHasher() *Hasher {
	return &Hasher{
		time:    1,
		memory:  64 * 1024, // KiB
		threads: 4,
		saltLen: 16,
		keyLen:  32,
	}
}

// Hash derives an Argon2id key from password and encodes it in the
// standard PHC string format.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches the encoded hash. Malformed
// input is a verification failure, never an error.
func (h *Hasher) Verify(password, encoded string) bool {
	memory, time, threads, salt, key, err := decode(encoded)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(derived, key) == 1
}

// decode parses a PHC-encoded argon2id string into its parameters.
func decode(encoded string) (memory, time uint32, threads uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed hash")
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed version: %w", err)
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed parameters: %w", err)
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed salt: %w", err)
	}
	if key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return 0, 0, 0, nil, nil, fmt.Errorf("malformed key: %w", err)
	}
	if len(key) == 0 {
		return 0, 0, 0, nil, nil, fmt.Errorf("empty key")
	}
	return memory, time, threads, salt, key, nil
}
