package crypto

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// HashSize is the size in bytes of a Hash.
const HashSize = sha256.Size

// Hash is a SHA-256 digest in the chain's canonical form. The zero value
// marks an absent hash and is never produced by hashing.
//
// The text form is base58 (bitcoin alphabet), matching how hashes appear
// in RPC responses and explorers.
type Hash [HashSize]byte

// Sha256 returns the SHA-256 digest of the concatenation of parts.
func Sha256(parts ...[]byte) Hash {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// HashFromBytes converts a raw 32-byte slice into a Hash.
func HashFromBytes(bz []byte) (Hash, error) {
	var h Hash
	if len(bz) != HashSize {
		return h, fmt.Errorf("invalid hash length: want %d, got %d", HashSize, len(bz))
	}
	copy(h[:], bz)
	return h, nil
}

// ParseHash decodes the base58 text form of a Hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	bz := base58.Decode(s)
	if len(bz) != HashSize {
		return h, fmt.Errorf("invalid base58 hash %q: decoded to %d bytes", s, len(bz))
	}
	copy(h[:], bz)
	return h, nil
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

// IsZero reports whether the hash is the zero value.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Equal reports whether the hash equals the raw bytes in bz.
func (h Hash) Equal(bz []byte) bool {
	return bytes.Equal(h[:], bz)
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
