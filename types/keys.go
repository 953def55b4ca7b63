package types

import (
	"github.com/btcsuite/btcutil/base58"
)

const (
	// PublicKeySize is the size of an ed25519 public key.
	PublicKeySize = 32
	// SignatureSize is the size of an ed25519 signature.
	SignatureSize = 64
)

// PublicKey is a raw ed25519 public key. Only ed25519 keys take part in
// approval verification; a seat whose validator registered a key in
// another scheme carries the zero key and can never approve.
type PublicKey [PublicKeySize]byte

func (pk PublicKey) IsZero() bool { return pk == PublicKey{} }

func (pk PublicKey) String() string {
	return "ed25519:" + base58.Encode(pk[:])
}

// Signature is a raw ed25519 signature. The zero value stands for an
// absent approval.
type Signature [SignatureSize]byte

func (sig Signature) IsZero() bool { return sig == Signature{} }

func (sig Signature) String() string {
	return "ed25519:" + base58.Encode(sig[:])
}
