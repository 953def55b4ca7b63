package types

import (
	"github.com/dndll/near-zk-light-client/crypto"
)

// CryptoHash is the chain's 32-byte SHA-256 digest. Hashes render as
// base58 text, the form RPC responses and explorers use.
type CryptoHash = crypto.Hash

// ParseCryptoHash decodes the base58 text form of a hash.
func ParseCryptoHash(s string) (CryptoHash, error) {
	return crypto.ParseHash(s)
}
