package types

import (
	"errors"
	"fmt"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

// Depth capacity of each proof leg. An outcome sits in a per-shard tree
// of bounded size, shard roots roll up into a small per-block tree, and
// the block tree covers the whole chain history.
const (
	MaxOutcomeProofDepth     = 16
	MaxOutcomeRootProofDepth = 8
	MaxBlockProofDepth       = 64
)

// ErrProofDepth means a proof path is longer than its leg's capacity.
var ErrProofDepth = errors.New("proof path exceeds depth capacity")

// Proof ties a transaction or receipt outcome to a block included in
// the chain the trusted head commits to.
type Proof struct {
	// HeadBlockRoot is the block merkle root committed to by the
	// trusted head.
	HeadBlockRoot CryptoHash

	// OutcomeHash names the outcome being proven.
	OutcomeHash CryptoHash
	// OutcomeProofBlockHash is the hash of the block the outcome
	// executed in, as claimed by the proof.
	OutcomeProofBlockHash CryptoHash

	OutcomeProof     merkle.Path
	OutcomeRootProof merkle.Path

	// BlockHeader is the header of the block the outcome executed in.
	BlockHeader Header
	BlockProof  merkle.Path
}

// ValidateBasic checks the proof paths against the depth capacities.
func (p Proof) ValidateBasic() error {
	if len(p.OutcomeProof) > MaxOutcomeProofDepth {
		return fmt.Errorf("outcome proof depth %d over %d: %w",
			len(p.OutcomeProof), MaxOutcomeProofDepth, ErrProofDepth)
	}
	if len(p.OutcomeRootProof) > MaxOutcomeRootProofDepth {
		return fmt.Errorf("outcome root proof depth %d over %d: %w",
			len(p.OutcomeRootProof), MaxOutcomeRootProofDepth, ErrProofDepth)
	}
	if len(p.BlockProof) > MaxBlockProofDepth {
		return fmt.Errorf("block proof depth %d over %d: %w",
			len(p.BlockProof), MaxBlockProofDepth, ErrProofDepth)
	}
	return nil
}

// TransactionOrReceiptIDSize is the flat encoded length: a kind byte,
// the 32-byte id and the padded account.
const TransactionOrReceiptIDSize = 1 + crypto.HashSize + MaxAccountIDLength

// TransactionOrReceiptID names the outcome a proof is requested for:
// a transaction hash with its sender, or a receipt id with its
// receiver.
type TransactionOrReceiptID struct {
	IsTransaction bool
	ID            CryptoHash
	Account       AccountID
}

// MarshalBinary returns the flat 97-byte encoding: kind byte, id,
// padded account.
func (t TransactionOrReceiptID) MarshalBinary() ([]byte, error) {
	bz := make([]byte, 0, TransactionOrReceiptIDSize)
	if t.IsTransaction {
		bz = append(bz, 1)
	} else {
		bz = append(bz, 0)
	}
	bz = append(bz, t.ID[:]...)
	padded, err := PadAccountID(t.Account, MaxAccountIDLength)
	if err != nil {
		return nil, err
	}
	return append(bz, padded...), nil
}

// UnmarshalBinary is the exact inverse of MarshalBinary.
func (t *TransactionOrReceiptID) UnmarshalBinary(bz []byte) error {
	if len(bz) != TransactionOrReceiptIDSize {
		return ErrEncoding{Field: "transaction or receipt id", Want: TransactionOrReceiptIDSize, Got: len(bz)}
	}
	switch bz[0] {
	case 0:
		t.IsTransaction = false
	case 1:
		t.IsTransaction = true
	default:
		return fmt.Errorf("invalid transaction or receipt kind byte %d", bz[0])
	}
	copy(t.ID[:], bz[1:33])
	account, err := UnpadAccountID(bz[33:])
	if err != nil {
		return err
	}
	t.Account = account
	return nil
}
