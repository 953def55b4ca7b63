package types

import (
	"encoding/binary"
	"fmt"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

// ApprovalMessageSize is the exact length of an endorsement signing
// message: the borsh enum tag, a block hash and a little-endian height.
const ApprovalMessageSize = 1 + crypto.HashSize + 8

// approvalEndorsementTag is the borsh enum tag of an endorsement
// approval. Skips are never signed into light client blocks.
const approvalEndorsementTag byte = 0

// NewApprovalMessage lays out the exact bytes a producer signs to
// endorse the block at the given height whose successor hashes to
// nextBlockHash. The signed height is two above the endorsed block,
// because the endorsement rides in the block after next.
func NewApprovalMessage(nextBlockHash CryptoHash, height uint64) []byte {
	msg := make([]byte, 0, ApprovalMessageSize)
	msg = append(msg, approvalEndorsementTag)
	msg = append(msg, nextBlockHash[:]...)
	return binary.LittleEndian.AppendUint64(msg, height+2)
}

// BlockApprovals holds one approval slot per producer seat, in seat
// order. Inactive slots carry a zero signature. An approval that was
// absent, or made with a signature scheme other than ed25519, is
// inactive.
type BlockApprovals struct {
	IsActive   []bool
	Signatures []Signature
}

// NewBlockApprovals returns n inactive approval slots.
func NewBlockApprovals(n int) BlockApprovals {
	return BlockApprovals{
		IsActive:   make([]bool, n),
		Signatures: make([]Signature, n),
	}
}

func (a BlockApprovals) Len() int { return len(a.IsActive) }

// ValidateBasic performs basic validation: the parallel slices must
// line up.
func (a BlockApprovals) ValidateBasic() error {
	if len(a.IsActive) != len(a.Signatures) {
		return fmt.Errorf("approvals out of shape: %d active flags, %d signatures",
			len(a.IsActive), len(a.Signatures))
	}
	return nil
}

// Block is a light client block: the candidate header together with the
// approval evidence collected two heights later and, on epoch
// boundaries, the next epoch's producer set.
type Block struct {
	Header             Header
	NextBlockInnerHash CryptoHash

	// NextBPS is the next epoch's producer set, padded to seat
	// capacity. Nil when the block carries no handoff.
	NextBPS []ValidatorStake

	ApprovalsAfterNext BlockApprovals

	// NextBPSHash is the commitment hash of the carried producer set as
	// it appeared on the wire. Zero when NextBPS is nil or when the
	// block was assembled locally; verification recomputes it from
	// NextBPS in that case.
	NextBPSHash CryptoHash
}

// ApprovalMessage reconstructs the endorsement message for this block:
// the hash of the next block is the combine of the next block's inner
// hash with this block's own hash.
func (b Block) ApprovalMessage() []byte {
	nextBlockHash := merkle.CombineHash(b.NextBlockInnerHash, b.Header.Hash())
	return NewApprovalMessage(nextBlockHash, b.Header.Inner.Height)
}

// EpochBlockProducers is the producer set taking over at an epoch
// boundary, keyed by the epoch it will produce in.
type EpochBlockProducers struct {
	EpochID CryptoHash
	BPS     []ValidatorStake
}

// Synced is a completed trusted transition: the new head and, when the
// verified block carried one, the producer set for the epoch after
// next.
type Synced struct {
	NewHead Header
	// NextBPS is nil when the verified block carried no handoff.
	NextBPS *EpochBlockProducers
}
