package light

import (
	"fmt"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
	"github.com/dndll/near-zk-light-client/types"
)

// VerifyProof checks that the proof binds its outcome to a block
// included under headBlockRoot, the block merkle root committed to by a
// trusted head. Three independent checks must all pass:
//
//  1. the outcome folds up to its shard's outcome root, and the hash of
//     that root folds up to the outcome root the block header commits
//     to;
//  2. the block header hashes to the block hash the outcome proof was
//     issued against;
//  3. the block hash folds up to headBlockRoot.
//
// Proof paths over their leg's depth capacity are rejected before any
// hashing.
func VerifyProof(headBlockRoot types.CryptoHash, proof types.Proof) error {
	if err := proof.ValidateBasic(); err != nil {
		return err
	}
	if !proof.HeadBlockRoot.IsZero() && proof.HeadBlockRoot != headBlockRoot {
		return fmt.Errorf("proof targets head block root %v, trusted head commits to %v",
			proof.HeadBlockRoot, headBlockRoot)
	}

	// Outcomes live in a per-shard tree; the hashed shard root is a
	// leaf of the per-block outcome tree.
	shardRoot := merkle.ComputeRootFromPath(proof.OutcomeProof, proof.OutcomeHash)
	outcomeRoot := merkle.ComputeRootFromPath(proof.OutcomeRootProof, crypto.Sha256(shardRoot[:]))
	if outcomeRoot != proof.BlockHeader.Inner.OutcomeRoot {
		return ErrOutcomeNotIncluded
	}

	blockHash := proof.BlockHeader.Hash()
	if blockHash != proof.OutcomeProofBlockHash {
		return ErrBlockHashMismatch
	}

	if !merkle.VerifyHash(headBlockRoot, proof.BlockProof, blockHash) {
		return ErrBlockNotIncluded
	}
	return nil
}
