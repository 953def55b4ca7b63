package light

import (
	"errors"
	"fmt"

	"github.com/dndll/near-zk-light-client/types"
)

// ErrBlockAlreadyVerified means the candidate block does not advance the
// trusted head. Seeing one is normal when a fetcher replays blocks; the
// head is simply kept.
type ErrBlockAlreadyVerified struct {
	HeadHeight  uint64
	BlockHeight uint64
}

func (e ErrBlockAlreadyVerified) Error() string {
	return fmt.Sprintf("block height %d does not advance the trusted head at %d",
		e.BlockHeight, e.HeadHeight)
}

// ErrUnknownEpoch means the candidate block belongs to neither the
// head's epoch nor the next one, so the trusted producer set says
// nothing about it.
type ErrUnknownEpoch struct {
	BlockEpoch types.CryptoHash
}

func (e ErrUnknownEpoch) Error() string {
	return fmt.Sprintf("block epoch %v is neither the current nor the next epoch", e.BlockEpoch)
}

// ErrMissingNextBPS means a block from the next epoch arrived without
// the producer set that epoch will be verified against.
var ErrMissingNextBPS = errors.New("next-epoch block carries no next block producer set")

// ErrNotEnoughApprovedStake means the approvals that verified do not
// reach the finality threshold. This is an expected outcome while
// endorsements are still being collected, not a fault.
type ErrNotEnoughApprovedStake struct {
	Approved types.Balance
	Total    types.Balance
}

func (e ErrNotEnoughApprovedStake) Error() string {
	return fmt.Sprintf("approved stake %v is not a supermajority of total stake %v",
		e.Approved.String(), e.Total.String())
}

// ErrInvalidNextBPS means the producer set carried by the block does not
// hash to the commitment in its own header.
type ErrInvalidNextBPS struct {
	Got  types.CryptoHash
	Want types.CryptoHash
}

func (e ErrInvalidNextBPS) Error() string {
	return fmt.Sprintf("next block producer set hashes to %v, header commits to %v",
		e.Got, e.Want)
}

// Proof verification failures, one per leg of the composite check.
var (
	ErrOutcomeNotIncluded = errors.New("outcome is not included in the block's outcome root")
	ErrBlockHashMismatch  = errors.New("block header does not hash to the proof's block hash")
	ErrBlockNotIncluded   = errors.New("block is not included under the head's block merkle root")
)
