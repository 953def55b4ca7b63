package light

import (
	"crypto/rand"
	"runtime"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"golang.org/x/sync/errgroup"

	"github.com/dndll/near-zk-light-client/types"
)

// approvalToVerify is one seat's pending signature check. Seats are
// independent of each other, so checks run batched or fanned out.
type approvalToVerify struct {
	seat int
	key  types.PublicKey
	sig  types.Signature
}

// ValidateSignatures tallies the stake behind an approval record.
//
// Every real seat weighs into Total. A seat weighs into Approved only
// when its slot is active and its ed25519 signature over msg verifies
// with the seat's key; seats carrying the zero key (a validator on a
// foreign signature scheme) can never approve. The caller applies the
// threshold, see StakeInfo.HasSupermajority.
func ValidateSignatures(bps []types.ValidatorStake, approvals types.BlockApprovals, msg []byte) types.StakeInfo {
	var info types.StakeInfo
	pending := make([]approvalToVerify, 0, len(bps))
	for i, seat := range bps {
		if seat.IsEmpty() {
			continue
		}
		info.Total.Add(&info.Total.Int, &seat.Stake.Int)
		if i >= approvals.Len() || !approvals.IsActive[i] {
			continue
		}
		if seat.PublicKey.IsZero() {
			continue
		}
		pending = append(pending, approvalToVerify{seat: i, key: seat.PublicKey, sig: approvals.Signatures[i]})
	}

	for _, i := range verifyApprovals(pending, msg) {
		info.Approved.Add(&info.Approved.Int, &bps[i].Stake.Int)
	}
	return info
}

// verifyApprovals returns the seat indices whose signatures verify.
// The batch verifier is roughly twice as fast as one-by-one checks, but
// on rejection it only says that some signature failed, so the failing
// batch is re-verified seat by seat across the available cores.
func verifyApprovals(pending []approvalToVerify, msg []byte) []int {
	if len(pending) == 0 {
		return nil
	}

	bv := ed25519.NewBatchVerifier()
	for _, p := range pending {
		bv.Add(ed25519.PublicKey(p.key[:]), msg, p.sig[:])
	}
	if ok, _ := bv.Verify(rand.Reader); ok {
		valid := make([]int, len(pending))
		for i, p := range pending {
			valid[i] = p.seat
		}
		return valid
	}

	results := make([]bool, len(pending))
	var g errgroup.Group
	chunk := (len(pending) + runtime.GOMAXPROCS(0) - 1) / runtime.GOMAXPROCS(0)
	for start := 0; start < len(pending); start += chunk {
		start := start
		end := start + chunk
		if end > len(pending) {
			end = len(pending)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				p := pending[i]
				results[i] = ed25519.Verify(ed25519.PublicKey(p.key[:]), msg, p.sig[:])
			}
			return nil
		})
	}
	_ = g.Wait()

	valid := make([]int, 0, len(pending))
	for i, ok := range results {
		if ok {
			valid = append(valid, pending[i].seat)
		}
	}
	return valid
}
