package light_test

import (
	"testing"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
	"github.com/stretchr/testify/require"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/types"
)

// testSigner is one block producer with signing capability.
type testSigner struct {
	seat types.ValidatorStake
	priv ed25519.PrivateKey
}

// newTestSigner derives a producer deterministically from its account
// name, so fixtures are stable across runs.
func newTestSigner(t *testing.T, account string, stake uint64) testSigner {
	t.Helper()
	seed := crypto.Sha256([]byte(account))
	priv := ed25519.NewKeyFromSeed(seed[:])

	var pk types.PublicKey
	copy(pk[:], priv.Public().(ed25519.PublicKey))
	return testSigner{
		seat: types.ValidatorStake{
			AccountID: types.AccountID(account),
			PublicKey: pk,
			Stake:     types.NewBalance(stake),
		},
		priv: priv,
	}
}

func (s testSigner) sign(msg []byte) types.Signature {
	var sig types.Signature
	copy(sig[:], ed25519.Sign(s.priv, msg))
	return sig
}

// newTestBPS derives numSigners producers with the given stakes and
// pads the seat array to capacity.
func newTestBPS(t *testing.T, capacity int, stakes ...uint64) ([]testSigner, []types.ValidatorStake) {
	t.Helper()
	signers := make([]testSigner, len(stakes))
	seats := make([]types.ValidatorStake, len(stakes))
	for i, stake := range stakes {
		signers[i] = newTestSigner(t, testAccountName(i), stake)
		seats[i] = signers[i].seat
	}
	return signers, types.PadSeats(seats, capacity)
}

func testAccountName(i int) string {
	return string(rune('a'+i)) + "-producer.near"
}

func fillHash(b byte) types.CryptoHash {
	var h types.CryptoHash
	for i := range h {
		h[i] = b
	}
	return h
}

// testHead is a trusted head at height 100 in epoch 0x0e with epoch
// 0x0f up next.
func testHead() types.Header {
	return types.Header{
		PrevBlockHash: fillHash(0x01),
		InnerRestHash: fillHash(0x02),
		Inner: types.HeaderInner{
			Height:      100,
			EpochID:     fillHash(0x0e),
			NextEpochID: fillHash(0x0f),
			Timestamp:   1700000000000000000,
		},
	}
}

// testBlock builds a candidate successor of head and signs its
// approval message with the signers whose index is in signing.
func testBlock(t *testing.T, head types.Header, signers []testSigner, signing ...int) types.Block {
	t.Helper()
	block := types.Block{
		Header: types.Header{
			PrevBlockHash: head.Hash(),
			InnerRestHash: fillHash(0x03),
			Inner: types.HeaderInner{
				Height:      head.Inner.Height + 1,
				EpochID:     head.Inner.EpochID,
				NextEpochID: head.Inner.NextEpochID,
				Timestamp:   head.Inner.Timestamp + 1,
			},
		},
		NextBlockInnerHash: fillHash(0x04),
		ApprovalsAfterNext: types.NewBlockApprovals(len(signers)),
	}

	msg := block.ApprovalMessage()
	for _, i := range signing {
		require.Less(t, i, len(signers))
		block.ApprovalsAfterNext.IsActive[i] = true
		block.ApprovalsAfterNext.Signatures[i] = signers[i].sign(msg)
	}
	return block
}
