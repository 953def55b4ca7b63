package types_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dndll/near-zk-light-client/crypto/merkle"
	"github.com/dndll/near-zk-light-client/types"
)

func TestNewApprovalMessage(t *testing.T) {
	hash := fillHash(0x42)
	msg := types.NewApprovalMessage(hash, 100)

	require.Len(t, msg, types.ApprovalMessageSize)
	assert.EqualValues(t, 0, msg[0], "endorsement enum tag")
	assert.Equal(t, hash[:], msg[1:33])
	assert.Equal(t, uint64(102), binary.LittleEndian.Uint64(msg[33:41]),
		"signed height is two above the endorsed block")
}

func TestBlockApprovalMessage(t *testing.T) {
	block := types.Block{
		Header: types.Header{
			PrevBlockHash: fillHash(0x01),
			InnerRestHash: fillHash(0x02),
			Inner:         testInner(),
		},
		NextBlockInnerHash: fillHash(0x55),
	}

	msg := block.ApprovalMessage()
	require.Len(t, msg, types.ApprovalMessageSize)

	nextBlockHash := merkle.CombineHash(block.NextBlockInnerHash, block.Header.Hash())
	assert.Equal(t, nextBlockHash[:], msg[1:33])
	assert.Equal(t, block.Header.Inner.Height+2, binary.LittleEndian.Uint64(msg[33:41]))
}

func TestBlockApprovals(t *testing.T) {
	approvals := types.NewBlockApprovals(4)
	assert.Equal(t, 4, approvals.Len())
	require.NoError(t, approvals.ValidateBasic())
	for i := 0; i < approvals.Len(); i++ {
		assert.False(t, approvals.IsActive[i])
		assert.True(t, approvals.Signatures[i].IsZero())
	}

	bad := types.BlockApprovals{
		IsActive:   make([]bool, 3),
		Signatures: make([]types.Signature, 4),
	}
	assert.Error(t, bad.ValidateBasic())
}
