package types_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
	"github.com/dndll/near-zk-light-client/types"
)

func fillHash(b byte) types.CryptoHash {
	var h types.CryptoHash
	for i := range h {
		h[i] = b
	}
	return h
}

func testInner() types.HeaderInner {
	return types.HeaderInner{
		Height:          0x0102030405060708,
		EpochID:         fillHash(0xAA),
		NextEpochID:     fillHash(0xAB),
		PrevStateRoot:   fillHash(0xAC),
		OutcomeRoot:     fillHash(0xAD),
		Timestamp:       0x1112131415161718,
		NextBPHash:      fillHash(0xAE),
		BlockMerkleRoot: fillHash(0xAF),
	}
}

func TestHeaderInnerLayout(t *testing.T) {
	inner := testInner()

	bz, err := inner.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bz, types.HeaderInnerSize)

	// Little-endian height at the front.
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, bz[0:8])
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 32), bz[8:40])
	assert.Equal(t, bytes.Repeat([]byte{0xAB}, 32), bz[40:72])
	assert.Equal(t, bytes.Repeat([]byte{0xAC}, 32), bz[72:104])
	assert.Equal(t, bytes.Repeat([]byte{0xAD}, 32), bz[104:136])
	// Little-endian timestamp after the first four hashes.
	assert.Equal(t, []byte{0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11}, bz[136:144])
	assert.Equal(t, bytes.Repeat([]byte{0xAE}, 32), bz[144:176])
	assert.Equal(t, bytes.Repeat([]byte{0xAF}, 32), bz[176:208])
}

func TestHeaderInnerRoundTrip(t *testing.T) {
	inner := testInner()

	bz, err := inner.MarshalBinary()
	require.NoError(t, err)

	var back types.HeaderInner
	require.NoError(t, back.UnmarshalBinary(bz))
	assert.Equal(t, inner, back)

	for _, n := range []int{0, 207, 209, 1024} {
		err := back.UnmarshalBinary(make([]byte, n))
		require.Error(t, err, "length %d", n)
		assert.IsType(t, types.ErrEncoding{}, err)
	}
}

func TestHeaderLayout(t *testing.T) {
	header := types.Header{
		PrevBlockHash: fillHash(0x01),
		InnerRestHash: fillHash(0x02),
		Inner:         testInner(),
	}

	bz, err := header.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bz, types.HeaderSize)

	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), bz[0:32])
	assert.Equal(t, bytes.Repeat([]byte{0x02}, 32), bz[32:64])

	innerBz, err := header.Inner.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, innerBz, bz[64:])

	var back types.Header
	require.NoError(t, back.UnmarshalBinary(bz))
	assert.Equal(t, header, back)

	assert.Error(t, back.UnmarshalBinary(bz[:271]))
	assert.Error(t, back.UnmarshalBinary(append(bz, 0)))
}

func TestHeaderHashChain(t *testing.T) {
	header := types.Header{
		PrevBlockHash: fillHash(0x01),
		InnerRestHash: fillHash(0x02),
		Inner:         testInner(),
	}

	innerBz, err := header.Inner.MarshalBinary()
	require.NoError(t, err)

	innerHash := crypto.Sha256(innerBz)
	withRest := merkle.CombineHash(innerHash, header.InnerRestHash)
	want := merkle.CombineHash(withRest, header.PrevBlockHash)

	assert.Equal(t, want, header.Hash())
	assert.Equal(t, innerHash, header.Inner.Hash())

	// Same inputs, same hash.
	assert.Equal(t, header.Hash(), header.Hash())

	// Any field change moves the hash.
	changed := header
	changed.Inner.Height++
	assert.NotEqual(t, header.Hash(), changed.Hash())

	changed = header
	changed.PrevBlockHash = fillHash(0x03)
	assert.NotEqual(t, header.Hash(), changed.Hash())

	changed = header
	changed.InnerRestHash = fillHash(0x03)
	assert.NotEqual(t, header.Hash(), changed.Hash())
}
