package merkle_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

func TestCombineHash(t *testing.T) {
	l := crypto.Sha256([]byte("left"))
	r := crypto.Sha256([]byte("right"))

	assert.Equal(t, crypto.Sha256(l[:], r[:]), merkle.CombineHash(l, r))
	assert.NotEqual(t, merkle.CombineHash(l, r), merkle.CombineHash(r, l))
}

func TestComputeRootFromPath(t *testing.T) {
	h0 := crypto.Sha256([]byte("leaf 0"))
	h1 := crypto.Sha256([]byte("leaf 1"))
	h2 := crypto.Sha256([]byte("leaf 2"))

	// Tree of three leaves: the unpaired leaf is promoted.
	//
	//        root
	//       /    \
	//      a      h2
	//     / \
	//   h0   h1
	a := merkle.CombineHash(h0, h1)
	root := merkle.CombineHash(a, h2)

	testCases := []struct {
		name string
		leaf crypto.Hash
		path merkle.Path
	}{
		{"leftmost", h0, merkle.Path{
			{Hash: h1, Direction: merkle.Right},
			{Hash: h2, Direction: merkle.Right},
		}},
		{"middle", h1, merkle.Path{
			{Hash: h0, Direction: merkle.Left},
			{Hash: h2, Direction: merkle.Right},
		}},
		{"promoted", h2, merkle.Path{
			{Hash: a, Direction: merkle.Left},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, root, merkle.ComputeRootFromPath(tc.path, tc.leaf))
			assert.True(t, merkle.VerifyHash(root, tc.path, tc.leaf))
		})
	}
}

func TestVerifyHashTamper(t *testing.T) {
	leaves := [][]byte{
		[]byte("alpha"), []byte("bravo"), []byte("charlie"),
		[]byte("delta"), []byte("echo"),
	}
	root, paths := merkle.Merklize(leaves)

	for i, leaf := range leaves {
		leafHash := crypto.Sha256(leaf)
		require.True(t, merkle.VerifyHash(root, paths[i], leafHash))

		// Flip one bit of the leaf hash.
		tampered := leafHash
		tampered[7] ^= 0x01
		assert.False(t, merkle.VerifyHash(root, paths[i], tampered))

		// Flip one bit of the root.
		badRoot := root
		badRoot[0] ^= 0x80
		assert.False(t, merkle.VerifyHash(badRoot, paths[i], leafHash))

		// Flip one bit in every path item in turn.
		for j := range paths[i] {
			bad := make(merkle.Path, len(paths[i]))
			copy(bad, paths[i])
			bad[j].Hash[31] ^= 0x01
			assert.False(t, merkle.VerifyHash(root, bad, leafHash))
		}

		// Flip a direction.
		if len(paths[i]) > 0 {
			bad := make(merkle.Path, len(paths[i]))
			copy(bad, paths[i])
			bad[0].Direction ^= 1
			assert.False(t, merkle.VerifyHash(root, bad, leafHash))
		}
	}
}

func TestVerifyHashWithDepth(t *testing.T) {
	leaves := [][]byte{
		[]byte("a"), []byte("b"), []byte("c"), []byte("d"),
	}
	root, paths := merkle.Merklize(leaves)
	leaf := crypto.Sha256(leaves[0])

	assert.True(t, merkle.VerifyHashWithDepth(root, paths[0], leaf, 2))
	assert.True(t, merkle.VerifyHashWithDepth(root, paths[0], leaf, 64))
	assert.False(t, merkle.VerifyHashWithDepth(root, paths[0], leaf, 1))
}

func TestPathJSON(t *testing.T) {
	path := merkle.Path{
		{Hash: crypto.Sha256([]byte("sibling")), Direction: merkle.Right},
		{Hash: crypto.Sha256([]byte("uncle")), Direction: merkle.Left},
	}

	bz, err := json.Marshal(path)
	require.NoError(t, err)
	assert.Contains(t, string(bz), `"direction":"Right"`)
	assert.Contains(t, string(bz), `"direction":"Left"`)

	var back merkle.Path
	require.NoError(t, json.Unmarshal(bz, &back))
	assert.Equal(t, path, back)

	var d merkle.Direction
	assert.Error(t, d.UnmarshalText([]byte("Up")))
}

func TestPathBinary(t *testing.T) {
	path := merkle.Path{
		{Hash: crypto.Sha256([]byte("sibling")), Direction: merkle.Right},
		{Hash: crypto.Sha256([]byte("uncle")), Direction: merkle.Left},
	}

	bz, err := path.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, bz, 2*merkle.PathItemSize)
	assert.EqualValues(t, merkle.Right, bz[0])
	assert.EqualValues(t, merkle.Left, bz[merkle.PathItemSize])

	var back merkle.Path
	require.NoError(t, back.UnmarshalBinary(bz))
	assert.Equal(t, path, back)

	assert.Error(t, back.UnmarshalBinary(bz[:merkle.PathItemSize-1]), "truncated item")

	bz[0] = 0x07
	assert.Error(t, back.UnmarshalBinary(bz), "invalid direction byte")
}
