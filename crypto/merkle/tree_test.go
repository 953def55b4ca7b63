package merkle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

func TestMerklizeEmpty(t *testing.T) {
	root, paths := merkle.Merklize(nil)
	assert.True(t, root.IsZero())
	assert.Nil(t, paths)
}

func TestMerklizeSingle(t *testing.T) {
	leaf := []byte("only")
	root, paths := merkle.Merklize([][]byte{leaf})

	require.Len(t, paths, 1)
	assert.Empty(t, paths[0])
	assert.Equal(t, crypto.Sha256(leaf), root)
}

func TestMerklizeSmallTrees(t *testing.T) {
	h := func(s string) crypto.Hash { return crypto.Sha256([]byte(s)) }

	// Two leaves: root is the plain combine.
	root2, _ := merkle.Merklize([][]byte{[]byte("l"), []byte("r")})
	assert.Equal(t, merkle.CombineHash(h("l"), h("r")), root2)

	// Three leaves: the odd leaf is promoted, then combined last.
	root3, paths3 := merkle.Merklize([][]byte{[]byte("x"), []byte("y"), []byte("z")})
	assert.Equal(t,
		merkle.CombineHash(merkle.CombineHash(h("x"), h("y")), h("z")),
		root3,
	)
	require.Len(t, paths3, 3)
	assert.Len(t, paths3[0], 2)
	assert.Len(t, paths3[1], 2)
	assert.Len(t, paths3[2], 1)
}

func TestMerklizeAllPathsVerify(t *testing.T) {
	for n := 1; n <= 33; n++ {
		t.Run(fmt.Sprintf("leaves=%d", n), func(t *testing.T) {
			leaves := make([][]byte, n)
			for i := range leaves {
				leaves[i] = []byte(fmt.Sprintf("leaf %d", i))
			}

			root, paths := merkle.Merklize(leaves)
			require.Len(t, paths, n)

			for i, leaf := range leaves {
				assert.True(t,
					merkle.VerifyHash(root, paths[i], crypto.Sha256(leaf)),
					"leaf %d of %d", i, n,
				)
			}
		})
	}
}

func TestMerklizeDeterministic(t *testing.T) {
	leaves := [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d"), []byte("e")}

	root1, paths1 := merkle.Merklize(leaves)
	root2, paths2 := merkle.Merklize(leaves)

	assert.Equal(t, root1, root2)
	assert.Equal(t, paths1, paths2)

	// Order matters.
	swapped := [][]byte{[]byte("b"), []byte("a"), []byte("c"), []byte("d"), []byte("e")}
	root3, _ := merkle.Merklize(swapped)
	assert.NotEqual(t, root1, root3)
}
