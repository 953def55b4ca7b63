package merkle

import (
	"github.com/dndll/near-zk-light-client/crypto"
)

// Merklize builds the chain's merkle tree over the given leaves and
// returns the root together with one inclusion path per leaf.
//
// Leaves are hashed with SHA-256. The tree follows the chain convention:
// the leaf count is padded virtually to the next power of two, and a node
// without a sibling is promoted to the next level unchanged, so promoted
// levels contribute no path item.
//
// An empty input returns the zero hash and no paths.
func Merklize(leaves [][]byte) (crypto.Hash, []Path) {
	n := len(leaves)
	if n == 0 {
		return crypto.Hash{}, nil
	}

	level := make([]crypto.Hash, n)
	for i, leaf := range leaves {
		level[i] = crypto.Sha256(leaf)
	}
	paths := make([]Path, n)

	// span is the number of leaves under one node of the current level.
	for span := 1; len(level) > 1; span *= 2 {
		next := make([]crypto.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				// no sibling, promote
				next = append(next, level[i])
				continue
			}
			left, right := level[i], level[i+1]
			for j := i * span; j < (i+1)*span && j < n; j++ {
				paths[j] = append(paths[j], PathItem{Hash: right, Direction: Right})
			}
			for j := (i + 1) * span; j < (i+2)*span && j < n; j++ {
				paths[j] = append(paths[j], PathItem{Hash: left, Direction: Left})
			}
			next = append(next, CombineHash(left, right))
		}
		level = next
	}

	return level[0], paths
}
