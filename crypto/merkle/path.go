package merkle

import (
	"fmt"

	"github.com/dndll/near-zk-light-client/crypto"
)

// Direction says which side of the combine a path sibling sits on,
// relative to the hash being folded upward.
type Direction uint8

const (
	// Left means the sibling is the left input to CombineHash.
	Left Direction = iota
	// Right means the sibling is the right input.
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// MarshalText renders the RPC text form ("Left" / "Right").
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Left, Right:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Left":
		*d = Left
	case "Right":
		*d = Right
	default:
		return fmt.Errorf("invalid direction %q", text)
	}
	return nil
}

// PathItem is one sibling hash on the way from a leaf to the root.
type PathItem struct {
	Hash      crypto.Hash `json:"hash"`
	Direction Direction   `json:"direction"`
}

// Path proves inclusion of a leaf under a root: sibling hashes ordered
// from the leaf upward. An empty path proves a single-node tree.
type Path []PathItem

// PathItemSize is the flat encoded length of one path item: a
// direction byte followed by the sibling hash.
const PathItemSize = 1 + crypto.HashSize

// MarshalBinary returns the flat encoding of the path, PathItemSize
// bytes per item in leaf-to-root order.
func (p Path) MarshalBinary() ([]byte, error) {
	bz := make([]byte, 0, len(p)*PathItemSize)
	for _, item := range p {
		bz = append(bz, byte(item.Direction))
		bz = append(bz, item.Hash[:]...)
	}
	return bz, nil
}

// UnmarshalBinary is the exact inverse of MarshalBinary.
func (p *Path) UnmarshalBinary(bz []byte) error {
	if len(bz)%PathItemSize != 0 {
		return fmt.Errorf("path encoding length %d is not a multiple of %d", len(bz), PathItemSize)
	}
	out := make(Path, 0, len(bz)/PathItemSize)
	for off := 0; off < len(bz); off += PathItemSize {
		d := Direction(bz[off])
		if d != Left && d != Right {
			return fmt.Errorf("invalid direction byte %d at offset %d", bz[off], off)
		}
		var item PathItem
		item.Direction = d
		copy(item.Hash[:], bz[off+1:off+PathItemSize])
		out = append(out, item)
	}
	*p = out
	return nil
}

// CombineHash is the chain's inner-node hash: SHA-256 of the two child
// hashes concatenated.
func CombineHash(l, r crypto.Hash) crypto.Hash {
	return crypto.Sha256(l[:], r[:])
}

// ComputeRootFromPath folds the path's sibling hashes over the leaf hash
// in order. A Left item hashes on the left of the running value, a Right
// item on the right.
func ComputeRootFromPath(path Path, leaf crypto.Hash) crypto.Hash {
	res := leaf
	for _, item := range path {
		if item.Direction == Left {
			res = CombineHash(item.Hash, res)
		} else {
			res = CombineHash(res, item.Hash)
		}
	}
	return res
}

// VerifyHash reports whether path proves that the leaf hash is included
// under root.
func VerifyHash(root crypto.Hash, path Path, leaf crypto.Hash) bool {
	return ComputeRootFromPath(path, leaf) == root
}

// VerifyHashWithDepth is VerifyHash with an upper bound on the path
// length, for callers holding proofs with a fixed capacity.
func VerifyHashWithDepth(root crypto.Hash, path Path, leaf crypto.Hash, maxDepth int) bool {
	if len(path) > maxDepth {
		return false
	}
	return VerifyHash(root, path, leaf)
}
