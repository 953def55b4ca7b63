// Package erasure splits block payloads into Reed-Solomon shards, one
// per validator, and commits to them with a merkle root. A payload
// survives the loss of any shard subset up to the code's parity rate,
// so availability does not require every validator to be reachable.
package erasure

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/klauspost/reedsolomon"
)

// ErrTooFewShards means the present shards are below the code's
// recovery threshold.
var ErrTooFewShards = errors.New("too few shards present to reconstruct the payload")

// DataShards derives the systematic data-shard count from the total:
// the largest power of two not above f+1, where f is the number of
// shard losses a set of shardCount validators tolerates. Everything
// above it is parity.
func DataShards(shardCount int) int {
	f := (shardCount - 1) / 3
	k := f + 1
	if k < 1 {
		k = 1
	}
	return 1 << (bits.Len(uint(k)) - 1)
}

// ShardSet is the erasure coding of one payload: an ordered slot per
// shard, each present or missing. Missing is a first-class state of a
// slot, not an error.
type ShardSet struct {
	dataShards int
	// shards holds one slot per shard; nil marks a missing shard.
	shards [][]byte
}

// Encode splits payload into exactly shardCount shards. The code is
// systematic: the payload occupies the data shards, padded to the
// shard boundary, and the remaining shards carry parity. The payload
// is recoverable from any DataShards(shardCount) present shards.
func Encode(payload []byte, shardCount int) (*ShardSet, error) {
	if shardCount < 2 {
		return nil, fmt.Errorf("shard count %d below minimum 2", shardCount)
	}
	data := DataShards(shardCount)
	enc, err := reedsolomon.New(data, shardCount-data)
	if err != nil {
		return nil, fmt.Errorf("building reed-solomon coder: %w", err)
	}

	shards, err := enc.Split(payload)
	if err != nil {
		return nil, fmt.Errorf("splitting payload: %w", err)
	}
	if err := enc.Encode(shards); err != nil {
		return nil, fmt.Errorf("encoding parity: %w", err)
	}
	return &ShardSet{dataShards: data, shards: shards}, nil
}

// Len returns the total shard count.
func (s *ShardSet) Len() int { return len(s.shards) }

// DataShards returns the systematic data-shard count, which is also
// the minimum number of present shards Reconstruct needs.
func (s *ShardSet) DataShards() int { return s.dataShards }

// Shard returns slot i's bytes and whether the slot is present.
func (s *ShardSet) Shard(i int) ([]byte, bool) {
	if s.shards[i] == nil {
		return nil, false
	}
	return s.shards[i], true
}

// Missing reports whether slot i is missing.
func (s *ShardSet) Missing(i int) bool { return s.shards[i] == nil }

// MarkMissing drops slot i, simulating an unreachable validator.
func (s *ShardSet) MarkMissing(i int) { s.shards[i] = nil }

// Present returns the number of present slots.
func (s *ShardSet) Present() int {
	n := 0
	for _, shard := range s.shards {
		if shard != nil {
			n++
		}
	}
	return n
}

// Reconstruct recovers the payload from the present shards, filling
// every missing slot in place. The result is the payload padded to the
// data-shard boundary; callers compare by prefix. Fails with
// ErrTooFewShards when fewer than DataShards slots are present.
func (s *ShardSet) Reconstruct() ([]byte, error) {
	if s.Present() < s.dataShards {
		return nil, fmt.Errorf("%w: %d of %d present, need %d",
			ErrTooFewShards, s.Present(), len(s.shards), s.dataShards)
	}
	enc, err := reedsolomon.New(s.dataShards, len(s.shards)-s.dataShards)
	if err != nil {
		return nil, fmt.Errorf("building reed-solomon coder: %w", err)
	}
	if err := enc.Reconstruct(s.shards); err != nil {
		if errors.Is(err, reedsolomon.ErrTooFewShards) {
			return nil, fmt.Errorf("%w: %v", ErrTooFewShards, err)
		}
		return nil, fmt.Errorf("reconstructing shards: %w", err)
	}

	payload := make([]byte, 0, s.dataShards*len(s.shards[0]))
	for _, shard := range s.shards[:s.dataShards] {
		payload = append(payload, shard...)
	}
	return payload, nil
}
