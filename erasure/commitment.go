package erasure

import (
	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

// ChunkSize is the leaf granularity of a shard commitment. Committing
// to fixed chunks rather than single bytes keeps the proofs compact:
// their size grows with the chunk count, not the payload size.
const ChunkSize = 32

// Commitment is a merkle commitment over the present shards of a
// ShardSet: the root plus one inclusion path per chunk. A verifier
// holding the root confirms any single chunk without the full payload.
type Commitment struct {
	Root crypto.Hash
	// Chunks holds the committed leaves in stream order; the last one
	// may be shorter than ChunkSize.
	Chunks [][]byte
	Paths  []merkle.Path
}

// Commit concatenates the present shards in slot order, splits the
// stream into ChunkSize leaves and merklizes them.
func (s *ShardSet) Commit() Commitment {
	var stream []byte
	for _, shard := range s.shards {
		if shard != nil {
			stream = append(stream, shard...)
		}
	}

	chunks := make([][]byte, 0, (len(stream)+ChunkSize-1)/ChunkSize)
	for off := 0; off < len(stream); off += ChunkSize {
		end := off + ChunkSize
		if end > len(stream) {
			end = len(stream)
		}
		chunks = append(chunks, stream[off:end])
	}

	root, paths := merkle.Merklize(chunks)
	return Commitment{Root: root, Chunks: chunks, Paths: paths}
}

// VerifyChunk reports whether chunk i of the committed stream is the
// given bytes.
func (c Commitment) VerifyChunk(i int, chunk []byte) bool {
	if i < 0 || i >= len(c.Paths) {
		return false
	}
	return merkle.VerifyHash(c.Root, c.Paths[i], crypto.Sha256(chunk))
}

// ProofSize returns the serialized size of all inclusion paths, the
// bytes a verifier needs on top of the root and the chunks themselves.
func (c Commitment) ProofSize() int {
	n := 0
	for _, path := range c.Paths {
		n += len(path) * merkle.PathItemSize
	}
	return n
}
