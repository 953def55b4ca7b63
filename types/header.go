package types

import (
	"encoding/binary"

	"github.com/dndll/near-zk-light-client/crypto"
	"github.com/dndll/near-zk-light-client/crypto/merkle"
)

const (
	// HeaderInnerSize is the canonical encoded length of HeaderInner:
	// a little-endian u64 height, four 32-byte hashes, a little-endian
	// u64 timestamp and two more 32-byte hashes.
	HeaderInnerSize = 8 + 4*crypto.HashSize + 8 + 2*crypto.HashSize

	// HeaderSize is the flat encoded length of Header: two 32-byte
	// hashes followed by the inner encoding.
	HeaderSize = 2*crypto.HashSize + HeaderInnerSize
)

// HeaderInner is the slim part of a block header the light client
// tracks. Field order matches the canonical encoding.
type HeaderInner struct {
	Height        uint64
	EpochID       CryptoHash
	NextEpochID   CryptoHash
	PrevStateRoot CryptoHash
	OutcomeRoot   CryptoHash
	// Timestamp is nanoseconds since the unix epoch.
	Timestamp       uint64
	NextBPHash      CryptoHash
	BlockMerkleRoot CryptoHash
}

// MarshalBinary returns the canonical 208-byte encoding.
func (h HeaderInner) MarshalBinary() ([]byte, error) {
	bz := make([]byte, 0, HeaderInnerSize)
	bz = binary.LittleEndian.AppendUint64(bz, h.Height)
	bz = append(bz, h.EpochID[:]...)
	bz = append(bz, h.NextEpochID[:]...)
	bz = append(bz, h.PrevStateRoot[:]...)
	bz = append(bz, h.OutcomeRoot[:]...)
	bz = binary.LittleEndian.AppendUint64(bz, h.Timestamp)
	bz = append(bz, h.NextBPHash[:]...)
	bz = append(bz, h.BlockMerkleRoot[:]...)
	return bz, nil
}

// UnmarshalBinary is the exact inverse of MarshalBinary. Any other
// length is rejected.
func (h *HeaderInner) UnmarshalBinary(bz []byte) error {
	if len(bz) != HeaderInnerSize {
		return ErrEncoding{Field: "header inner", Want: HeaderInnerSize, Got: len(bz)}
	}
	h.Height = binary.LittleEndian.Uint64(bz[0:8])
	copy(h.EpochID[:], bz[8:40])
	copy(h.NextEpochID[:], bz[40:72])
	copy(h.PrevStateRoot[:], bz[72:104])
	copy(h.OutcomeRoot[:], bz[104:136])
	h.Timestamp = binary.LittleEndian.Uint64(bz[136:144])
	copy(h.NextBPHash[:], bz[144:176])
	copy(h.BlockMerkleRoot[:], bz[176:208])
	return nil
}

// Hash is the SHA-256 of the canonical encoding.
func (h HeaderInner) Hash() CryptoHash {
	bz, _ := h.MarshalBinary()
	return crypto.Sha256(bz)
}

// Header is the light-client view of a block header. Headers are
// immutable once constructed; all derived hashes are recomputed on
// demand.
type Header struct {
	PrevBlockHash CryptoHash
	InnerRestHash CryptoHash
	Inner         HeaderInner
}

// Hash computes the canonical block hash by chaining the inner hash
// with the rest-of-header hash and then the previous block hash:
//
//	combine(combine(sha256(inner), inner_rest_hash), prev_block_hash)
//
// where combine is the SHA-256 of the concatenation.
func (h Header) Hash() CryptoHash {
	return merkle.CombineHash(
		merkle.CombineHash(h.Inner.Hash(), h.InnerRestHash),
		h.PrevBlockHash,
	)
}

// MarshalBinary returns the flat 272-byte transport encoding: previous
// block hash, inner rest hash, then the canonical inner encoding.
func (h Header) MarshalBinary() ([]byte, error) {
	bz := make([]byte, 0, HeaderSize)
	bz = append(bz, h.PrevBlockHash[:]...)
	bz = append(bz, h.InnerRestHash[:]...)
	inner, err := h.Inner.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(bz, inner...), nil
}

// UnmarshalBinary is the exact inverse of MarshalBinary. Any other
// length is rejected.
func (h *Header) UnmarshalBinary(bz []byte) error {
	if len(bz) != HeaderSize {
		return ErrEncoding{Field: "header", Want: HeaderSize, Got: len(bz)}
	}
	copy(h.PrevBlockHash[:], bz[0:32])
	copy(h.InnerRestHash[:], bz[32:64])
	return h.Inner.UnmarshalBinary(bz[64:])
}
