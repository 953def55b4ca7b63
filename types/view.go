package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/dndll/near-zk-light-client/crypto"
)

// RPC text prefixes for keys and signatures.
const (
	ed25519Prefix   = "ed25519:"
	secp256k1Prefix = "secp256k1:"
)

// PublicKeyView is the RPC text form of a public key, scheme-prefixed
// base58 such as "ed25519:9BmA...".
type PublicKeyView string

// ED25519PublicKeyView renders a raw key in the RPC text form.
func ED25519PublicKeyView(pk PublicKey) PublicKeyView {
	return PublicKeyView(ed25519Prefix + base58.Encode(pk[:]))
}

// ED25519 decodes the key when it uses the ed25519 scheme. Any other
// scheme, or a malformed encoding, reports false.
func (v PublicKeyView) ED25519() (PublicKey, bool) {
	var pk PublicKey
	raw, found := strings.CutPrefix(string(v), ed25519Prefix)
	if !found {
		return pk, false
	}
	bz := base58.Decode(raw)
	if len(bz) != PublicKeySize {
		return pk, false
	}
	copy(pk[:], bz)
	return pk, true
}

// SECP256K1 decodes the key when it uses the secp256k1 scheme.
func (v PublicKeyView) SECP256K1() ([64]byte, bool) {
	var pk [64]byte
	raw, found := strings.CutPrefix(string(v), secp256k1Prefix)
	if !found {
		return pk, false
	}
	bz := base58.Decode(raw)
	if len(bz) != 64 {
		return pk, false
	}
	copy(pk[:], bz)
	return pk, true
}

// SignatureView is the RPC text form of a signature.
type SignatureView string

// ED25519SignatureView renders a raw signature in the RPC text form.
func ED25519SignatureView(sig Signature) SignatureView {
	return SignatureView(ed25519Prefix + base58.Encode(sig[:]))
}

// ED25519 decodes the signature when it uses the ed25519 scheme. Any
// other scheme, or a malformed encoding, reports false: such approvals
// count as inactive rather than failing the block.
func (v SignatureView) ED25519() (Signature, bool) {
	var sig Signature
	raw, found := strings.CutPrefix(string(v), ed25519Prefix)
	if !found {
		return sig, false
	}
	bz := base58.Decode(raw)
	if len(bz) != SignatureSize {
		return sig, false
	}
	copy(sig[:], bz)
	return sig, true
}

// BlockHeaderInnerLiteView is the RPC wire form of HeaderInner.
//
// RPC carries the timestamp twice: "timestamp" as a JSON number, which
// intermediaries may truncate, and "timestamp_nanosec" as an exact
// decimal string.
type BlockHeaderInnerLiteView struct {
	Height           uint64     `json:"height"`
	EpochID          CryptoHash `json:"epoch_id"`
	NextEpochID      CryptoHash `json:"next_epoch_id"`
	PrevStateRoot    CryptoHash `json:"prev_state_root"`
	OutcomeRoot      CryptoHash `json:"outcome_root"`
	Timestamp        uint64     `json:"timestamp"`
	TimestampNanosec uint64     `json:"timestamp_nanosec,string"`
	NextBPHash       CryptoHash `json:"next_bp_hash"`
	BlockMerkleRoot  CryptoHash `json:"block_merkle_root"`
}

// ToInner maps the view into the value model, preferring the numeric
// timestamp when present and falling back to the string form.
func (v BlockHeaderInnerLiteView) ToInner() HeaderInner {
	ts := v.Timestamp
	if ts == 0 {
		ts = v.TimestampNanosec
	}
	return HeaderInner{
		Height:          v.Height,
		EpochID:         v.EpochID,
		NextEpochID:     v.NextEpochID,
		PrevStateRoot:   v.PrevStateRoot,
		OutcomeRoot:     v.OutcomeRoot,
		Timestamp:       ts,
		NextBPHash:      v.NextBPHash,
		BlockMerkleRoot: v.BlockMerkleRoot,
	}
}

// ValidatorStakeView is the RPC wire form of a producer seat.
type ValidatorStakeView struct {
	AccountID AccountID     `json:"account_id"`
	PublicKey PublicKeyView `json:"public_key"`
	Stake     Balance       `json:"stake"`
	Version   string        `json:"validator_stake_struct_version,omitempty"`
}

// ToValidatorStake maps the view into the value model. A key in a
// scheme other than ed25519 yields a seat with the zero key: the seat
// still weighs into the total stake, but its approvals can never
// verify.
func (v ValidatorStakeView) ToValidatorStake() ValidatorStake {
	pk, _ := v.PublicKey.ED25519()
	return ValidatorStake{
		AccountID: v.AccountID,
		PublicKey: pk,
		Stake:     v.Stake,
	}
}

// NewValidatorStakeView renders a seat back into its wire form.
func NewValidatorStakeView(seat ValidatorStake) ValidatorStakeView {
	return ValidatorStakeView{
		AccountID: seat.AccountID,
		PublicKey: ED25519PublicKeyView(seat.PublicKey),
		Stake:     seat.Stake,
		Version:   "V1",
	}
}

// BPSHashFromViews hashes a producer set exactly as it appeared on the
// wire, retaining foreign-scheme keys so the commitment matches the
// header's even when the value model degrades them. An unparseable key
// falls back to the zero ed25519 key; the resulting mismatch surfaces
// when the handoff is checked.
func BPSHashFromViews(views []ValidatorStakeView) CryptoHash {
	encoded := make([]borshValidatorStake, 0, len(views))
	for _, v := range views {
		pk := borshPublicKey{}
		if ed, ok := v.PublicKey.ED25519(); ok {
			pk.ED25519.Key = ed
		} else if secp, ok := v.PublicKey.SECP256K1(); ok {
			pk.Scheme = 1
			pk.SECP256K1.Key = secp
		}
		encoded = append(encoded, borshValidatorStake{
			V1: borshValidatorStakeV1{
				AccountID: string(v.AccountID),
				PublicKey: pk,
				Stake:     *v.Stake.BigInt(),
			},
		})
	}
	return crypto.Sha256(mustBorsh(encoded))
}

// NewBlockProducers builds the fixed-capacity seat array for an epoch
// from untrusted views: seats beyond capacity are dropped and unused
// capacity is padded with the placeholder.
func NewBlockProducers(views []ValidatorStakeView, params Params) []ValidatorStake {
	bps := make([]ValidatorStake, 0, params.NumSeats)
	for _, v := range views {
		if len(bps) == params.NumSeats {
			break
		}
		bps = append(bps, v.ToValidatorStake())
	}
	for len(bps) < params.NumSeats {
		bps = append(bps, DefaultSeat())
	}
	return bps
}

// LightClientBlockView is the RPC wire form of a light client block.
// Approval slots are nullable: a producer that did not endorse appears
// as null.
type LightClientBlockView struct {
	PrevBlockHash      CryptoHash               `json:"prev_block_hash"`
	NextBlockInnerHash CryptoHash               `json:"next_block_inner_hash"`
	InnerLite          BlockHeaderInnerLiteView `json:"inner_lite"`
	InnerRestHash      CryptoHash               `json:"inner_rest_hash"`
	NextBPS            []ValidatorStakeView     `json:"next_bps,omitempty"`
	ApprovalsAfterNext []*SignatureView         `json:"approvals_after_next"`
}

// ToHeader assembles the value-model header.
func (v LightClientBlockView) ToHeader() Header {
	return Header{
		PrevBlockHash: v.PrevBlockHash,
		InnerRestHash: v.InnerRestHash,
		Inner:         v.InnerLite.ToInner(),
	}
}

// ToBlock assembles the value-model block. Approval slots line up with
// the seat capacity; a null, foreign-scheme or malformed approval
// leaves its slot inactive.
func (v LightClientBlockView) ToBlock(params Params) Block {
	approvals := NewBlockApprovals(params.NumSeats)
	for i, sv := range v.ApprovalsAfterNext {
		if i == params.NumSeats {
			break
		}
		if sv == nil {
			continue
		}
		sig, ok := sv.ED25519()
		if !ok {
			continue
		}
		approvals.IsActive[i] = true
		approvals.Signatures[i] = sig
	}

	block := Block{
		Header:             v.ToHeader(),
		NextBlockInnerHash: v.NextBlockInnerHash,
		ApprovalsAfterNext: approvals,
	}
	if len(v.NextBPS) > 0 {
		block.NextBPS = NewBlockProducers(v.NextBPS, params)
		block.NextBPSHash = BPSHashFromViews(v.NextBPS)
	}
	return block
}

// The RPC form of TransactionOrReceiptID is a tagged union.
type transactionIDJSON struct {
	Type            string     `json:"type"`
	TransactionHash CryptoHash `json:"transaction_hash"`
	SenderID        AccountID  `json:"sender_id"`
}

type receiptIDJSON struct {
	Type       string     `json:"type"`
	ReceiptID  CryptoHash `json:"receipt_id"`
	ReceiverID AccountID  `json:"receiver_id"`
}

func (t TransactionOrReceiptID) MarshalJSON() ([]byte, error) {
	if t.IsTransaction {
		return json.Marshal(transactionIDJSON{
			Type:            "transaction",
			TransactionHash: t.ID,
			SenderID:        t.Account,
		})
	}
	return json.Marshal(receiptIDJSON{
		Type:       "receipt",
		ReceiptID:  t.ID,
		ReceiverID: t.Account,
	})
}

func (t *TransactionOrReceiptID) UnmarshalJSON(data []byte) error {
	var kind struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &kind); err != nil {
		return err
	}
	switch kind.Type {
	case "transaction":
		var tx transactionIDJSON
		if err := json.Unmarshal(data, &tx); err != nil {
			return err
		}
		*t = TransactionOrReceiptID{IsTransaction: true, ID: tx.TransactionHash, Account: tx.SenderID}
	case "receipt":
		var rc receiptIDJSON
		if err := json.Unmarshal(data, &rc); err != nil {
			return err
		}
		*t = TransactionOrReceiptID{IsTransaction: false, ID: rc.ReceiptID, Account: rc.ReceiverID}
	default:
		return fmt.Errorf("unknown transaction or receipt type %q", kind.Type)
	}
	return nil
}
