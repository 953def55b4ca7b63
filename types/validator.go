package types

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/near/borsh-go"

	"github.com/dndll/near-zk-light-client/crypto"
)

// ValidatorStake is one block producer seat: the producer's account,
// its ed25519 key and the stake locked behind it.
type ValidatorStake struct {
	AccountID AccountID
	PublicKey PublicKey
	Stake     Balance
}

// DefaultSeat returns the placeholder occupying unused capacity in a
// fixed-size producer set. Its identity can never collide with a real
// producer: legal account ids have at least two characters.
func DefaultSeat() ValidatorStake { return ValidatorStake{} }

// IsEmpty reports whether the seat is the placeholder.
func (v ValidatorStake) IsEmpty() bool { return v.AccountID == "" }

// PadSeats fixes a producer list to exactly numSeats entries, padding
// with the placeholder or truncating as needed.
func PadSeats(bps []ValidatorStake, numSeats int) []ValidatorStake {
	out := make([]ValidatorStake, 0, numSeats)
	for _, seat := range bps {
		if len(out) == numSeats {
			break
		}
		out = append(out, seat)
	}
	for len(out) < numSeats {
		out = append(out, DefaultSeat())
	}
	return out
}

// TrimSeats drops the placeholder seats, recovering the logical
// producer list from a padded one.
func TrimSeats(bps []ValidatorStake) []ValidatorStake {
	out := make([]ValidatorStake, 0, len(bps))
	for _, seat := range bps {
		if !seat.IsEmpty() {
			out = append(out, seat)
		}
	}
	return out
}

// Borsh shapes of the chain's versioned validator stake view. The first
// struct field carries the enum tag; the variant follows.
type borshValidatorStake struct {
	Version borsh.Enum `borsh_enum:"true"`
	V1      borshValidatorStakeV1
}

type borshValidatorStakeV1 struct {
	AccountID string
	PublicKey borshPublicKey
	Stake     big.Int
}

// Enum variants must be structs: borsh-go writes a variant's payload
// only for struct fields, and a borsh struct is the plain
// concatenation of its fields, so the wrapper adds no bytes.
type borshPublicKey struct {
	Scheme    borsh.Enum `borsh_enum:"true"`
	ED25519   borshED25519Key
	SECP256K1 borshSECP256K1Key
}

type borshED25519Key struct {
	Key [32]byte
}

type borshSECP256K1Key struct {
	Key [64]byte
}

func mustBorsh(v interface{}) []byte {
	bz, err := borsh.Serialize(v)
	if err != nil {
		panic(err)
	}
	return bz
}

// HashBlockProducers hashes a producer set the way headers commit to
// one: placeholder seats are dropped and the remaining seats are
// borsh-encoded as versioned views, then hashed. The result must equal
// a header's next_bp_hash for an epoch handoff to be accepted.
func HashBlockProducers(bps []ValidatorStake) CryptoHash {
	views := make([]borshValidatorStake, 0, len(bps))
	for _, seat := range bps {
		if seat.IsEmpty() {
			continue
		}
		views = append(views, borshValidatorStake{
			V1: borshValidatorStakeV1{
				AccountID: string(seat.AccountID),
				PublicKey: borshPublicKey{ED25519: borshED25519Key{Key: seat.PublicKey}},
				Stake:     *seat.Stake.BigInt(),
			},
		})
	}
	return crypto.Sha256(mustBorsh(views))
}

// StakeInfo is the outcome of tallying approvals over a producer set.
type StakeInfo struct {
	// Approved is the stake of the seats whose endorsement signature
	// verified.
	Approved Balance
	// Total is the stake of every real seat, signed or not.
	Total Balance
}

// HasSupermajority reports whether approved stake strictly exceeds two
// thirds of the total. Exactly two thirds is not enough.
func (s StakeInfo) HasSupermajority() bool {
	lhs := new(uint256.Int).Mul(&s.Approved.Int, uint256.NewInt(3))
	rhs := new(uint256.Int).Mul(&s.Total.Int, uint256.NewInt(2))
	return lhs.Gt(rhs)
}
