package types

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// Balance is an amount of tokens in indivisible units. On chain it is an
// unsigned 128-bit integer; RPC renders it as a decimal string. The
// arithmetic runs on 256 bits so seat tallies and threshold products
// never overflow.
type Balance struct {
	uint256.Int
}

// NewBalance returns a balance holding v.
func NewBalance(v uint64) Balance {
	var b Balance
	b.SetUint64(v)
	return b
}

// ParseBalance reads the decimal string form, rejecting values that do
// not fit the chain's 128-bit stake width.
func ParseBalance(s string) (Balance, error) {
	var b Balance
	if err := b.SetFromDecimal(s); err != nil {
		return Balance{}, fmt.Errorf("invalid balance %q: %w", s, err)
	}
	if b.BitLen() > 128 {
		return Balance{}, fmt.Errorf("balance %q exceeds 128 bits", s)
	}
	return b, nil
}

// String returns the decimal form.
func (b Balance) String() string { return b.Dec() }

// IsZero reports whether the balance is zero. The value receiver keeps
// it callable on function returns, unlike the promoted pointer method.
func (b Balance) IsZero() bool { return b.Int.IsZero() }

// BigInt returns the value as a big.Int, the form the chain's
// serialization layer consumes.
func (b Balance) BigInt() *big.Int { return b.ToBig() }

// Cmp compares b and other and returns -1, 0 or +1.
func (b Balance) Cmp(other Balance) int { return b.Int.Cmp(&other.Int) }

func (b Balance) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.Dec() + `"`), nil
}

func (b *Balance) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
