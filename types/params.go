package types

import (
	"fmt"
)

// Network selects the chain the client follows.
type Network string

const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Localnet Network = "localnet"
)

// DefaultNumSeats is the number of block producer seats the protocol
// allocates per epoch.
const DefaultNumSeats = 50

// Params carries the protocol constants the verification core depends
// on. They are threaded through constructors explicitly so tests can run
// with small seat counts.
type Params struct {
	// NumSeats is the fixed capacity of an epoch's block producer set.
	// Sets with fewer producers are padded with placeholder seats.
	NumSeats int

	// AccountIDMaxLength is the width account identifiers are padded to
	// in fixed-width encodings.
	AccountIDMaxLength int

	Network Network
}

// DefaultParams returns the mainnet constants.
func DefaultParams() Params {
	return Params{
		NumSeats:           DefaultNumSeats,
		AccountIDMaxLength: MaxAccountIDLength,
		Network:            Mainnet,
	}
}

// MainnetParams is an alias for DefaultParams.
func MainnetParams() Params { return DefaultParams() }

func TestnetParams() Params {
	p := DefaultParams()
	p.Network = Testnet
	return p
}

func LocalnetParams() Params {
	p := DefaultParams()
	p.Network = Localnet
	return p
}

// ValidateBasic performs basic validation of the parameters.
func (p Params) ValidateBasic() error {
	if p.NumSeats <= 0 {
		return fmt.Errorf("num seats must be positive, got %d", p.NumSeats)
	}
	if p.AccountIDMaxLength < MinAccountIDLength {
		return fmt.Errorf("account id max length %d below the minimum id length %d",
			p.AccountIDMaxLength, MinAccountIDLength)
	}
	switch p.Network {
	case Mainnet, Testnet, Localnet:
	default:
		return fmt.Errorf("unknown network %q", p.Network)
	}
	return nil
}
