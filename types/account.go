package types

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	// MinAccountIDLength and MaxAccountIDLength bound legal account
	// identifiers.
	MinAccountIDLength = 2
	MaxAccountIDLength = 64

	// AccountDataSeparator fills the tail of a fixed-width account
	// encoding. It can never occur inside a legal identifier, so padding
	// is reversible.
	AccountDataSeparator byte = ','
)

var (
	ErrAccountTooShort           = errors.New("account id too short")
	ErrAccountTooLong            = errors.New("account id too long")
	ErrAccountInvalidChar        = errors.New("account id contains an invalid character")
	ErrAccountRedundantSeparator = errors.New("account id has a redundant separator")
)

// AccountID is a human-readable chain identifier such as "alice.near".
type AccountID string

func (id AccountID) String() string { return string(id) }

// Validate enforces the chain's account naming rules: length within
// bounds, lowercase alphanumerics, with '-', '_' and '.' acting as
// separators that may not lead, trail or repeat.
func (id AccountID) Validate() error {
	if len(id) < MinAccountIDLength {
		return fmt.Errorf("%q: %w", string(id), ErrAccountTooShort)
	}
	if len(id) > MaxAccountIDLength {
		return fmt.Errorf("%q: %w", string(id), ErrAccountTooLong)
	}

	lastCharIsSeparator := true
	for i := 0; i < len(id); i++ {
		c := id[i]
		var currentCharIsSeparator bool
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			currentCharIsSeparator = false
		case c == '-' || c == '_' || c == '.':
			currentCharIsSeparator = true
		default:
			return fmt.Errorf("%q at %d: %w", string(id), i, ErrAccountInvalidChar)
		}
		if currentCharIsSeparator && lastCharIsSeparator {
			return fmt.Errorf("%q at %d: %w", string(id), i, ErrAccountRedundantSeparator)
		}
		lastCharIsSeparator = currentCharIsSeparator
	}
	if lastCharIsSeparator {
		return fmt.Errorf("%q: %w", string(id), ErrAccountRedundantSeparator)
	}
	return nil
}

// PadAccountID encodes id into its canonical fixed-width form: the
// identifier bytes followed by AccountDataSeparator bytes up to width.
// Illegal identifiers and identifiers longer than width are rejected.
func PadAccountID(id AccountID, width int) ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(id) > width {
		return nil, ErrEncoding{Field: "account id", Want: width, Got: len(id)}
	}
	out := make([]byte, width)
	copy(out, id)
	for i := len(id); i < width; i++ {
		out[i] = AccountDataSeparator
	}
	return out, nil
}

// UnpadAccountID decodes the canonical fixed-width form: the identifier
// runs up to the first separator and must be legal. Bytes after the
// first separator are ignored.
func UnpadAccountID(raw []byte) (AccountID, error) {
	end := bytes.IndexByte(raw, AccountDataSeparator)
	if end < 0 {
		end = len(raw)
	}
	id := AccountID(raw[:end])
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}
