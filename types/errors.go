package types

import (
	"fmt"
)

// ErrEncoding means a fixed-width encoding had the wrong length. Width
// violations are corruption or programming errors and are never
// tolerated.
type ErrEncoding struct {
	Field string
	Want  int
	Got   int
}

func (e ErrEncoding) Error() string {
	return fmt.Sprintf("wrong %s length: got %d bytes, want %d", e.Field, e.Got, e.Want)
}
