// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"

	"github.com/go-faster/errors"
)

var (
	// ErrDimension reports a malformed construction: an unknown base symbol
	// or a dimension string that does not parse.
	ErrDimension = errors.New("dimension: malformed dimension")

	// ErrIncompatibleDimensions is returned by Add and Sub when the operands
	// differ.
	ErrIncompatibleDimensions = errors.New("dimension: incompatible dimensions")

	// ErrIrrationalExponent is returned by PowFloat when the exponent has no
	// close rational approximation.
	ErrIrrationalExponent = errors.New("dimension: exponent is not a small rational")

	// ErrExponentOverflow is returned when an exponent's numerator or
	// denominator no longer fits in an int64.
	ErrExponentOverflow = errors.New("dimension: exponent overflow")
)

// ParseError is returned by Parse. It matches ErrDimension and unwraps to
// the underlying cause (usually unitexpr.ErrBadInput).
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimension: cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDimension) hold for every parse failure.
func (e *ParseError) Is(target error) bool { return target == ErrDimension }
