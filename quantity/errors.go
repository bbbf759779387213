// SPDX-License-Identifier: MIT

package quantity

import (
	"github.com/go-faster/errors"

	"github.com/katalvlaran/physq/unitexpr"
)

var (
	// ErrIncompatibleUnits indicates an operation that needs equal
	// dimensions (construction from another quantity, ordering, Add, Sub)
	// was given different ones.
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")

	// ErrQuantity reports misuse: a nil system or operand, or a power whose
	// exponent quantity is not dimensionless.
	ErrQuantity = errors.New("quantity: invalid quantity")

	// ErrUnknownUnit indicates a unit token outside the quantity's catalog
	// and conversions.
	ErrUnknownUnit = errors.New("quantity: unknown unit")

	// ErrNoAmount indicates a read of a quantity whose amount was never set.
	ErrNoAmount = errors.New("quantity: amount not set")

	// ErrBadInput is returned when a literal does not parse.
	ErrBadInput = unitexpr.ErrBadInput
)

func incompatiblef(format string, args ...any) error {
	return errors.Errorf("%w: "+format, append([]any{ErrIncompatibleUnits}, args...)...)
}
