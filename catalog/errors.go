// SPDX-License-Identifier: MIT

package catalog

import "github.com/go-faster/errors"

var (
	// ErrBadUnitDictionary indicates an unusable primitive table: a token
	// listed twice, an empty table or a non-positive factor.
	ErrBadUnitDictionary = errors.New("catalog: bad unit dictionary")

	// ErrNilPrimitives is returned by Use when handed a nil table set.
	ErrNilPrimitives = errors.New("catalog: primitives are nil")
)

func badDictionaryf(format string, args ...any) error {
	return errors.Errorf("%w: "+format, append([]any{ErrBadUnitDictionary}, args...)...)
}
