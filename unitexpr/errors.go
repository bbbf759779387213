// SPDX-License-Identifier: MIT

package unitexpr

import "github.com/go-faster/errors"

// ErrBadInput is returned for any string the grammar rejects: malformed
// numbers, tokens with no matching alternative, unbalanced parentheses and
// unconsumed trailing input. Callers match it with errors.Is.
var ErrBadInput = errors.New("unitexpr: bad input")

// badInputf decorates ErrBadInput with position details.
func badInputf(format string, args ...any) error {
	return errors.Errorf("%w: "+format, append([]any{ErrBadInput}, args...)...)
}
