// SPDX-License-Identifier: MIT

package unitexpr

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// literalNumber is the lexical form of the leading amount of a quantity
// literal. Scientific notation is allowed here and nowhere else.
var literalNumber = regexp.MustCompile(`^[+-]?\d+(\.\d*)?([eE][+-]?\d+)?`)

// reader walks an input string byte by byte. Whitespace between lexemes is
// insignificant, so every consuming method skips it first.
type reader struct {
	input string
	pos   int
}

func (r *reader) skipSpace() {
	for r.pos < len(r.input) {
		switch r.input[r.pos] {
		case ' ', '\t', '\n', '\r':
			r.pos++
		default:
			return
		}
	}
}

// atEnd reports whether only whitespace is left.
func (r *reader) atEnd() bool {
	r.skipSpace()
	return r.pos >= len(r.input)
}

func (r *reader) rest() string {
	return r.input[r.pos:]
}

// consume advances past c if it is the next non-space byte.
func (r *reader) consume(c byte) bool {
	r.skipSpace()
	if r.pos < len(r.input) && r.input[r.pos] == c {
		r.pos++
		return true
	}
	return false
}

// matchToken consumes the longest token that prefixes the remaining input.
// tokens must be ordered longest first (see sortTokens).
func (r *reader) matchToken(tokens []string) (string, bool) {
	r.skipSpace()
	rest := r.rest()
	for _, tok := range tokens {
		if strings.HasPrefix(rest, tok) {
			r.pos += len(tok)
			return tok, true
		}
	}
	return "", false
}

// readExponent reads the number after '^': a run of digits, signs and dots
// handed to strconv. Exponent notation is not part of this form.
func (r *reader) readExponent() (float64, error) {
	r.skipSpace()
	start := r.pos
	for r.pos < len(r.input) {
		c := r.input[r.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' {
			r.pos++
			continue
		}
		break
	}
	raw := r.input[start:r.pos]
	if raw == "" {
		return 0, badInputf("missing exponent at offset %d in %q", start, r.input)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badInputf("invalid exponent %q in %q", raw, r.input)
	}
	return v, nil
}

// readLiteralNumber reads the leading amount of a quantity literal.
func (r *reader) readLiteralNumber() (float64, error) {
	r.skipSpace()
	raw := literalNumber.FindString(r.rest())
	if raw == "" {
		return 0, badInputf("expected a number at offset %d in %q", r.pos, r.input)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, badInputf("invalid number %q in %q", raw, r.input)
	}
	r.pos += len(raw)
	return v, nil
}

// sortTokens returns a copy of tokens ordered by decreasing length, then
// lexicographically, so that the first prefix match is the longest one.
func sortTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
