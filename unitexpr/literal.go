// SPDX-License-Identifier: MIT

package unitexpr

// Literal parses "<number> <unit>" strings against a flat unit table, where
// every key is a complete unit spelling ("mi/hr", "kgm^2/s^2") mapped to its
// conversion factor. The unit is read as one token, so "1 m m" and
// "60 C/min K^2" are rejected rather than re-interpreted as algebra.
//
// A table holding only the "1" token describes a dimensionless quantity: the
// literal is then a bare number and any unit, "1" included, is rejected.
type Literal struct {
	table    map[string]float64
	tokens   []string
	unitless bool
}

// NewLiteral builds a parser over table. The table is not copied and must
// not be modified afterwards.
func NewLiteral(table map[string]float64) *Literal {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	_, hasIdentity := table[Identity]
	return &Literal{
		table:    table,
		tokens:   sortTokens(keys),
		unitless: len(table) == 0 || (len(table) == 1 && hasIdentity),
	}
}

// Parse returns the amount described by s expressed in canonical units,
// i.e. the number multiplied by the factor of its unit.
func (l *Literal) Parse(s string) (float64, error) {
	n, unit, err := l.Split(s)
	if err != nil {
		return 0, err
	}
	if l.unitless {
		return n, nil
	}
	return n * l.table[unit], nil
}

// Split parses s like Parse but returns the number and the matched unit
// without applying the factor. Unitless literals report Identity.
func (l *Literal) Split(s string) (n float64, unit string, err error) {
	r := reader{input: s}
	n, err = r.readLiteralNumber()
	if err != nil {
		return 0, "", err
	}
	if l.unitless {
		if !r.atEnd() {
			return 0, "", badInputf("unexpected %q after dimensionless amount in %q", r.rest(), s)
		}
		return n, Identity, nil
	}
	tok, ok := r.matchToken(l.tokens)
	if !ok {
		return 0, "", badInputf("no unit matches %q in %q", r.rest(), s)
	}
	if !r.atEnd() {
		return 0, "", badInputf("unexpected %q after unit %q in %q", r.rest(), tok, s)
	}
	return n, tok, nil
}

// Unitless reports whether the literal accepts bare numbers only.
func (l *Literal) Unitless() bool { return l.unitless }
