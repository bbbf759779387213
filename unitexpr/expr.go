// SPDX-License-Identifier: MIT

package unitexpr

import (
	"math"
	"strconv"
	"strings"
)

// Identity is the dimensionless placeholder token. It is part of every
// token set and evaluates to the algebra identity unless the value table
// supplies its own entry.
const Identity = "1"

// Algebra describes the operations needed to evaluate an Expression over
// values of type V.
type Algebra[V any] interface {
	// Identity returns the multiplicative identity.
	Identity() V
	// Mul returns a*b.
	Mul(a, b V) V
	// Div returns a/b.
	Div(a, b V) V
	// Pow returns base**exp, or an error if exp cannot be applied to base.
	Pow(base V, exp float64) (V, error)
}

// Float is the float64 Algebra used to evaluate conversion factors.
type Float struct{}

func (Float) Identity() float64       { return 1 }
func (Float) Mul(a, b float64) float64 { return a * b }
func (Float) Div(a, b float64) float64 { return a / b }

func (Float) Pow(base, exp float64) (float64, error) {
	if exp == 1 {
		return base, nil
	}
	return math.Pow(base, exp), nil
}

// factor is one term of a numerator: a token or a parenthesised group,
// optionally raised to a power.
type factor struct {
	token  string
	group  *Expression
	exp    float64
	hasExp bool
}

// Expression is a compiled unit-algebra string.
type Expression struct {
	src string
	num []factor
	den []factor
}

// Compile parses src against the given token set. "1" is always added to
// the set. The whole input must be consumed.
func Compile(src string, tokens []string) (*Expression, error) {
	p := &parser{
		r:      reader{input: src},
		tokens: sortTokens(append(append([]string(nil), tokens...), Identity)),
	}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.r.atEnd() {
		return nil, badInputf("unexpected %q at offset %d in %q", p.r.rest(), p.r.pos, src)
	}
	e.src = src
	return e, nil
}

// Source returns the string the expression was compiled from.
func (e *Expression) Source() string { return e.src }

// String renders the compiled tree, with explicit grouping and exponents.
func (e *Expression) String() string {
	var sb strings.Builder
	e.render(&sb)
	return sb.String()
}

func (e *Expression) render(sb *strings.Builder) {
	renderFactors(sb, e.num)
	if len(e.den) > 0 {
		sb.WriteByte('/')
		renderFactors(sb, e.den)
	}
}

func renderFactors(sb *strings.Builder, fs []factor) {
	for _, f := range fs {
		if f.group != nil {
			sb.WriteByte('(')
			f.group.render(sb)
			sb.WriteByte(')')
		} else {
			sb.WriteString(f.token)
		}
		if f.hasExp {
			sb.WriteByte('^')
			sb.WriteString(strconv.FormatFloat(f.exp, 'g', -1, 64))
		}
	}
}

// Evaluate computes the value of e with every token replaced by its entry
// in table and combined through alg.
func Evaluate[V any](e *Expression, table map[string]V, alg Algebra[V]) (V, error) {
	num, err := evalFactors(e.num, table, alg)
	if err != nil {
		return num, err
	}
	if len(e.den) == 0 {
		return num, nil
	}
	den, err := evalFactors(e.den, table, alg)
	if err != nil {
		return den, err
	}
	return alg.Div(num, den), nil
}

// Eval compiles src against the keys of table and evaluates it.
func Eval[V any](src string, table map[string]V, alg Algebra[V]) (V, error) {
	tokens := make([]string, 0, len(table))
	for k := range table {
		tokens = append(tokens, k)
	}
	e, err := Compile(src, tokens)
	if err != nil {
		var zero V
		return zero, err
	}
	return Evaluate(e, table, alg)
}

func evalFactors[V any](fs []factor, table map[string]V, alg Algebra[V]) (V, error) {
	acc := alg.Identity()
	for _, f := range fs {
		var (
			v   V
			err error
		)
		switch {
		case f.group != nil:
			v, err = Evaluate(f.group, table, alg)
			if err != nil {
				return v, err
			}
		default:
			var ok bool
			v, ok = table[f.token]
			if !ok {
				if f.token != Identity {
					return v, badInputf("token %q has no value", f.token)
				}
				v = alg.Identity()
			}
		}
		if f.hasExp {
			v, err = alg.Pow(v, f.exp)
			if err != nil {
				return v, err
			}
		}
		acc = alg.Mul(acc, v)
	}
	return acc, nil
}

type parser struct {
	r      reader
	tokens []string
}

func (p *parser) expression() (*Expression, error) {
	num, err := p.numerator()
	if err != nil {
		return nil, err
	}
	e := &Expression{num: num}
	if p.r.consume('/') {
		den, err := p.numerator()
		if err != nil {
			return nil, err
		}
		e.den = den
	}
	return e, nil
}

// numerator reads one or more terms.
func (p *parser) numerator() ([]factor, error) {
	var out []factor
	for {
		f, ok, err := p.term()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		if p.r.atEnd() {
			return nil, badInputf("unexpected end of input in %q", p.r.input)
		}
		return nil, badInputf("no unit matches %q at offset %d in %q", p.r.rest(), p.r.pos, p.r.input)
	}
	return out, nil
}

// term reads a single factor. ok is false when nothing at the cursor can
// start a term, which ends the enclosing numerator.
func (p *parser) term() (f factor, ok bool, err error) {
	switch {
	case p.r.consume('('):
		g, err := p.expression()
		if err != nil {
			return f, false, err
		}
		if !p.r.consume(')') {
			return f, false, badInputf("missing ')' at offset %d in %q", p.r.pos, p.r.input)
		}
		f.group = g
	default:
		tok, matched := p.r.matchToken(p.tokens)
		if !matched {
			return f, false, nil
		}
		f.token = tok
	}
	if p.r.consume('^') {
		f.exp, err = p.r.readExponent()
		if err != nil {
			return f, false, err
		}
		f.hasExp = true
	}
	return f, true, nil
}
