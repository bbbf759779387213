// SPDX-License-Identifier: MIT

package catalog

import (
	"math"

	"github.com/katalvlaran/physq/dimension"
)

// Group is a set of synonymous tokens sharing one conversion factor.
type Group struct {
	Tokens []string
	Factor float64
}

// Table is the ordered synonym list of one base dimension. Order matters:
// it drives the order of generated units and which spelling wins a clash.
type Table []Group

// Entry is one flattened token of a Table.
type Entry struct {
	Token  string
	Factor float64
}

// Flatten expands t into one Entry per token, preserving order. A token
// listed twice, a missing token or a factor that is not a positive finite
// number fails with ErrBadUnitDictionary.
func Flatten(t Table) ([]Entry, error) {
	out := make([]Entry, 0, len(t))
	seen := make(map[string]struct{})
	for _, g := range t {
		if g.Factor <= 0 || math.IsInf(g.Factor, 0) || math.IsNaN(g.Factor) {
			return nil, badDictionaryf("factor %g of %v", g.Factor, g.Tokens)
		}
		for _, tok := range g.Tokens {
			if tok == "" {
				return nil, badDictionaryf("empty token in %v", g.Tokens)
			}
			if _, dup := seen[tok]; dup {
				return nil, badDictionaryf("token %q listed twice", tok)
			}
			seen[tok] = struct{}{}
			out = append(out, Entry{Token: tok, Factor: g.Factor})
		}
	}
	return out, nil
}

// Primitives holds one Table per base dimension.
type Primitives struct {
	Tables [dimension.NumBases]Table
}

// Table returns the table of base b.
func (p *Primitives) Table(b dimension.Base) Table { return p.Tables[b] }

// Validate flattens every table and checks that no token is shared by two
// bases and that no table is empty.
func (p *Primitives) Validate() error {
	_, err := p.flatten()
	return err
}

func (p *Primitives) flatten() ([dimension.NumBases][]Entry, error) {
	var flat [dimension.NumBases][]Entry
	owner := make(map[string]dimension.Base)
	for _, b := range dimension.Bases() {
		entries, err := Flatten(p.Tables[b])
		if err != nil {
			return flat, err
		}
		if len(entries) == 0 {
			return flat, badDictionaryf("no units for base %s", b)
		}
		for _, e := range entries {
			if e.Token == "1" {
				return flat, badDictionaryf("token %q is reserved", e.Token)
			}
			if prev, dup := owner[e.Token]; dup {
				return flat, badDictionaryf("token %q used by %s and %s", e.Token, prev, b)
			}
			owner[e.Token] = b
		}
		flat[b] = entries
	}
	return flat, nil
}

// Standard returns a fresh copy of the built-in tables:
//
//	M      kg=1  g=0.001
//	L      m=1   mi=1609.344  km=1000  marathon=42194.988
//	T      s=1   min=60  hr=3600
//	Q      C=1
//	Theta  K=1   R=5/9
//
// each with its spelled-out synonyms.
func Standard() *Primitives {
	return &Primitives{Tables: [dimension.NumBases]Table{
		dimension.M: {
			{Tokens: []string{"kg", "kilogram", "kilograms"}, Factor: 1},
			{Tokens: []string{"g", "gr", "gram", "grams"}, Factor: 0.001},
		},
		dimension.L: {
			{Tokens: []string{"m", "meter", "meters"}, Factor: 1},
			{Tokens: []string{"mi", "mile", "miles"}, Factor: 1609.344},
			{Tokens: []string{"km", "kilometer", "kilometers"}, Factor: 1000},
			{Tokens: []string{"marathon"}, Factor: 42194.988},
		},
		dimension.T: {
			{Tokens: []string{"s", "sec", "secs", "second", "seconds"}, Factor: 1},
			{Tokens: []string{"min", "mins", "minute", "minutes"}, Factor: 60},
			{Tokens: []string{"hr", "hrs", "hour", "hours"}, Factor: 3600},
		},
		dimension.Q: {
			{Tokens: []string{"C", "coulomb"}, Factor: 1},
		},
		dimension.Theta: {
			{Tokens: []string{"K", "kelvin"}, Factor: 1},
			{Tokens: []string{"R", "rankine"}, Factor: 5.0 / 9.0},
		},
	}}
}
