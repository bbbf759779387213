// SPDX-License-Identifier: MIT

// Package dimension models physical dimensions as vectors of rational
// exponents over five base dimensions:
//
//	M      mass
//	L      length
//	T      time
//	Q      charge
//	Theta  temperature
//
// A Dimension is an immutable, comparable value: two dimensions are equal
// exactly when all five exponents are equal, so == and map keys just work.
//
// ✨ Algebra:
//   - Mul / Div add or subtract exponents (Length.Div(Time) == Velocity).
//   - Pow scales every exponent; PowFloat accepts 0.5 for square roots.
//   - Add / Sub model adding two quantities of the same kind: they require
//     equal operands (ErrIncompatibleDimensions) and return the receiver.
//
// ⚙️ Encoding:
//
//	Canonical form (String): bases in M, L, T, Q, Theta order, positive
//	exponents in the numerator, negative ones after a single '/', exponent
//	1 omitted, "1" for an empty numerator:
//
//	  Energy.String()   == "ML^2/T^2"
//	  Energy.Template() == "{M}{L}^2/{T}^2"
//	  New(0, 0, -1, 0, 0).String() == "1/T"
//
//	Parse reads the same syntax back (plus whitespace and parentheses), so
//	Parse(d.String()) == d for every d.
//
// The canonical string is the dimension signature used as a cache and
// registry key by the catalog and quantity packages.
package dimension
