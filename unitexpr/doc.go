// SPDX-License-Identifier: MIT

// Package unitexpr parses and evaluates unit-algebra strings such as
// "kgm^2/s^2", "L/T" or "60 mi/hr".
//
// Two grammars share one lexer:
//
//	term        := token ['^' number] | '(' expression ')' ['^' number]
//	numerator   := term+
//	expression  := numerator ['/' numerator]
//	quantity    := number token
//
// An Expression is compiled once against a token set and then evaluated
// against any value table through an Algebra: the float64 algebra turns
// "kgm^2/s^2" into a conversion factor, the dimension package plugs its own
// algebra in to turn "ML^2/T^2" into exponents. Tokens are matched exactly
// (case-sensitive) and the longest matching alternative wins, so "min" is
// never read as "mi" followed by "n". The token "1" is always available and
// evaluates to the algebra identity.
//
// A Literal parses "<number> <unit>" strings against a flat unit table and
// accepts scientific notation in the number.
//
// Every failure (bad number, unknown token, trailing input) is reported as an
// error matching ErrBadInput; no partial result is ever returned.
package unitexpr
