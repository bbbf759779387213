// SPDX-License-Identifier: MIT

// Package physq is your runtime toolkit for physical quantities: amounts
// that carry a dimension and convert between every unit that spells it.
//
// 🚀 What is physq?
//
//	A small, thread-safe library that brings together:
//		• Dimension algebra: rational exponents over M, L, T, Q and Theta
//		• Unit expressions: "kgm^2/s^2", "(m/s)^2", "1/hr" parsed and evaluated
//		• Unit catalogs: every spelling of a dimension with its factor, cached
//		• Typed quantities: Mass, Distance, Time, Speed, Energy, Temperature...
//		• Pace tables: the running-pace CLI in cmd/pacetable
//
// ✨ Why choose physq?
//
//   - No code generation – new dimensions appear as soon as they are used
//   - Checked arithmetic – adding metres to seconds is an error, not a bug
//   - Extensible – swap the primitive unit tables or register your own types
//
// Under the hood, everything is organized under four subpackages:
//
//	dimension/ - Rat exponents, Dimension vectors, signature parsing
//	unitexpr/  - unit-algebra tokenizer, evaluator and literal reader
//	catalog/   - primitive unit tables and the cached UnitSystem
//	quantity/  - Quantity, Type, Registry and the System that ties them up
//
// Quick example:
//
//	sys, _ := quantity.NewSystem()
//	d, _ := sys.Distance("10 km")
//	t, _ := sys.Time("40 min")
//	v, _ := d.Div(t) // Speed
//	mph, _ := v.Get("mi/hr") // 9.32
//
//	go get github.com/katalvlaran/physq
package physq
