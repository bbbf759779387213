// SPDX-License-Identifier: MIT

// Package quantity implements physical quantities: amounts tagged with a
// dimension whose arithmetic checks and derives dimensions at run time.
//
// A System owns the unit catalogs (package catalog) and a Registry mapping
// dimensions to quantity types. Every Quantity is created by a System:
//
//	sys, _ := quantity.NewSystem()
//	d, _ := sys.Distance("10 km")
//	t, _ := sys.Time("40 min")
//	v, _ := d.Div(t)   // a Speed, found through the registry
//	v.Get("mi/hr")     // 9.32...
//
// Types:
//
//	Built-in kinds (Dimensionless, Mass, Distance, Time, Charge,
//	Temperature, Speed, Energy) are registered by NewSystem. Any other
//	dimension resolves to a Generic type. Add and Sub return the type
//	registered for the shared dimension; Mul, Div and Pow compute the
//	result dimension first and resolve it the same way, so Distance/Time
//	is a Speed and Speed*Time a Distance.
//
// Units:
//
//	Get and Set convert through the catalog factor of a unit. Types may add
//	conversions the catalog cannot express: Temperature reads and writes
//	"C" and "F" relative to "K", Energy reads and writes "J" and "Btu"
//	relative to "kgm^2/s^2".
//
// Errors:
//
//	ErrIncompatibleUnits – mismatched dimensions for From, Add, Sub and ordering.
//	ErrUnknownUnit       – a unit outside the catalog and conversions.
//	ErrNoAmount          – reading a quantity that was never set.
//	ErrQuantity          – nil system/operand, non-dimensionless exponent.
//	ErrBadInput          – a literal that does not parse.
//
// Quantities are plain mutable values; share them across goroutines only
// with external synchronisation. Systems and registries are safe for
// concurrent use.
package quantity
