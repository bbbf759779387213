// SPDX-License-Identifier: MIT

package quantity

import (
	"strconv"

	"github.com/katalvlaran/physq/dimension"
)

// Kind enumerates the built-in quantity types. Generic covers every
// dimension without a registered type, and user-registered types.
type Kind int

const (
	Generic Kind = iota
	Dimensionless
	Mass
	Distance
	Time
	Charge
	Temperature
	Speed
	Energy
)

var kindNames = [...]string{
	Generic:       "Quantity",
	Dimensionless: "Dimensionless",
	Mass:          "Mass",
	Distance:      "Distance",
	Time:          "Time",
	Charge:        "Charge",
	Temperature:   "Temperature",
	Speed:         "Speed",
	Energy:        "Energy",
}

var kindDims = [...]dimension.Dimension{
	Dimensionless: dimension.Dimensionless,
	Mass:          dimension.Mass,
	Distance:      dimension.Length,
	Time:          dimension.Time,
	Charge:        dimension.Charge,
	Temperature:   dimension.Temperature,
	Speed:         dimension.Velocity,
	Energy:        dimension.Energy,
}

// Kinds returns the built-in kinds other than Generic, in registration
// order.
func Kinds() []Kind {
	return []Kind{Dimensionless, Mass, Distance, Time, Charge, Temperature, Speed, Energy}
}

func (k Kind) valid() bool { return k >= Generic && int(k) < len(kindNames) }

// String returns the kind name; Generic is "Quantity".
func (k Kind) String() string {
	if !k.valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Dimension returns the fixed dimension of a built-in kind. ok is false
// for Generic and unknown kinds.
func (k Kind) Dimension() (d dimension.Dimension, ok bool) {
	if k == Generic || !k.valid() {
		return dimension.Dimension{}, false
	}
	return kindDims[k], true
}
