// SPDX-License-Identifier: MIT

// Package pace builds running pace tables: for a range of speeds, the time
// each one takes to cover a set of race distances.
package pace

import (
	"strings"

	"github.com/go-faster/errors"

	"github.com/katalvlaran/physq/quantity"
)

// ErrOptions is returned by Build for an unusable table layout.
var ErrOptions = errors.New("pace: invalid options")

// Options describes the rows and columns of a table.
//
//	From, Step, Count - speeds From, From+Step, ... (Count rows).
//	SpeedUnit         - unit of the speeds, e.g. "mi/hr".
//	Distances         - one column per distance literal, e.g. "5 km".
type Options struct {
	From      float64
	Step      float64
	Count     int
	SpeedUnit string
	Distances []string
}

// DefaultOptions returns the classic table: 5 to 10.6 mph in 0.2 mph steps
// over the mile, 5k, 10k, half and full marathon.
func DefaultOptions() Options {
	return Options{
		From:      5,
		Step:      0.2,
		Count:     29,
		SpeedUnit: "mi/hr",
		Distances: []string{"1 mile", "5 km", "10 km", "0.5 marathon", "1 marathon"},
	}
}

// Row is one speed and its paces, rendered as clock strings, in column
// order.
type Row struct {
	Speed float64
	Paces []string
}

// Table is a computed pace table.
type Table struct {
	SpeedLabel string
	Labels     []string
	Rows       []Row
}

var labels = map[string]string{
	"1 mile":       "1mi",
	"5 km":         "5k",
	"10 km":        "10k",
	"0.5 marathon": "half",
	"1 marathon":   "full",
	"mi/hr":        "mph",
	"km/hr":        "kph",
}

// Label returns the column heading for a distance literal or speed unit:
// "half" for "0.5 marathon", "mph" for "mi/hr", otherwise s without spaces.
func Label(s string) string {
	if l, ok := labels[s]; ok {
		return l
	}
	return strings.ReplaceAll(s, " ", "")
}

// Build computes the table described by o using sys.
func Build(sys *quantity.System, o Options) (*Table, error) {
	switch {
	case o.Count <= 0:
		return nil, errors.Errorf("%w: count %d", ErrOptions, o.Count)
	case o.From <= 0 || o.Step < 0:
		return nil, errors.Errorf("%w: speeds from %g step %g", ErrOptions, o.From, o.Step)
	case len(o.Distances) == 0:
		return nil, errors.Errorf("%w: no distances", ErrOptions)
	}

	dists := make([]*quantity.Quantity, len(o.Distances))
	t := &Table{SpeedLabel: Label(o.SpeedUnit), Labels: make([]string, len(o.Distances))}
	for i, lit := range o.Distances {
		d, err := sys.Distance(lit)
		if err != nil {
			return nil, errors.Wrapf(err, "distance %q", lit)
		}
		dists[i], t.Labels[i] = d, Label(lit)
	}

	speed, err := sys.Of(quantity.Speed)
	if err != nil {
		return nil, err
	}
	t.Rows = make([]Row, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		// The conversion keeps the product from being fused into the sum.
		v := o.From + float64(float64(i)*o.Step)
		if err := speed.Set(o.SpeedUnit, v); err != nil {
			return nil, errors.Wrap(err, "speed unit")
		}
		row := Row{Speed: v, Paces: make([]string, len(dists))}
		for j, d := range dists {
			p, err := speed.Pace(d)
			if err != nil {
				return nil, err
			}
			if row.Paces[j], err = p.Clock(); err != nil {
				return nil, err
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
