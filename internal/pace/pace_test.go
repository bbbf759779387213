// SPDX-License-Identifier: MIT

package pace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/physq/internal/pace"
	"github.com/katalvlaran/physq/quantity"
)

func newSystem(t *testing.T) *quantity.System {
	t.Helper()
	sys, err := quantity.NewSystem()
	require.NoError(t, err)
	return sys
}

func metric() pace.Options {
	return pace.Options{
		From:      10,
		Step:      2,
		Count:     3,
		SpeedUnit: "km/hr",
		Distances: []string{"400 m", "5 km"},
	}
}

func TestBuild_Default(t *testing.T) {
	tbl, err := pace.Build(newSystem(t), pace.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "mph", tbl.SpeedLabel)
	assert.Equal(t, []string{"1mi", "5k", "10k", "half", "full"}, tbl.Labels)
	require.Len(t, tbl.Rows, 29)

	first := tbl.Rows[0]
	assert.Equal(t, 5.0, first.Speed)
	assert.Equal(t, []string{"12:00", "37:16", "1:14:33", "2:37:18", "5:14:37"}, first.Paces)

	// 10 mph: a six minute mile.
	assert.InDelta(t, 10.0, tbl.Rows[25].Speed, 1e-9)
	assert.Equal(t, "06:00", tbl.Rows[25].Paces[0])
}

func TestBuild_Errors(t *testing.T) {
	sys := newSystem(t)
	tests := []struct {
		name   string
		mutate func(*pace.Options)
		target error
	}{
		{name: "no rows", mutate: func(o *pace.Options) { o.Count = 0 }, target: pace.ErrOptions},
		{name: "zero speed", mutate: func(o *pace.Options) { o.From = 0 }, target: pace.ErrOptions},
		{name: "no distances", mutate: func(o *pace.Options) { o.Distances = nil }, target: pace.ErrOptions},
		{name: "bad distance", mutate: func(o *pace.Options) { o.Distances = []string{"5 kg"} }, target: quantity.ErrBadInput},
		{name: "bad speed unit", mutate: func(o *pace.Options) { o.SpeedUnit = "m" }, target: quantity.ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := pace.DefaultOptions()
			tt.mutate(&o)
			_, err := pace.Build(sys, o)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "half", pace.Label("0.5 marathon"))
	assert.Equal(t, "mph", pace.Label("mi/hr"))
	assert.Equal(t, "400m", pace.Label("400 m"))
	assert.Equal(t, "m/s", pace.Label("m/s"))
}

func TestParseFormat(t *testing.T) {
	f, err := pace.ParseFormat("LaTeX")
	require.NoError(t, err)
	assert.Equal(t, pace.LaTeX, f)

	_, err = pace.ParseFormat("html")
	assert.ErrorIs(t, err, pace.ErrFormat)

	tbl, err := pace.Build(newSystem(t), metric())
	require.NoError(t, err)
	assert.ErrorIs(t, tbl.Render(&bytes.Buffer{}, pace.Format("csv")), pace.ErrFormat)
}

//----------------------------------------------------------------------------//
// Golden renderings
//----------------------------------------------------------------------------//

func TestRender_Golden(t *testing.T) {
	sys := newSystem(t)
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	tables := map[string]pace.Options{
		"default": pace.DefaultOptions(),
		"metric":  metric(),
	}
	for name, o := range tables {
		tbl, err := pace.Build(sys, o)
		require.NoError(t, err)
		for _, f := range []pace.Format{pace.Text, pace.LaTeX} {
			var buf bytes.Buffer
			require.NoError(t, tbl.Render(&buf, f))
			g.Assert(t, name+"."+string(f), buf.Bytes())
		}
	}
}

func TestWriteText_Aligned(t *testing.T) {
	tbl, err := pace.Build(newSystem(t), metric())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteText(&buf))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines[1:] {
		assert.Len(t, l, len(lines[0]))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestRender_WriteError(t *testing.T) {
	tbl, err := pace.Build(newSystem(t), metric())
	require.NoError(t, err)

	assert.ErrorIs(t, tbl.WriteText(failingWriter{}), assert.AnError)
	assert.ErrorIs(t, tbl.WriteLaTeX(failingWriter{}), assert.AnError)
}
