// SPDX-License-Identifier: MIT

package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/physq/catalog"
	"github.com/katalvlaran/physq/dimension"
)

func TestFlatten_PreservesOrder(t *testing.T) {
	entries, err := catalog.Flatten(catalog.Standard().Table(dimension.T))
	require.NoError(t, err)
	require.Len(t, entries, 13)
	assert.Equal(t, catalog.Entry{Token: "s", Factor: 1}, entries[0])
	assert.Equal(t, catalog.Entry{Token: "min", Factor: 60}, entries[5])
	assert.Equal(t, catalog.Entry{Token: "hours", Factor: 3600}, entries[12])
}

func TestFlatten_Errors(t *testing.T) {
	cases := map[string]catalog.Table{
		"duplicate in group": {{Tokens: []string{"m", "m"}, Factor: 1}},
		"duplicate in table": {{Tokens: []string{"m"}, Factor: 1}, {Tokens: []string{"m"}, Factor: 2}},
		"zero factor":        {{Tokens: []string{"m"}, Factor: 0}},
		"negative factor":    {{Tokens: []string{"m"}, Factor: -1}},
		"infinite factor":    {{Tokens: []string{"m"}, Factor: math.Inf(1)}},
		"empty token":        {{Tokens: []string{""}, Factor: 1}},
	}
	for name, tbl := range cases {
		_, err := catalog.Flatten(tbl)
		assert.ErrorIs(t, err, catalog.ErrBadUnitDictionary, name)
	}
}

func TestPrimitives_Validate(t *testing.T) {
	require.NoError(t, catalog.Standard().Validate())

	crossBase := catalog.Standard()
	crossBase.Tables[dimension.Theta] = append(crossBase.Tables[dimension.Theta],
		catalog.Group{Tokens: []string{"s"}, Factor: 1})
	assert.ErrorIs(t, crossBase.Validate(), catalog.ErrBadUnitDictionary)

	empty := catalog.Standard()
	empty.Tables[dimension.Q] = nil
	assert.ErrorIs(t, empty.Validate(), catalog.ErrBadUnitDictionary)

	reserved := catalog.Standard()
	reserved.Tables[dimension.M] = append(reserved.Tables[dimension.M],
		catalog.Group{Tokens: []string{"1"}, Factor: 1})
	assert.ErrorIs(t, reserved.Validate(), catalog.ErrBadUnitDictionary)

	_, err := catalog.NewUnitSystem(catalog.WithPrimitives(crossBase))
	assert.ErrorIs(t, err, catalog.ErrBadUnitDictionary)
}

func TestStandard_IsFresh(t *testing.T) {
	a, b := catalog.Standard(), catalog.Standard()
	assert.NotSame(t, a, b)
	a.Tables[dimension.M][0].Factor = 2
	assert.Equal(t, 1.0, b.Tables[dimension.M][0].Factor)
}
