// SPDX-License-Identifier: MIT

package distance_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpaths/distance"
)

func TestDistance_ZeroValueIsInfinite(t *testing.T) {
	var d distance.Distance
	require.True(t, d.IsInfinite())
	require.True(t, d.Equal(distance.Infinite()))
}

func TestDistance_Value(t *testing.T) {
	v, err := distance.Finite(-7).Value()
	require.NoError(t, err)
	require.Equal(t, int64(-7), v)

	_, err = distance.Infinite().Value()
	require.ErrorIs(t, err, distance.ErrInfiniteValueAccess)
}

func TestDistance_MustValuePanicsOnInfinity(t *testing.T) {
	require.Equal(t, int64(3), distance.Finite(3).MustValue())
	require.PanicsWithError(t, distance.ErrInfiniteValueAccess.Error(), func() {
		_ = distance.Infinite().MustValue()
	})
}

func TestDistance_Ordering(t *testing.T) {
	inf := distance.Infinite()
	cases := []struct {
		a, b distance.Distance
		want int
	}{
		{distance.Finite(1), distance.Finite(2), -1},
		{distance.Finite(2), distance.Finite(2), 0},
		{distance.Finite(5), distance.Finite(-5), 1},
		{distance.Finite(math.MaxInt64), inf, -1},
		{inf, distance.Finite(math.MinInt64), 1},
		{inf, inf, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_vs_%s", tc.a, tc.b), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Compare(tc.b))
			assert.Equal(t, tc.want < 0, tc.a.Less(tc.b))
			assert.Equal(t, tc.want == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestDistance_AdditionAbsorbsInfinity(t *testing.T) {
	inf := distance.Infinite()

	assert.True(t, inf.AddWeight(-1000).IsInfinite(), "inf + negative weight must stay inf")
	assert.True(t, inf.Add(distance.Finite(-1)).IsInfinite())
	assert.True(t, distance.Finite(4).Add(inf).IsInfinite())
	assert.True(t, inf.Add(inf).IsInfinite())

	assert.Equal(t, distance.Finite(1), distance.Finite(4).AddWeight(-3))
	assert.Equal(t, distance.Finite(9), distance.Finite(4).Add(distance.Finite(5)))
}

func TestDistance_EqualityComparesTagThenValue(t *testing.T) {
	// An infinite distance must never equal a finite one, whatever the stored value.
	assert.False(t, distance.Infinite().Equal(distance.Finite(0)))
	assert.False(t, distance.Finite(0).Equal(distance.Infinite()))
	assert.True(t, distance.Finite(0).Equal(distance.Finite(0)))
}

func TestDistance_StringAndMin(t *testing.T) {
	assert.Equal(t, "inf", distance.Infinite().String())
	assert.Equal(t, "-2", distance.Finite(-2).String())

	assert.Equal(t, distance.Finite(1), distance.Min(distance.Finite(1), distance.Infinite()))
	assert.Equal(t, distance.Finite(-1), distance.Min(distance.Finite(2), distance.Finite(-1)))
	assert.True(t, distance.Min(distance.Infinite(), distance.Infinite()).IsInfinite())
}

func ExampleDistance() {
	d := distance.Finite(5)
	inf := distance.Infinite()

	fmt.Println(d.AddWeight(-2), inf.AddWeight(-2), d.Less(inf))
	// Output: 3 inf true
}
