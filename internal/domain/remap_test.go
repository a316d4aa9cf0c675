package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapRangeEndpoints(t *testing.T) {
	tests := []struct {
		name string
		from Range[float64]
		to   Range[float64]
	}{
		{name: "registrations", from: Range[float64]{0, 15000}, to: Range[float64]{0.2, 1.0}},
		{name: "statuses", from: Range[float64]{0, 100000}, to: Range[float64]{0.2, 1.0}},
		{name: "inverted target", from: Range[float64]{-10, 10}, to: Range[float64]{5, -5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.to.Lo, MapRange(tc.from, tc.to, tc.from.Lo), 1e-9)
			require.InDelta(t, tc.to.Hi, MapRange(tc.from, tc.to, tc.from.Hi), 1e-9)
		})
	}
}

func TestMapRangeIsAffine(t *testing.T) {
	from := Range[float64]{0, 20000}
	to := Range[float64]{0.2, 1.0}
	a, b := 3000.0, 11000.0
	mid := MapRange(from, to, (a+b)/2)
	require.InDelta(t, (MapRange(from, to, a)+MapRange(from, to, b))/2, mid, 1e-9)
}

func TestMapRangeDoesNotClamp(t *testing.T) {
	from := Range[float64]{0, 15000}
	to := Range[float64]{0.2, 1.0}
	require.InDelta(t, 1.8, MapRange(from, to, 30000), 1e-9)
	require.Less(t, MapRange(from, to, -15000), 0.0)
}

func TestMapRangeZeroWidthSource(t *testing.T) {
	got := MapRange(Range[float64]{5, 5}, Range[float64]{0, 1}, 7)
	require.True(t, math.IsInf(got, 1))
	require.True(t, math.IsNaN(MapRange(Range[float64]{5, 5}, Range[float64]{0, 1}, 5)))
}

func TestMapRangeIntegers(t *testing.T) {
	require.Equal(t, 50, MapRange(Range[int]{0, 10}, Range[int]{0, 100}, 5))
}
