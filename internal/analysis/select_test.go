package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

func points(ages ...int) []extract.CashValuePoint {
	out := make([]extract.CashValuePoint, 0, len(ages))
	for _, a := range ages {
		out = append(out, extract.CashValuePoint{Age: a, Value: float64(a) * 100})
	}
	return out
}

func TestSelectAges(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		assert.Nil(t, SelectAges(nil, 10))
	})

	t.Run("dense table picks horizons and final", func(t *testing.T) {
		// ages 40..80
		var ages []int
		for a := 40; a <= 80; a++ {
			ages = append(ages, a)
		}
		got := SelectAges(points(ages...), 18)

		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), maxSelectedAges)
		assert.Contains(t, got, 80, "final year must always be included")
		assert.Contains(t, got, 58, "breakeven year (40+18)")
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], "selected ages must be ascending")
		}
	})

	t.Run("no breakeven", func(t *testing.T) {
		got := SelectAges(points(30, 35, 40, 50, 60), 0)
		require.NotEmpty(t, got)
		assert.Contains(t, got, 60)
		assert.NotContains(t, got, 29)
	})

	t.Run("sparse table snaps to next tabulated age", func(t *testing.T) {
		got := SelectAges(points(40, 55, 70, 85), 5)
		// breakeven target 45 snaps forward to 55
		assert.Contains(t, got, 55)
		assert.Contains(t, got, 85)
	})

	t.Run("tiny table", func(t *testing.T) {
		got := SelectAges(points(50), 3)
		assert.Equal(t, []int{50}, got)
	})

	t.Run("deduplicates collapsed targets", func(t *testing.T) {
		got := SelectAges(points(60, 65), 30)
		// every target lands on 65 or snaps to the final age
		seen := map[int]bool{}
		for _, a := range got {
			assert.False(t, seen[a], "age %d selected twice", a)
			seen[a] = true
		}
	})
}

func TestMergeCashValues(t *testing.T) {
	a := []extract.CashValuePoint{{Age: 40, Value: 100}, {Age: 50, Value: 200}}
	b := []extract.CashValuePoint{{Age: 45, Value: 150}, {Age: 50, Value: 500}}

	got := MergeCashValues(a, b)
	require.Len(t, got, 3)
	assert.Equal(t, []extract.CashValuePoint{
		{Age: 40, Value: 100},
		{Age: 45, Value: 150},
		{Age: 50, Value: 500}, // higher value wins the collision
	}, got)
}
