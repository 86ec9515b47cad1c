package analysis

import (
	"sort"

	"github.com/advisorhq/proposal-pipeline/internal/extract"
)

// horizon offsets (in years from the first tabulated age) used alongside the
// breakeven and final years when picking comparison ages.
var horizonOffsets = []int{5, 10, 20}

// maxSelectedAges caps how many ages the comparison table shows.
const maxSelectedAges = 5

// SelectAges picks the policy ages most informative for a client-facing
// cash-surrender-value comparison: the breakeven year, short/medium/long
// horizon years, and the final tabulated year. Input points must already obey
// the strictly-increasing-age invariant. Output is deduplicated and ascending.
func SelectAges(points []extract.CashValuePoint, breakevenYears int) []int {
	if len(points) == 0 {
		return nil
	}

	first := points[0].Age
	last := points[len(points)-1].Age

	picked := make(map[int]struct{})
	pick := func(target int) {
		age, ok := nearestAt(points, target)
		if ok {
			picked[age] = struct{}{}
		}
	}

	if breakevenYears > 0 {
		pick(first + breakevenYears)
	}
	for _, off := range horizonOffsets {
		pick(first + off)
	}
	picked[last] = struct{}{}

	out := make([]int, 0, len(picked))
	for age := range picked {
		out = append(out, age)
	}
	sort.Ints(out)

	// when over budget, drop the pick just before the final year; the early
	// (breakeven) ages and the final year carry the most signal
	for len(out) > maxSelectedAges {
		out = append(out[:len(out)-2], out[len(out)-1])
	}
	return out
}

// nearestAt returns the first tabulated age at or after target, falling back
// to the last age when target is past the table.
func nearestAt(points []extract.CashValuePoint, target int) (int, bool) {
	for _, p := range points {
		if p.Age >= target {
			return p.Age, true
		}
	}
	if len(points) > 0 {
		return points[len(points)-1].Age, true
	}
	return 0, false
}

// MergeCashValues folds several illustrations' tables into one comparison
// axis: union of ages, higher value winning on collisions.
func MergeCashValues(tables ...[]extract.CashValuePoint) []extract.CashValuePoint {
	byAge := make(map[int]float64)
	for _, t := range tables {
		for _, p := range t {
			if v, ok := byAge[p.Age]; !ok || p.Value > v {
				byAge[p.Age] = p.Value
			}
		}
	}
	out := make([]extract.CashValuePoint, 0, len(byAge))
	for age, v := range byAge {
		out = append(out, extract.CashValuePoint{Age: age, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}
