package coi

import (
	"fmt"
	"sort"
)

// EstimateGroupIntensity estimates the crossover intensity for a single group
// at each query position and writes it to out, which must have the same
// length as queries. window is the full width of the smoothing window in
// normalized units. The algorithm is chosen as with [DefaultConfig].
//
// Inputs are validated before anything is written; on error out is left
// untouched.
func EstimateGroupIntensity(set *SampleSet, group int, queries []float64, window float64, out []float64) error {
	if len(out) != len(queries) {
		return fmt.Errorf("coi: output length %d does not match %d query positions", len(out), len(queries))
	}
	if err := validateWindow(window); err != nil {
		return err
	}
	if err := validateQueries(queries); err != nil {
		return err
	}
	if err := set.Validate(); err != nil {
		return err
	}
	m := set.GroupSize(group)
	if m == 0 {
		return fmt.Errorf("coi: group %d: %w", group, ErrEmptyGroup)
	}

	est := estimatorFor(selectAlgorithm(AlgorithmAuto, len(queries)))
	est(set, group, m, queries, window, out)
	return nil
}

// groupIntensityScan counts, for every query, the crossovers of every sample
// in the group that fall in the window. O(queries * crossovers).
func groupIntensityScan(set *SampleSet, group, m int, queries []float64, window float64, out []float64) {
	for i, q := range queries {
		lo := q - window/2.0
		hi := q + window/2.0

		count := 0
		for j := 0; j < set.Len(); j++ {
			if set.groups[j] != group {
				continue
			}
			c, l := set.centromeres[j], set.scLength[j]
			for _, p := range set.Crossovers(j) {
				u := NormalizePosition(p, c, l)
				if u >= lo && u <= hi {
					count++
				}
			}
		}

		out[i] = float64(count) / float64(m) / EffectiveWidth(q, window)
	}
}

// groupIntensitySorted normalizes and sorts the group's crossovers once and
// counts the window contents with two binary searches per query. Window
// bounds are closed on both sides, exactly as in groupIntensityScan.
func groupIntensitySorted(set *SampleSet, group, m int, queries []float64, window float64, out []float64) {
	pos := groupPositions(set, group)

	for i, q := range queries {
		lo := q - window/2.0
		hi := q + window/2.0

		// first index with pos >= lo
		start := sort.SearchFloat64s(pos, lo)
		// first index with pos > hi
		end := start + sort.Search(len(pos)-start, func(k int) bool { return pos[start+k] > hi })

		out[i] = float64(end-start) / float64(m) / EffectiveWidth(q, window)
	}
}

// groupPositions returns the sorted normalized crossover positions of every
// sample labelled group.
func groupPositions(set *SampleSet, group int) []float64 {
	var pos []float64
	for j := 0; j < set.Len(); j++ {
		if set.groups[j] == group {
			pos = set.normalized(j, pos)
		}
	}
	sort.Float64s(pos)
	return pos
}

// validateWindow rejects windows outside (0, 1], including NaN.
func validateWindow(window float64) error {
	if !(window > 0 && window <= 1) {
		return fmt.Errorf("coi: window %g: %w", window, ErrInvalidWindow)
	}
	return nil
}
